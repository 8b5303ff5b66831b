package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/revoa/revoa-api/infrastructure/database/postgres"
	"github.com/revoa/revoa-api/internal/domain"
	"github.com/revoa/revoa-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

const (
	accountsTable = "ad_accounts a"
)

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.AdAccount, error)
	GetAccountByExternalID(platform domain.Platform, externalID string) (*domain.AdAccount, error)
	ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error)
	ListAccountsByPlatform(platform domain.Platform, availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error)
	SaveOrUpdate(accounts []*domain.AdAccount) error
	UpdateAccount(account *domain.UpdateAdAccountRequest) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByID(accountID string) (*domain.AdAccount, error) {
	return a.getAccount(squirrel.Eq{"a.id": accountID})
}

func (a *accountRepository) GetAccountByExternalID(platform domain.Platform, externalID string) (*domain.AdAccount, error) {
	return a.getAccount(squirrel.Eq{"a.platform": platform, "a.external_id": externalID})
}

func (a *accountRepository) getAccount(whereClause map[string]interface{}) (*domain.AdAccount, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select("a.id, a.external_id, a.name, a.nickname, a.platform, a.store_domain, a.currency, a.status").
		From(accountsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := a.conn.QueryRow(accountsSQL, accountsArgs...)

	acc := &domain.AdAccount{}
	if err := row.Scan(
		&acc.ID,
		&acc.ExternalID,
		&acc.Name,
		&acc.Nickname,
		&acc.Platform,
		&acc.StoreDomain,
		&acc.Currency,
		&acc.Status,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conta: %w", err)
	}

	return acc, nil
}

func (a *accountRepository) ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	return a.listAccounts(nil, availableStatus)
}

func (a *accountRepository) ListAccountsByPlatform(platform domain.Platform, availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	return a.listAccounts(squirrel.Eq{"a.platform": platform}, availableStatus)
}

func (a *accountRepository) listAccounts(whereClause map[string]interface{}, availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	queryBuilder := squirrel.
		Select("a.id, a.external_id, a.name, a.nickname, a.platform, a.store_domain, a.currency, a.status").
		From(accountsTable).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if whereClause != nil {
		queryBuilder = queryBuilder.Where(whereClause)
	}

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.status": availableStatus})
	}

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := a.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		acc := &domain.AdAccount{}
		if err := rows.Scan(
			&acc.ID,
			&acc.ExternalID,
			&acc.Name,
			&acc.Nickname,
			&acc.Platform,
			&acc.StoreDomain,
			&acc.Currency,
			&acc.Status,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear contas: %w", err)
		}
		accounts = append(accounts, acc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func (a *accountRepository) SaveOrUpdate(accounts []*domain.AdAccount) error {
	for _, account := range accounts {
		if account.ID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				return fmt.Errorf("erro ao gerar ID da conta: %w", err)
			}
			account.ID = id
		}

		query := squirrel.StatementBuilder.
			Insert("ad_accounts").
			Columns("id", "external_id", "name", "nickname", "platform", "store_domain", "currency", "status").
			Values(
				account.ID,
				account.ExternalID,
				account.Name,
				account.Nickname,
				account.Platform,
				account.StoreDomain,
				account.Currency,
				account.Status,
			).
			Suffix(`
				ON CONFLICT (platform, external_id) DO UPDATE SET
					name = EXCLUDED.name,
					currency = EXCLUDED.currency,
					updated_at = NOW()
			`).
			PlaceholderFormat(squirrel.Dollar)

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := a.conn.Exec(sqlQuery, args...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				logrus.WithFields(logrus.Fields{
					"account_external_id": account.ExternalID,
					"pq_code":             pqErr.Code,
				}).Error("Erro do banco de dados ao salvar conta")
			}
			return fmt.Errorf("erro ao executar a query: %w", err)
		}
	}

	return nil
}

func (a *accountRepository) UpdateAccount(account *domain.UpdateAdAccountRequest) error {
	queryBuilder := squirrel.
		Update("ad_accounts").
		Where(squirrel.Eq{"id": account.ID})

	if account.Nickname != nil {
		queryBuilder = queryBuilder.Set("nickname", account.Nickname)
	}

	if account.StoreDomain != nil {
		queryBuilder = queryBuilder.Set("store_domain", account.StoreDomain)
	}

	if account.Status != nil {
		queryBuilder = queryBuilder.Set("status", account.Status)
	}

	queryBuilder = queryBuilder.Set("updated_at", squirrel.Expr("NOW()"))

	sqlQuery, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := a.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
