package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/revoa/revoa-api/infrastructure/database/postgres"
	"github.com/revoa/revoa-api/internal/domain"
	"github.com/revoa/revoa-api/pkg/utils"
)

const (
	rexSuggestionsTable = "rex_suggestions rs"
)

type RexSuggestionRepository interface {
	Save(params *domain.CreateRexSuggestionParams) (*domain.RexSuggestionEntry, error)
	ListActiveByAccount(accountID string, now time.Time) ([]*domain.RexSuggestionEntry, error)
	HasActiveSuggestion(entityID string, suggestionType domain.RexSuggestionType, now time.Time) (bool, error)
	Dismiss(accountID, suggestionID string) error
	DeleteExpiredBefore(cutoff time.Time) (int64, error)
}

type rexSuggestionRepository struct {
	conn *postgres.Connection
}

func NewRexSuggestionRepository(conn *postgres.Connection) RexSuggestionRepository {
	return &rexSuggestionRepository{
		conn: conn,
	}
}

const rexSuggestionColumns = "rs.id, rs.type, rs.account_id, rs.entity_id, rs.entity_type, rs.platform, rs.title, rs.message, rs.urgency, rs.potential_impact, rs.metrics, rs.dismissed, rs.expires_at, rs.created_at, rs.updated_at"

func (r *rexSuggestionRepository) Save(params *domain.CreateRexSuggestionParams) (*domain.RexSuggestionEntry, error) {
	id, err := utils.GenerateSuggestionID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID da sugestão: %w", err)
	}

	metricsJSON, err := json.Marshal(params.Metrics)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("rex_suggestions").
		Columns("id", "type", "account_id", "entity_id", "entity_type", "platform", "title", "message", "urgency", "potential_impact", "metrics", "expires_at").
		Values(
			id,
			params.Type,
			params.AccountID,
			params.EntityID,
			params.EntityType,
			params.Platform,
			params.Title,
			params.Message,
			params.Urgency,
			params.PotentialImpact,
			metricsJSON,
			params.ExpiresAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return &domain.RexSuggestionEntry{
		ID:              id,
		Type:            params.Type,
		AccountID:       params.AccountID,
		EntityID:        params.EntityID,
		EntityType:      params.EntityType,
		EntityName:      params.EntityName,
		Platform:        params.Platform,
		Title:           params.Title,
		Message:         params.Message,
		Urgency:         params.Urgency,
		PotentialImpact: params.PotentialImpact,
		Metrics:         params.Metrics,
		ExpiresAt:       params.ExpiresAt,
	}, nil
}

func (r *rexSuggestionRepository) ListActiveByAccount(accountID string, now time.Time) ([]*domain.RexSuggestionEntry, error) {
	query, args, err := squirrel.
		Select(rexSuggestionColumns).
		From(rexSuggestionsTable).
		Where(squirrel.Eq{"rs.account_id": accountID, "rs.dismissed": false}).
		Where(squirrel.Gt{"rs.expires_at": now}).
		OrderBy("rs.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	suggestions := make([]*domain.RexSuggestionEntry, 0)
	for rows.Next() {
		suggestion, err := r.scanSuggestion(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear sugestões: %w", err)
		}
		suggestions = append(suggestions, suggestion)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return suggestions, nil
}

func (r *rexSuggestionRepository) HasActiveSuggestion(entityID string, suggestionType domain.RexSuggestionType, now time.Time) (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(1)").
		From(rexSuggestionsTable).
		Where(squirrel.Eq{"rs.entity_id": entityID, "rs.type": suggestionType, "rs.dismissed": false}).
		Where(squirrel.Gt{"rs.expires_at": now}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return count > 0, nil
}

// Dismiss é restrito à conta dona da sugestão; o ID sozinho não basta
func (r *rexSuggestionRepository) Dismiss(accountID, suggestionID string) error {
	query, args, err := squirrel.
		Update("rex_suggestions").
		Set("dismissed", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": suggestionID, "account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *rexSuggestionRepository) DeleteExpiredBefore(cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete("rex_suggestions").
		Where(squirrel.Lt{"expires_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *rexSuggestionRepository) scanSuggestion(rows *sql.Rows) (*domain.RexSuggestionEntry, error) {
	suggestion := &domain.RexSuggestionEntry{}
	var metricsJSON []byte

	err := rows.Scan(
		&suggestion.ID,
		&suggestion.Type,
		&suggestion.AccountID,
		&suggestion.EntityID,
		&suggestion.EntityType,
		&suggestion.Platform,
		&suggestion.Title,
		&suggestion.Message,
		&suggestion.Urgency,
		&suggestion.PotentialImpact,
		&metricsJSON,
		&suggestion.Dismissed,
		&suggestion.ExpiresAt,
		&suggestion.CreatedAt,
		&suggestion.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if metricsJSON != nil {
		if err := json.Unmarshal(metricsJSON, &suggestion.Metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
	}

	return suggestion, nil
}
