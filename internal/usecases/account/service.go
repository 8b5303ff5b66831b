package account

import (
	"github.com/sirupsen/logrus"

	"github.com/revoa/revoa-api/infrastructure/repository"
	"github.com/revoa/revoa-api/internal/config"
	"github.com/revoa/revoa-api/internal/domain"
	"github.com/revoa/revoa-api/internal/usecases/insighting"
	"github.com/revoa/revoa-api/pkg/apiErrors"
	"github.com/revoa/revoa-api/pkg/utils"
)

type AccountService interface {
	UpdateAccount(request *domain.UpdateAdAccountRequest) (*domain.UpdateAdAccountResponse, error)
	ListAdAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccountResponse, error)
	SyncAccounts() (*domain.SyncAccountsResponse, error)
}

type Service struct {
	cfg               *config.Config
	accountRepository repository.AccountRepository
	integrators       []insighting.PlatformIntegrator
}

func NewService(
	cfg *config.Config,
	accountRepository repository.AccountRepository,
	integrators []insighting.PlatformIntegrator,
) AccountService {
	return &Service{
		cfg:               cfg,
		accountRepository: accountRepository,
		integrators:       integrators,
	}
}

func (s *Service) ListAdAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccountResponse, error) {
	accounts, err := s.accountRepository.ListAccounts(availableStatus)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	adAccountsResponse := make([]*domain.AdAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		adAccountsResponse = append(adAccountsResponse, &domain.AdAccountResponse{
			ID:         account.ID,
			ExternalID: account.ExternalID,
			Name:       account.Name,
			Nickname:   account.Nickname,
			Platform:   account.Platform,
			Currency:   account.Currency,
			Status:     account.Status,
		})
	}

	return adAccountsResponse, nil
}

// SyncAccounts consulta cada plataforma integrada e cadastra as contas de
// anúncio que ainda não existem no banco. Contas já conhecidas são mantidas.
func (s *Service) SyncAccounts() (*domain.SyncAccountsResponse, error) {
	response := &domain.SyncAccountsResponse{
		Quantity: 0,
		Message:  "Erro ao sincronizar contas",
		Error:    true,
	}

	accountsToCreate := make([]*domain.AdAccount, 0)

	for _, integrator := range s.integrators {
		platform := integrator.Platform()

		accounts, err := integrator.ListAccounts()
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"platform": platform,
				"error":    err.Error(),
			}).Error("Erro ao obter contas da plataforma")
			return response, NewAccountError(ErrPlatformIntegration, apiErrors.ErrExternalService, "Falha ao obter contas da plataforma "+string(platform))
		}

		for _, acc := range accounts {
			existing, err := s.accountRepository.GetAccountByExternalID(platform, acc.ExternalID)
			if err != nil {
				return response, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao consultar contas existentes no banco de dados")
			}
			if existing != nil {
				continue
			}

			accountID, err := utils.GenerateID()
			if err != nil {
				return response, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para conta")
			}

			acc.ID = accountID
			accountsToCreate = append(accountsToCreate, acc)
		}
	}

	if len(accountsToCreate) > 0 {
		if err := s.accountRepository.SaveOrUpdate(accountsToCreate); err != nil {
			return response, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar contas sincronizadas")
		}
	}

	response.Quantity = len(accountsToCreate)
	response.Message = "Contas sincronizadas com sucesso"
	response.Error = false

	logrus.WithField("quantity", response.Quantity).Info("Sincronização de contas concluída")

	return response, nil
}

func (s *Service) UpdateAccount(request *domain.UpdateAdAccountRequest) (*domain.UpdateAdAccountResponse, error) {
	if request.ID == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório")
	}

	account, err := s.accountRepository.GetAccountByID(request.ID)
	if err != nil {
		return nil, NewAccountErrorWithID(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao consultar a conta")
	}
	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrInvalidRequest, request.ID, "Conta não encontrada")
	}

	if err := s.accountRepository.UpdateAccount(request); err != nil {
		return nil, NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar a conta")
	}

	return &domain.UpdateAdAccountResponse{
		ID:          request.ID,
		Nickname:    request.Nickname,
		StoreDomain: request.StoreDomain,
		Status:      request.Status,
	}, nil
}
