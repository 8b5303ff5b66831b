package rex

import (
	"database/sql"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/revoa/revoa-api/infrastructure/repository"
	"github.com/revoa/revoa-api/internal/config"
	"github.com/revoa/revoa-api/internal/domain"
)

// Analyzer expõe a análise proativa e a gestão das sugestões persistidas
type Analyzer interface {
	AnalyzeAccount(accountID string) ([]*domain.RexSuggestionEntry, error)
	ListForAccount(accountID string) ([]*domain.RexSuggestionEntry, error)
	Dismiss(accountID, suggestionID string) error
}

type Service struct {
	cfg                 *config.Config
	accountRepository   repository.AccountRepository
	adInsightRepository repository.AdInsightRepository
	rexSuggestionRepo   repository.RexSuggestionRepository
	now                 func() time.Time
}

func NewService(
	cfg *config.Config,
	accountRepo repository.AccountRepository,
	adInsightRepo repository.AdInsightRepository,
	rexSuggestionRepo repository.RexSuggestionRepository,
) *Service {
	return &Service{
		cfg:                 cfg,
		accountRepository:   accountRepo,
		adInsightRepository: adInsightRepo,
		rexSuggestionRepo:   rexSuggestionRepo,
		now:                 time.Now,
	}
}

// WithClock substitui a fonte de tempo do serviço
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// AnalyzeAccount agrega as métricas recentes da conta, roda o analisador por
// entidade e persiste as sugestões novas. Sugestões ativas do mesmo tipo para
// a mesma entidade não são duplicadas.
func (s *Service) AnalyzeAccount(accountID string) ([]*domain.RexSuggestionEntry, error) {
	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	now := s.now()
	startDate := now.AddDate(0, 0, -s.cfg.RexAnalysisSync.LookbackDays)

	entries, err := s.adInsightRepository.GetByAccountAndDateRange(accountID, startDate, now)
	if err != nil {
		return nil, err
	}

	byEntity := make(map[string][]*domain.AdInsightEntry)
	entityOrder := make([]string, 0)
	for _, entry := range entries {
		if _, seen := byEntity[entry.EntityID]; !seen {
			entityOrder = append(entityOrder, entry.EntityID)
		}
		byEntity[entry.EntityID] = append(byEntity[entry.EntityID], entry)
	}

	aggregated := make([]*domain.EntityMetrics, 0, len(byEntity))
	entityTypes := make(map[string]domain.EntityType, len(byEntity))
	for _, entityID := range entityOrder {
		metrics := domain.AggregateEntries(byEntity[entityID])
		if metrics == nil {
			continue
		}
		aggregated = append(aggregated, metrics)
		entityTypes[entityID] = byEntity[entityID][0].EntityType
	}

	benchmarks := domain.CalculateBenchmarks(aggregated)

	saved := make([]*domain.RexSuggestionEntry, 0)
	for _, metrics := range aggregated {
		suggestions := Analyze(metrics, entityTypes[metrics.EntityID], benchmarks)

		for _, suggestion := range suggestions {
			exists, err := s.rexSuggestionRepo.HasActiveSuggestion(suggestion.EntityID, suggestion.Type, now)
			if err != nil {
				return nil, err
			}
			if exists {
				continue
			}

			suggestion.AccountID = accountID
			suggestion.ExpiresAt = expiryFor(now, s.cfg.Suggestions.TTLHours)

			entry, err := s.rexSuggestionRepo.Save(suggestion)
			if err != nil {
				return nil, err
			}
			saved = append(saved, entry)
		}
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"entities":   len(aggregated),
		"saved":      len(saved),
	}).Info("Análise proativa concluída")

	return saved, nil
}

// ListForAccount devolve as sugestões ativas (não expiradas, não dispensadas)
func (s *Service) ListForAccount(accountID string) ([]*domain.RexSuggestionEntry, error) {
	return s.rexSuggestionRepo.ListActiveByAccount(accountID, s.now())
}

// Dismiss marca a sugestão como dispensada pelo usuário. A operação só alcança
// sugestões da conta informada.
func (s *Service) Dismiss(accountID, suggestionID string) error {
	err := s.rexSuggestionRepo.Dismiss(accountID, suggestionID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSuggestionNotFound
	}
	return err
}
