package suggesting

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/revoa/revoa-api/infrastructure/repository"
	"github.com/revoa/revoa-api/internal/config"
	"github.com/revoa/revoa-api/internal/domain"
	"github.com/revoa/revoa-api/pkg/utils"
)

// Suggester classifica snapshots de performance em sugestões de ação
type Suggester interface {
	Classify(metrics *domain.EntityMetrics, entityType domain.EntityType, benchmarks *domain.Benchmarks) *domain.Suggestion
	GenerateForAccount(accountID string, filters domain.InsightFilters) ([]*domain.Suggestion, error)
}

type Service struct {
	cfg                 *config.Config
	accountRepository   repository.AccountRepository
	adInsightRepository repository.AdInsightRepository
	now                 func() time.Time
}

func NewService(
	cfg *config.Config,
	accountRepo repository.AccountRepository,
	adInsightRepo repository.AdInsightRepository,
) *Service {
	return &Service{
		cfg:                 cfg,
		accountRepository:   accountRepo,
		adInsightRepository: adInsightRepo,
		now:                 time.Now,
	}
}

// WithClock substitui a fonte de tempo do serviço
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Classify avalia a lista ordenada de regras e devolve no máximo uma sugestão.
// A primeira regra que casar vence; nil significa que nenhuma ação é recomendada.
func (s *Service) Classify(metrics *domain.EntityMetrics, entityType domain.EntityType, benchmarks *domain.Benchmarks) *domain.Suggestion {
	if metrics == nil {
		return nil
	}

	for _, rule := range classificationRules {
		if !rule.matches(metrics, benchmarks) {
			continue
		}

		suggestion := rule.build(metrics, entityType, benchmarks)

		id, err := utils.GenerateSuggestionID()
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar ID da sugestão")
			return nil
		}

		createdAt := s.now()

		suggestion.ID = id
		suggestion.EntityID = metrics.EntityID
		suggestion.EntityType = entityType
		suggestion.EntityName = metrics.EntityName
		suggestion.Platform = metrics.Platform
		suggestion.CreatedAt = createdAt
		suggestion.ExpiresAt = createdAt.Add(time.Duration(s.cfg.Suggestions.TTLHours) * time.Hour)

		return suggestion
	}

	return nil
}

// GenerateForAccount roda o classificador sob demanda para todas as entidades
// da conta no intervalo informado, ordenando o resultado por prioridade
func (s *Service) GenerateForAccount(accountID string, filters domain.InsightFilters) ([]*domain.Suggestion, error) {
	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		return nil, err
	}

	if account == nil {
		return nil, ErrAccountNotFound
	}

	endDate := s.now()
	startDate := endDate.AddDate(0, 0, -s.cfg.InsightSync.LookbackDays)

	if filters.StartDate != nil {
		startDate = *filters.StartDate
	}
	if filters.EndDate != nil {
		endDate = *filters.EndDate
	}

	entries, err := s.adInsightRepository.GetByAccountAndDateRange(accountID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	// Agrupa os registros diários por entidade antes de agregar
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
		entityEntries := byEntity[entityID]

		metrics := domain.AggregateEntries(entityEntries)
		if metrics == nil {
			continue
		}

		aggregated = append(aggregated, metrics)
		entityTypes[entityID] = entityEntries[0].EntityType
	}

	benchmarks := domain.CalculateBenchmarks(aggregated)

	suggestions := make([]*domain.Suggestion, 0)
	for _, metrics := range aggregated {
		suggestion := s.Classify(metrics, entityTypes[metrics.EntityID], benchmarks)
		if suggestion == nil {
			continue
		}
		suggestions = append(suggestions, suggestion)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Priority > suggestions[j].Priority
	})

	logrus.WithFields(logrus.Fields{
		"account_id":  accountID,
		"entities":    len(aggregated),
		"suggestions": len(suggestions),
	}).Info("Classificação de sugestões concluída")

	return suggestions, nil
}
