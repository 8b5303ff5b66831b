package insighting

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/revoa/revoa-api/infrastructure/repository"
	"github.com/revoa/revoa-api/internal/config"
	"github.com/revoa/revoa-api/internal/domain"
)

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

// GetAccountInsights agrega as métricas armazenadas da conta no período,
// por entidade, e calcula os benchmarks da conta
func (s *Service) GetAccountInsights(accountID string, filters domain.InsightFilters) (*domain.AdAccountInsightsResponse, error) {
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

	byEntity := make(map[string][]*domain.AdInsightEntry)
	entityOrder := make([]string, 0)
	for _, entry := range entries {
		if _, seen := byEntity[entry.EntityID]; !seen {
			entityOrder = append(entityOrder, entry.EntityID)
		}
		byEntity[entry.EntityID] = append(byEntity[entry.EntityID], entry)
	}

	entities := make([]*domain.EntityMetrics, 0, len(byEntity))
	for _, entityID := range entityOrder {
		metrics := domain.AggregateEntries(byEntity[entityID])
		if metrics == nil {
			continue
		}
		entities = append(entities, metrics)
	}

	// Maior investimento primeiro
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Spend > entities[j].Spend
	})

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"entities":   len(entities),
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
	}).Debug("Insights agregados para a conta")

	return &domain.AdAccountInsightsResponse{
		AccountID:  accountID,
		Entities:   entities,
		Benchmarks: domain.CalculateBenchmarks(entities),
		Filters: &domain.InsightFilters{
			StartDate: &startDate,
			EndDate:   &endDate,
		},
	}, nil
}
