package insighting

import (
	"time"

	"github.com/revoa/revoa-api/internal/domain"
)

// PlatformIntegrator é o contrato comum das integrações de plataformas de
// anúncio (Meta, Google Ads, TikTok). As contas chegam com o ID externo da
// plataforma; a tradução para o ID interno fica a cargo de quem sincroniza.
type PlatformIntegrator interface {
	Platform() domain.Platform
	ListAccounts() ([]*domain.AdAccount, error)
	FetchDailyEntityMetrics(externalAccountID string, date time.Time) ([]*domain.AdInsightEntry, error)
}

// Insighter serve as consultas de métricas agregadas para o dashboard
type Insighter interface {
	GetAccountInsights(accountID string, filters domain.InsightFilters) (*domain.AdAccountInsightsResponse, error)
}
