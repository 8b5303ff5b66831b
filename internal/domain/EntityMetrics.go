package domain

// EntityType identifica o nível da hierarquia de anúncios de uma plataforma
type EntityType string

const (
	EntityTypeCampaign EntityType = "campaign"
	EntityTypeAdSet    EntityType = "ad_set"
	EntityTypeAd       EntityType = "ad"
)

// Label retorna o nome do tipo de entidade para uso em mensagens
func (t EntityType) Label() string {
	switch t {
	case EntityTypeCampaign:
		return "campanha"
	case EntityTypeAdSet:
		return "conjunto de anúncios"
	case EntityTypeAd:
		return "anúncio"
	default:
		return string(t)
	}
}

// Platform identifica a plataforma de anúncios de origem
type Platform string

const (
	PlatformMeta   Platform = "meta"
	PlatformGoogle Platform = "google"
	PlatformTikTok Platform = "tiktok"
)

type EntityStatus string

const (
	EntityStatusActive EntityStatus = "ACTIVE"
	EntityStatusPaused EntityStatus = "PAUSED"
)

// EntityMetrics é o snapshot de performance de uma entidade de anúncio.
// Spend, Revenue, Roas e Conversions são sempre preenchidos; os demais campos
// são opcionais e desabilitam as análises que dependem deles quando ausentes.
type EntityMetrics struct {
	EntityID    string       `json:"entity_id"`
	EntityName  string       `json:"entity_name"`
	AccountID   string       `json:"account_id"`
	Platform    Platform     `json:"platform"`
	Status      EntityStatus `json:"status"`
	Spend       float64      `json:"spend"`
	Revenue     float64      `json:"revenue"`
	Roas        float64      `json:"roas"`
	Conversions int          `json:"conversions"`
	Profit      *float64     `json:"profit,omitempty"`
	Cpa         *float64     `json:"cpa,omitempty"`
	Ctr         *float64     `json:"ctr,omitempty"`
	Impressions *int         `json:"impressions,omitempty"`
	Clicks      *int         `json:"clicks,omitempty"`
}

// Benchmarks são as médias da conta usadas como base de comparação
type Benchmarks struct {
	AvgRoas            float64  `json:"avg_roas"`
	AvgCpa             *float64 `json:"avg_cpa,omitempty"`
	AvgCtr             *float64 `json:"avg_ctr,omitempty"`
	TargetProfitMargin *float64 `json:"target_profit_margin,omitempty"`
}
