package domain

import "time"

// RexSuggestionType classifica as verificações independentes do analisador proativo
type RexSuggestionType string

const (
	RexNegativeROI       RexSuggestionType = "negative_roi"
	RexScaleOpportunity  RexSuggestionType = "scale_opportunity"
	RexCreativeFatigue   RexSuggestionType = "creative_fatigue"
	RexUnderperformance  RexSuggestionType = "underperformance"
	RexLowConversionRate RexSuggestionType = "low_conversion_rate"
)

// CreateRexSuggestionParams é o registro produzido pelo analisador proativo,
// destinado à persistência
type CreateRexSuggestionParams struct {
	Type            RexSuggestionType `json:"type"`
	AccountID       string            `json:"account_id"`
	EntityID        string            `json:"entity_id"`
	EntityType      EntityType        `json:"entity_type"`
	EntityName      string            `json:"entity_name"`
	Platform        Platform          `json:"platform"`
	Title           string            `json:"title"`
	Message         string            `json:"message"`
	Urgency         Urgency           `json:"urgency"`
	PotentialImpact float64           `json:"potential_impact"`
	Metrics         MetricsSnapshot   `json:"metrics"`
	ExpiresAt       time.Time         `json:"expires_at"`
}

// RexSuggestionEntry representa uma sugestão do Rex armazenada no banco
type RexSuggestionEntry struct {
	ID              string            `json:"id"`
	Type            RexSuggestionType `json:"type"`
	AccountID       string            `json:"account_id"`
	EntityID        string            `json:"entity_id"`
	EntityType      EntityType        `json:"entity_type"`
	EntityName      string            `json:"entity_name"`
	Platform        Platform          `json:"platform"`
	Title           string            `json:"title"`
	Message         string            `json:"message"`
	Urgency         Urgency           `json:"urgency"`
	PotentialImpact float64           `json:"potential_impact"`
	Metrics         MetricsSnapshot   `json:"metrics"`
	Dismissed       bool              `json:"dismissed"`
	ExpiresAt       time.Time         `json:"expires_at"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
