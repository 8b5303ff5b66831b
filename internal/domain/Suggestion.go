package domain

import "time"

// SituationType classifica a situação detectada para uma entidade de anúncio
type SituationType string

const (
	SituationScaleHighPerformer       SituationType = "scale_high_performer"
	SituationPauseUnderperforming     SituationType = "pause_underperforming"
	SituationReduceBudgetUnderperform SituationType = "reduce_budget_underperformer"
	SituationNegativeROI              SituationType = "negative_roi"
	SituationHighCPA                  SituationType = "high_cpa"
	SituationLowCTR                   SituationType = "low_ctr"
	SituationOptimizeModerate         SituationType = "optimize_moderate"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// MetricsSnapshot congela as métricas que motivaram a sugestão
type MetricsSnapshot struct {
	Spend       float64  `json:"spend"`
	Revenue     float64  `json:"revenue"`
	Roas        float64  `json:"roas"`
	Conversions int      `json:"conversions"`
	Profit      *float64 `json:"profit,omitempty"`
	Cpa         *float64 `json:"cpa,omitempty"`
	Ctr         *float64 `json:"ctr,omitempty"`
}

// SuggestionReasoning é o bloco estruturado de justificativa da sugestão
type SuggestionReasoning struct {
	Triggers  []string        `json:"triggers"`
	RiskLevel RiskLevel       `json:"risk_level"`
	Urgency   Urgency         `json:"urgency"`
	Metrics   MetricsSnapshot `json:"metrics"`
	Analysis  string          `json:"analysis"`
}

// AutomatedRule descreve a regra de automação recomendada pela sugestão
type AutomatedRule struct {
	Name              string  `json:"name"`
	ConditionMetric   string  `json:"condition_metric"`
	ConditionOperator string  `json:"condition_operator"`
	ConditionValue    float64 `json:"condition_value"`
	Action            string  `json:"action"`
	ActionValue       float64 `json:"action_value"`
	Frequency         string  `json:"frequency"`
	RequiresApproval  bool    `json:"requires_approval"`
}

// EstimatedImpact é a projeção financeira associada à sugestão
type EstimatedImpact struct {
	ProjectedRevenue float64 `json:"projected_revenue"`
	ProjectedSavings float64 `json:"projected_savings"`
	BudgetChange     float64 `json:"budget_change"`
	Confidence       string  `json:"confidence"`
}

// Suggestion é a recomendação produzida pelo classificador para uma entidade
type Suggestion struct {
	ID              string               `json:"id"`
	Type            SituationType        `json:"type"`
	EntityID        string               `json:"entity_id"`
	EntityType      EntityType           `json:"entity_type"`
	EntityName      string               `json:"entity_name"`
	Platform        Platform             `json:"platform"`
	Priority        int                  `json:"priority"`
	Confidence      int                  `json:"confidence"`
	Title           string               `json:"title"`
	Message         string               `json:"message"`
	Reasoning       *SuggestionReasoning `json:"reasoning"`
	RecommendedRule *AutomatedRule       `json:"recommended_rule,omitempty"`
	EstimatedImpact *EstimatedImpact     `json:"estimated_impact,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	ExpiresAt       time.Time            `json:"expires_at"`
}
