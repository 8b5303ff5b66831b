package suggesting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revoa/revoa-api/internal/config"
	"github.com/revoa/revoa-api/internal/domain"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
}

func newTestService() *Service {
	cfg := &config.Config{
		Suggestions: config.Suggestions{TTLHours: 72},
	}
	return NewService(cfg, nil, nil).WithClock(fixedClock)
}

func floatPtr(f float64) *float64 { return &f }

func TestService_Classify(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name       string
		metrics    *domain.EntityMetrics
		entityType domain.EntityType
		benchmarks *domain.Benchmarks
		expected   *domain.SituationType
		validate   func(t *testing.T, s *domain.Suggestion)
	}{
		{
			name: "ROAS alto com investimento relevante - oportunidade de escala",
			metrics: &domain.EntityMetrics{
				EntityID:    "camp-001",
				EntityName:  "Campanha Verão",
				Platform:    domain.PlatformMeta,
				Spend:       200,
				Revenue:     700,
				Roas:        3.5,
				Conversions: 15,
			},
			entityType: domain.EntityTypeCampaign,
			benchmarks: &domain.Benchmarks{AvgRoas: 2.0},
			expected:   situationPtr(domain.SituationScaleHighPerformer),
			validate: func(t *testing.T, s *domain.Suggestion) {
				// Limiar de pausa derivado: roas * 0.75 = 2.625
				require.NotNil(t, s.RecommendedRule)
				assert.Equal(t, 2.625, s.RecommendedRule.ConditionValue)
				assert.Equal(t, "roas", s.RecommendedRule.ConditionMetric)
				assert.Equal(t, "<", s.RecommendedRule.ConditionOperator)

				// Aumento de orçamento: spend * 0.5 = 100
				require.NotNil(t, s.EstimatedImpact)
				assert.Equal(t, 100.0, s.EstimatedImpact.BudgetChange)
				assert.Equal(t, 350.0, s.EstimatedImpact.ProjectedRevenue)

				assert.Equal(t, 95, s.Priority)
				assert.Equal(t, 90, s.Confidence)
			},
		},
		{
			name: "ROAS abaixo de 1 com gasto alto - pausa independe dos benchmarks",
			metrics: &domain.EntityMetrics{
				EntityID:    "camp-002",
				EntityName:  "Campanha Inverno",
				Platform:    domain.PlatformMeta,
				Spend:       150,
				Revenue:     50,
				Roas:        0.33,
				Conversions: 5,
				Profit:      floatPtr(-100),
			},
			entityType: domain.EntityTypeCampaign,
			// avgRoas alto faria a regra de baixa performance relativa casar também;
			// a pausa vem antes e vence
			benchmarks: &domain.Benchmarks{AvgRoas: 10.0},
			expected:   situationPtr(domain.SituationPauseUnderperforming),
			validate: func(t *testing.T, s *domain.Suggestion) {
				assert.Equal(t, 90, s.Priority)
				assert.Equal(t, domain.UrgencyCritical, s.Reasoning.Urgency)
				assert.Equal(t, domain.RiskHigh, s.Reasoning.RiskLevel)
			},
		},
		{
			name: "Investimento abaixo de todos os limiares - sem sugestão",
			metrics: &domain.EntityMetrics{
				EntityID:    "ad-003",
				EntityName:  "Anúncio Teste",
				Platform:    domain.PlatformMeta,
				Spend:       10,
				Revenue:     5,
				Roas:        0.5,
				Conversions: 1,
			},
			entityType: domain.EntityTypeAd,
			benchmarks: &domain.Benchmarks{AvgRoas: 2.0},
			expected:   nil,
		},
		{
			name: "Fronteira inclusiva: roas 2.5 e spend 50 casam com a escala",
			metrics: &domain.EntityMetrics{
				EntityID:    "camp-004",
				EntityName:  "Campanha Fronteira",
				Platform:    domain.PlatformGoogle,
				Spend:       50,
				Revenue:     125,
				Roas:        2.5,
				Conversions: 4,
			},
			entityType: domain.EntityTypeCampaign,
			benchmarks: &domain.Benchmarks{AvgRoas: 2.0},
			expected:   situationPtr(domain.SituationScaleHighPerformer),
		},
		{
			name: "Fronteira exclusiva: roas exatamente 1.0 não dispara a pausa",
			metrics: &domain.EntityMetrics{
				EntityID:    "camp-005",
				EntityName:  "Campanha Equilíbrio",
				Platform:    domain.PlatformMeta,
				Spend:       200,
				Revenue:     200,
				Roas:        1.0,
				Conversions: 8,
			},
			entityType: domain.EntityTypeCampaign,
			benchmarks: &domain.Benchmarks{AvgRoas: 1.2},
			expected:   nil,
		},
		{
			name: "Escala vence mesmo com prejuízo registrado - primeira regra que casa encerra",
			metrics: &domain.EntityMetrics{
				EntityID:    "camp-006",
				EntityName:  "Campanha Mista",
				Platform:    domain.PlatformMeta,
				Spend:       120,
				Revenue:     360,
				Roas:        3.0,
				Conversions: 10,
				Profit:      floatPtr(-15),
			},
			entityType: domain.EntityTypeCampaign,
			benchmarks: &domain.Benchmarks{AvgRoas: 2.0},
			expected:   situationPtr(domain.SituationScaleHighPerformer),
		},
		{
			name: "Prejuízo com gasto alto e ROAS entre 1 e a média - ROI negativo",
			metrics: &domain.EntityMetrics{
				EntityID:    "camp-007",
				EntityName:  "Campanha Margem",
				Platform:    domain.PlatformTikTok,
				Spend:       150,
				Revenue:     180,
				Roas:        1.2,
				Conversions: 6,
				Profit:      floatPtr(-30),
			},
			entityType: domain.EntityTypeCampaign,
			benchmarks: &domain.Benchmarks{AvgRoas: 1.3},
			expected:   situationPtr(domain.SituationNegativeROI),
			validate: func(t *testing.T, s *domain.Suggestion) {
				require.NotNil(t, s.EstimatedImpact)
				assert.Equal(t, 30.0, s.EstimatedImpact.ProjectedSavings)
			},
		},
		{
			name: "CPA acima de 1.5x a média - revisão com aprovação obrigatória",
			metrics: &domain.EntityMetrics{
				EntityID:    "adset-008",
				EntityName:  "Conjunto Remarketing",
				Platform:    domain.PlatformMeta,
				Spend:       40,
				Revenue:     80,
				Roas:        2.0,
				Conversions: 2,
				Cpa:         floatPtr(20),
			},
			entityType: domain.EntityTypeAdSet,
			benchmarks: &domain.Benchmarks{AvgRoas: 2.0, AvgCpa: floatPtr(10)},
			expected:   situationPtr(domain.SituationHighCPA),
			validate: func(t *testing.T, s *domain.Suggestion) {
				require.NotNil(t, s.RecommendedRule)
				assert.True(t, s.RecommendedRule.RequiresApproval)
				assert.Equal(t, 15.0, s.RecommendedRule.ConditionValue)
			},
		},
		{
			name: "CTR abaixo da metade da média - renovação de criativos",
			metrics: &domain.EntityMetrics{
				EntityID:    "ad-009",
				EntityName:  "Anúncio Vídeo",
				Platform:    domain.PlatformMeta,
				Spend:       30,
				Revenue:     60,
				Roas:        2.0,
				Conversions: 3,
				Ctr:         floatPtr(0.4),
			},
			entityType: domain.EntityTypeAd,
			benchmarks: &domain.Benchmarks{AvgRoas: 2.0, AvgCtr: floatPtr(1.2)},
			expected:   situationPtr(domain.SituationLowCTR),
		},
		{
			name: "ROAS moderado com investimento relevante - otimização incremental",
			metrics: &domain.EntityMetrics{
				EntityID:    "camp-010",
				EntityName:  "Campanha Estável",
				Platform:    domain.PlatformGoogle,
				Spend:       80,
				Revenue:     160,
				Roas:        2.0,
				Conversions: 7,
			},
			entityType: domain.EntityTypeCampaign,
			benchmarks: &domain.Benchmarks{AvgRoas: 2.0},
			expected:   situationPtr(domain.SituationOptimizeModerate),
			validate: func(t *testing.T, s *domain.Suggestion) {
				assert.Equal(t, 50, s.Priority)
				assert.Equal(t, 60, s.Confidence)
			},
		},
		{
			name: "Limiar derivado mantém a precisão integral do cálculo",
			metrics: &domain.EntityMetrics{
				EntityID:    "camp-012",
				EntityName:  "Campanha Precisão",
				Platform:    domain.PlatformMeta,
				Spend:       90,
				Revenue:     297,
				Roas:        3.3,
				Conversions: 9,
			},
			entityType: domain.EntityTypeCampaign,
			benchmarks: &domain.Benchmarks{AvgRoas: 2.0},
			expected:   situationPtr(domain.SituationScaleHighPerformer),
			validate: func(t *testing.T, s *domain.Suggestion) {
				// O valor da regra não é arredondado; só o texto formata em duas casas
				require.NotNil(t, s.RecommendedRule)
				assert.Equal(t, 3.3*0.75, s.RecommendedRule.ConditionValue)
			},
		},
		{
			name: "Média da conta zerada desabilita a comparação relativa",
			metrics: &domain.EntityMetrics{
				EntityID:    "camp-011",
				EntityName:  "Campanha Nova Conta",
				Platform:    domain.PlatformMeta,
				Spend:       60,
				Revenue:     30,
				Roas:        0.5,
				Conversions: 1,
			},
			entityType: domain.EntityTypeCampaign,
			benchmarks: &domain.Benchmarks{AvgRoas: 0},
			// spend < 100 impede a pausa; sem média válida, nada mais casa
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.Classify(tt.metrics, tt.entityType, tt.benchmarks)

			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}

			require.NotNil(t, result)
			assert.Equal(t, *tt.expected, result.Type)
			assert.Equal(t, tt.metrics.EntityID, result.EntityID)
			assert.Equal(t, tt.entityType, result.EntityType)
			assert.GreaterOrEqual(t, result.Priority, 50)
			assert.LessOrEqual(t, result.Priority, 95)
			assert.GreaterOrEqual(t, result.Confidence, 60)
			assert.LessOrEqual(t, result.Confidence, 90)
			require.NotNil(t, result.Reasoning)
			assert.NotEmpty(t, result.Reasoning.Triggers)
			assert.Equal(t, fixedClock(), result.CreatedAt)
			assert.Equal(t, fixedClock().Add(72*time.Hour), result.ExpiresAt)

			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestService_Classify_IdempotentExcetoID(t *testing.T) {
	service := newTestService()

	metrics := &domain.EntityMetrics{
		EntityID:    "camp-001",
		EntityName:  "Campanha Verão",
		Platform:    domain.PlatformMeta,
		Spend:       200,
		Revenue:     700,
		Roas:        3.5,
		Conversions: 15,
	}
	benchmarks := &domain.Benchmarks{AvgRoas: 2.0}

	first := service.Classify(metrics, domain.EntityTypeCampaign, benchmarks)
	second := service.Classify(metrics, domain.EntityTypeCampaign, benchmarks)

	require.NotNil(t, first)
	require.NotNil(t, second)

	// O ID é a única parte dependente de aleatoriedade; o relógio é fixo
	assert.NotEqual(t, first.ID, second.ID)

	first.ID = ""
	second.ID = ""
	assert.Equal(t, first, second)
}

func situationPtr(s domain.SituationType) *domain.SituationType {
	return &s
}
