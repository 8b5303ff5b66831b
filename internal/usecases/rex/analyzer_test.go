package rex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revoa/revoa-api/internal/domain"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name          string
		metrics       *domain.EntityMetrics
		entityType    domain.EntityType
		benchmarks    *domain.Benchmarks
		expectedTypes []domain.RexSuggestionType
	}{
		{
			name: "Prejuízo com gasto acima do gatilho - ROI negativo",
			metrics: &domain.EntityMetrics{
				EntityID:    "camp-001",
				EntityName:  "Campanha Teste",
				Platform:    domain.PlatformMeta,
				Spend:       80,
				Revenue:     40,
				Roas:        0.5,
				Conversions: 2,
				Profit:      floatPtr(-40),
			},
			entityType:    domain.EntityTypeCampaign,
			benchmarks:    &domain.Benchmarks{AvgRoas: 0},
			expectedTypes: []domain.RexSuggestionType{domain.RexNegativeROI},
		},
		{
			name: "Gasto exatamente no gatilho não dispara o alerta de prejuízo",
			metrics: &domain.EntityMetrics{
				EntityID:    "camp-002",
				EntityName:  "Campanha Limite",
				Platform:    domain.PlatformMeta,
				Spend:       50,
				Revenue:     20,
				Roas:        0.4,
				Conversions: 1,
				Profit:      floatPtr(-30),
			},
			entityType:    domain.EntityTypeCampaign,
			benchmarks:    &domain.Benchmarks{AvgRoas: 0},
			expectedTypes: []domain.RexSuggestionType{},
		},
		{
			name: "ROAS alto - oportunidade de escala",
			metrics: &domain.EntityMetrics{
				EntityID:    "camp-003",
				EntityName:  "Campanha Campeã",
				Platform:    domain.PlatformGoogle,
				Spend:       100,
				Revenue:     400,
				Roas:        4.0,
				Conversions: 12,
				Profit:      floatPtr(200),
			},
			entityType:    domain.EntityTypeCampaign,
			benchmarks:    &domain.Benchmarks{AvgRoas: 4.0},
			expectedTypes: []domain.RexSuggestionType{domain.RexScaleOpportunity},
		},
		{
			name: "Prejuízo e baixa performance relativa acumulam dois alertas",
			metrics: &domain.EntityMetrics{
				EntityID:    "camp-004",
				EntityName:  "Campanha Dupla",
				Platform:    domain.PlatformMeta,
				Spend:       120,
				Revenue:     60,
				Roas:        0.5,
				Conversions: 3,
				Profit:      floatPtr(-60),
			},
			entityType: domain.EntityTypeCampaign,
			benchmarks: &domain.Benchmarks{AvgRoas: 2.0},
			expectedTypes: []domain.RexSuggestionType{
				domain.RexNegativeROI,
				domain.RexUnderperformance,
			},
		},
		{
			name: "Fadiga de criativo só dispara para anúncios",
			metrics: &domain.EntityMetrics{
				EntityID:    "camp-005",
				EntityName:  "Campanha com CTR baixo",
				Platform:    domain.PlatformMeta,
				Spend:       10,
				Revenue:     20,
				Roas:        2.0,
				Conversions: 1,
				Ctr:         floatPtr(0.3),
				Impressions: intPtr(50000),
			},
			entityType:    domain.EntityTypeCampaign,
			benchmarks:    &domain.Benchmarks{AvgRoas: 2.0, AvgCtr: floatPtr(1.0)},
			expectedTypes: []domain.RexSuggestionType{},
		},
		{
			name: "Anúncio com muitas impressões e CTR derrubado - fadiga de criativo",
			metrics: &domain.EntityMetrics{
				EntityID:    "ad-006",
				EntityName:  "Anúncio Vídeo Antigo",
				Platform:    domain.PlatformMeta,
				Spend:       10,
				Revenue:     20,
				Roas:        2.0,
				Conversions: 1,
				Ctr:         floatPtr(0.3),
				Impressions: intPtr(50000),
			},
			entityType:    domain.EntityTypeAd,
			benchmarks:    &domain.Benchmarks{AvgRoas: 2.0, AvgCtr: floatPtr(1.0)},
			expectedTypes: []domain.RexSuggestionType{domain.RexCreativeFatigue},
		},
		{
			name: "Muitos cliques e quase nenhuma conversão - taxa de conversão baixa",
			metrics: &domain.EntityMetrics{
				EntityID:    "adset-007",
				EntityName:  "Conjunto Tráfego",
				Platform:    domain.PlatformTikTok,
				Spend:       40,
				Revenue:     80,
				Roas:        2.0,
				Conversions: 1,
				Clicks:      intPtr(300),
			},
			entityType:    domain.EntityTypeAdSet,
			benchmarks:    &domain.Benchmarks{AvgRoas: 2.0},
			expectedTypes: []domain.RexSuggestionType{domain.RexLowConversionRate},
		},
		{
			name: "Métricas saudáveis - nenhum alerta",
			metrics: &domain.EntityMetrics{
				EntityID:    "camp-008",
				EntityName:  "Campanha Saudável",
				Platform:    domain.PlatformMeta,
				Spend:       60,
				Revenue:     150,
				Roas:        2.5,
				Conversions: 6,
				Profit:      floatPtr(50),
				Clicks:      intPtr(200),
			},
			entityType:    domain.EntityTypeCampaign,
			benchmarks:    &domain.Benchmarks{AvgRoas: 2.5},
			expectedTypes: []domain.RexSuggestionType{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Analyze(tt.metrics, tt.entityType, tt.benchmarks)

			types := make([]domain.RexSuggestionType, 0, len(results))
			for _, result := range results {
				types = append(types, result.Type)

				assert.Equal(t, tt.metrics.EntityID, result.EntityID)
				assert.Equal(t, tt.entityType, result.EntityType)
				assert.NotEmpty(t, result.Title)
				assert.NotEmpty(t, result.Message)
				assert.Equal(t, tt.metrics.Spend, result.Metrics.Spend)
			}

			assert.Equal(t, tt.expectedTypes, types)
		})
	}
}

func TestAnalyze_Deterministico(t *testing.T) {
	metrics := &domain.EntityMetrics{
		EntityID:    "camp-001",
		EntityName:  "Campanha Teste",
		Platform:    domain.PlatformMeta,
		Spend:       80,
		Revenue:     40,
		Roas:        0.5,
		Conversions: 2,
		Profit:      floatPtr(-40),
	}
	benchmarks := &domain.Benchmarks{AvgRoas: 0}

	first := Analyze(metrics, domain.EntityTypeCampaign, benchmarks)
	second := Analyze(metrics, domain.EntityTypeCampaign, benchmarks)

	// Os bancos de frases usam índice fixo: a saída não varia entre chamadas
	require.Equal(t, first, second)
}
