package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int             { return &i }
func float64Ptr(f float64) *float64 { return &f }

func entryOn(day int, metrics *EntityMetrics) *AdInsightEntry {
	return &AdInsightEntry{
		AccountID:  "ACC001",
		EntityID:   "camp-001",
		EntityType: EntityTypeCampaign,
		Platform:   PlatformMeta,
		Date:       time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
		Metrics:    metrics,
	}
}

func TestAggregateEntries(t *testing.T) {
	tests := []struct {
		name     string
		entries  []*AdInsightEntry
		validate func(t *testing.T, total *EntityMetrics)
	}{
		{
			name:    "Sem entradas - nil",
			entries: nil,
			validate: func(t *testing.T, total *EntityMetrics) {
				assert.Nil(t, total)
			},
		},
		{
			name: "Soma os dias e deriva roas, cpa e ctr",
			entries: []*AdInsightEntry{
				entryOn(1, &EntityMetrics{
					EntityName:  "Campanha Verão",
					Status:      EntityStatusActive,
					Spend:       100,
					Revenue:     250,
					Conversions: 5,
					Impressions: intPtr(1000),
					Clicks:      intPtr(20),
				}),
				entryOn(2, &EntityMetrics{
					EntityName:  "Campanha Verão",
					Status:      EntityStatusPaused,
					Spend:       100,
					Revenue:     150,
					Conversions: 5,
					Impressions: intPtr(1000),
					Clicks:      intPtr(20),
				}),
			},
			validate: func(t *testing.T, total *EntityMetrics) {
				require.NotNil(t, total)
				assert.Equal(t, 200.0, total.Spend)
				assert.Equal(t, 400.0, total.Revenue)
				assert.Equal(t, 2.0, total.Roas)
				assert.Equal(t, 10, total.Conversions)
				require.NotNil(t, total.Cpa)
				assert.Equal(t, 20.0, *total.Cpa)
				require.NotNil(t, total.Ctr)
				assert.Equal(t, 2.0, *total.Ctr)
				// O status mais recente prevalece
				assert.Equal(t, EntityStatusPaused, total.Status)
			},
		},
		{
			name: "Primeira entrada sem métricas não derruba a agregação",
			entries: []*AdInsightEntry{
				entryOn(1, nil),
				entryOn(2, &EntityMetrics{
					EntityName:  "Campanha Verão",
					Status:      EntityStatusActive,
					Spend:       80,
					Revenue:     240,
					Conversions: 4,
				}),
			},
			validate: func(t *testing.T, total *EntityMetrics) {
				require.NotNil(t, total)
				assert.Equal(t, "camp-001", total.EntityID)
				assert.Equal(t, "ACC001", total.AccountID)
				assert.Equal(t, "Campanha Verão", total.EntityName)
				assert.Equal(t, EntityStatusActive, total.Status)
				assert.Equal(t, 80.0, total.Spend)
				assert.Equal(t, 3.0, total.Roas)
			},
		},
		{
			name: "Todas as entradas sem métricas - totais zerados sem pânico",
			entries: []*AdInsightEntry{
				entryOn(1, nil),
				entryOn(2, nil),
			},
			validate: func(t *testing.T, total *EntityMetrics) {
				require.NotNil(t, total)
				assert.Equal(t, 0.0, total.Spend)
				assert.Equal(t, 0.0, total.Roas)
				assert.Nil(t, total.Cpa)
				assert.Nil(t, total.Ctr)
			},
		},
		{
			name: "Profit diário propaga o custo da mercadoria para o total",
			entries: []*AdInsightEntry{
				entryOn(1, &EntityMetrics{
					EntityName:  "Campanha Margem",
					Status:      EntityStatusActive,
					Spend:       100,
					Revenue:     300,
					Conversions: 5,
					Profit:      float64Ptr(120), // custo de mercadoria = 300 - 120 - 100 = 80
				}),
				entryOn(2, &EntityMetrics{
					EntityName:  "Campanha Margem",
					Status:      EntityStatusActive,
					Spend:       100,
					Revenue:     200,
					Conversions: 5,
					Profit:      float64Ptr(40), // custo de mercadoria = 200 - 40 - 100 = 60
				}),
			},
			validate: func(t *testing.T, total *EntityMetrics) {
				require.NotNil(t, total)
				require.NotNil(t, total.Profit)
				// 500 de receita - 200 de spend - 140 de custo
				assert.Equal(t, 160.0, *total.Profit)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, AggregateEntries(tt.entries))
		})
	}
}

func TestCalculateBenchmarks(t *testing.T) {
	t.Run("Entidades sem gasto não entram na média de ROAS", func(t *testing.T) {
		benchmarks := CalculateBenchmarks([]*EntityMetrics{
			{EntityID: "camp-001", Spend: 100, Roas: 3.0, Cpa: float64Ptr(10)},
			{EntityID: "camp-002", Spend: 50, Roas: 1.0, Cpa: float64Ptr(20)},
			{EntityID: "camp-003", Spend: 0, Roas: 0},
		})

		require.NotNil(t, benchmarks)
		assert.Equal(t, 2.0, benchmarks.AvgRoas)
		require.NotNil(t, benchmarks.AvgCpa)
		assert.Equal(t, 15.0, *benchmarks.AvgCpa)
		assert.Nil(t, benchmarks.AvgCtr)
	})

	t.Run("Nenhuma entidade com gasto - sem benchmarks", func(t *testing.T) {
		benchmarks := CalculateBenchmarks([]*EntityMetrics{
			{EntityID: "camp-001", Spend: 0},
		})
		assert.Nil(t, benchmarks)
	})
}
