package domain

import (
	"time"

	"github.com/revoa/revoa-api/pkg/utils"
)

type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// AdAccountInsightsResponse agrega as métricas de todas as entidades de uma conta no período
type AdAccountInsightsResponse struct {
	AccountID  string           `json:"account_id"`
	Entities   []*EntityMetrics `json:"entities"`
	Benchmarks *Benchmarks      `json:"benchmarks"`
	Filters    *InsightFilters  `json:"filters"`
}

// AggregateEntries soma as entradas diárias de uma entidade e deriva as métricas
// compostas (roas, cpa, ctr, profit) com guarda de divisão por zero
func AggregateEntries(entries []*AdInsightEntry) *EntityMetrics {
	if len(entries) == 0 {
		return nil
	}

	// Nome e status vêm da entrada mais recente com métricas; linhas com
	// metrics nulo são dados válidos e não podem derrubar a agregação
	total := &EntityMetrics{
		EntityID:  entries[0].EntityID,
		AccountID: entries[0].AccountID,
		Platform:  entries[0].Platform,
	}

	var impressions, clicks int
	var hasImpressions, hasClicks bool
	var costOfGoods float64
	var hasCost bool

	for _, entry := range entries {
		m := entry.Metrics
		if m == nil {
			continue
		}

		total.Spend += m.Spend
		total.Revenue += m.Revenue
		total.Conversions += m.Conversions

		// Status mais recente prevalece
		total.Status = m.Status
		total.EntityName = m.EntityName

		if m.Impressions != nil {
			impressions += *m.Impressions
			hasImpressions = true
		}
		if m.Clicks != nil {
			clicks += *m.Clicks
			hasClicks = true
		}
		if m.Profit != nil {
			costOfGoods += m.Revenue - *m.Profit - m.Spend
			hasCost = true
		}
	}

	total.Roas = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(total.Revenue, total.Spend))

	if total.Conversions > 0 {
		cpa := utils.RoundWithTwoDecimalPlace(total.Spend / float64(total.Conversions))
		total.Cpa = &cpa
	}

	if hasImpressions {
		total.Impressions = &impressions
	}
	if hasClicks {
		total.Clicks = &clicks
	}
	if hasImpressions && hasClicks && impressions > 0 {
		ctr := utils.RoundWithTwoDecimalPlace(float64(clicks) / float64(impressions) * 100)
		total.Ctr = &ctr
	}
	if hasCost {
		profit := utils.RoundWithTwoDecimalPlace(total.Revenue - total.Spend - costOfGoods)
		total.Profit = &profit
	}

	return total
}

// CalculateBenchmarks calcula as médias da conta a partir das métricas agregadas
// de cada entidade. Entidades sem gasto não entram na média de ROAS.
func CalculateBenchmarks(entities []*EntityMetrics) *Benchmarks {
	if len(entities) == 0 {
		return nil
	}

	var roasSum, cpaSum, ctrSum float64
	var roasCount, cpaCount, ctrCount int

	for _, entity := range entities {
		if entity == nil {
			continue
		}

		if entity.Spend > 0 {
			roasSum += entity.Roas
			roasCount++
		}
		if entity.Cpa != nil {
			cpaSum += *entity.Cpa
			cpaCount++
		}
		if entity.Ctr != nil {
			ctrSum += *entity.Ctr
			ctrCount++
		}
	}

	if roasCount == 0 {
		return nil
	}

	benchmarks := &Benchmarks{
		AvgRoas: utils.RoundWithTwoDecimalPlace(roasSum / float64(roasCount)),
	}

	if cpaCount > 0 {
		avgCpa := utils.RoundWithTwoDecimalPlace(cpaSum / float64(cpaCount))
		benchmarks.AvgCpa = &avgCpa
	}
	if ctrCount > 0 {
		avgCtr := utils.RoundWithTwoDecimalPlace(ctrSum / float64(ctrCount))
		benchmarks.AvgCtr = &avgCtr
	}

	return benchmarks
}
