package rex

import (
	"fmt"
	"time"

	"github.com/revoa/revoa-api/internal/domain"
	"github.com/revoa/revoa-api/pkg/utils"
)

// Limiares do analisador proativo. Divergem de propósito dos limiares do
// classificador de sugestões: os dois motores são mantidos separadamente.
const (
	pauseSpendTrigger = 50.0

	scaleRoasTrigger  = 3.0
	scaleSpendTrigger = 30.0

	fatigueCtrRatio          = 0.6
	fatigueImpressionsFloor  = 10000
	underperformRoasRatio    = 0.6
	underperformSpendTrigger = 20.0

	lowConversionClicksFloor = 100
	lowConversionRateFloor   = 1.0
)

type check func(m *domain.EntityMetrics, entityType domain.EntityType, b *domain.Benchmarks) *domain.CreateRexSuggestionParams

var checks = []check{
	checkNegativeROI,
	checkScaleOpportunity,
	checkCreativeFatigue,
	checkUnderperformance,
	checkLowConversionRate,
}

// Analyze roda as cinco verificações independentes sobre o snapshot e devolve
// todas as que casaram. Diferente do classificador, não há curto-circuito:
// uma entidade pode acumular mais de um alerta.
func Analyze(metrics *domain.EntityMetrics, entityType domain.EntityType, benchmarks *domain.Benchmarks) []*domain.CreateRexSuggestionParams {
	if metrics == nil {
		return nil
	}

	results := make([]*domain.CreateRexSuggestionParams, 0)
	for _, runCheck := range checks {
		if suggestion := runCheck(metrics, entityType, benchmarks); suggestion != nil {
			suggestion.EntityID = metrics.EntityID
			suggestion.EntityType = entityType
			suggestion.EntityName = metrics.EntityName
			suggestion.Platform = metrics.Platform
			suggestion.Metrics = snapshotOf(metrics)
			results = append(results, suggestion)
		}
	}

	return results
}

func checkNegativeROI(m *domain.EntityMetrics, entityType domain.EntityType, _ *domain.Benchmarks) *domain.CreateRexSuggestionParams {
	if m.Profit == nil || *m.Profit >= 0 || m.Spend <= pauseSpendTrigger {
		return nil
	}

	loss := utils.RoundWithTwoDecimalPlace(-*m.Profit)

	return &domain.CreateRexSuggestionParams{
		Type:  domain.RexNegativeROI,
		Title: fmt.Sprintf("Prejuízo na %s %q", entityType.Label(), m.EntityName),
		Message: fmt.Sprintf(
			"%s A %s %q já queimou $%.2f: gastou $%.2f e devolveu $%.2f. %s",
			greetingFor(domain.RexNegativeROI),
			entityType.Label(), m.EntityName, loss, m.Spend, m.Revenue,
			urgencyPhraseFor(domain.RexNegativeROI, domain.UrgencyCritical),
		),
		Urgency:         domain.UrgencyCritical,
		PotentialImpact: loss,
	}
}

func checkScaleOpportunity(m *domain.EntityMetrics, entityType domain.EntityType, _ *domain.Benchmarks) *domain.CreateRexSuggestionParams {
	if m.Roas < scaleRoasTrigger || m.Spend < scaleSpendTrigger {
		return nil
	}

	projectedGain := utils.RoundWithTwoDecimalPlace(m.Spend * 0.5 * m.Roas)

	return &domain.CreateRexSuggestionParams{
		Type:  domain.RexScaleOpportunity,
		Title: fmt.Sprintf("Hora de escalar a %s %q", entityType.Label(), m.EntityName),
		Message: fmt.Sprintf(
			"%s A %s %q está com ROAS de %.2f. Subindo o orçamento em 50%%, a projeção é de mais $%.2f em receita. %s",
			greetingFor(domain.RexScaleOpportunity),
			entityType.Label(), m.EntityName, m.Roas, projectedGain,
			urgencyPhraseFor(domain.RexScaleOpportunity, domain.UrgencyHigh),
		),
		Urgency:         domain.UrgencyHigh,
		PotentialImpact: projectedGain,
	}
}

// Fadiga de criativo só faz sentido no nível do anúncio
func checkCreativeFatigue(m *domain.EntityMetrics, entityType domain.EntityType, b *domain.Benchmarks) *domain.CreateRexSuggestionParams {
	if entityType != domain.EntityTypeAd {
		return nil
	}
	if m.Ctr == nil || m.Impressions == nil || *m.Impressions < fatigueImpressionsFloor {
		return nil
	}
	if b == nil || b.AvgCtr == nil || *b.AvgCtr <= 0 {
		return nil
	}
	if *m.Ctr >= *b.AvgCtr*fatigueCtrRatio {
		return nil
	}

	return &domain.CreateRexSuggestionParams{
		Type:  domain.RexCreativeFatigue,
		Title: fmt.Sprintf("Criativo cansado: %q", m.EntityName),
		Message: fmt.Sprintf(
			"%s O anúncio %q já passou de %d impressões e o CTR caiu para %.1f%% (média da conta: %.1f%%). O público já viu demais esse criativo. %s",
			greetingFor(domain.RexCreativeFatigue),
			m.EntityName, *m.Impressions, *m.Ctr, *b.AvgCtr,
			urgencyPhraseFor(domain.RexCreativeFatigue, domain.UrgencyMedium),
		),
		Urgency:         domain.UrgencyMedium,
		PotentialImpact: utils.RoundWithTwoDecimalPlace(m.Spend * 0.3),
	}
}

func checkUnderperformance(m *domain.EntityMetrics, entityType domain.EntityType, b *domain.Benchmarks) *domain.CreateRexSuggestionParams {
	if b == nil || b.AvgRoas <= 0 || m.Spend < underperformSpendTrigger {
		return nil
	}
	if m.Roas >= b.AvgRoas*underperformRoasRatio {
		return nil
	}

	reallocation := utils.RoundWithTwoDecimalPlace(m.Spend * 0.4)

	return &domain.CreateRexSuggestionParams{
		Type:  domain.RexUnderperformance,
		Title: fmt.Sprintf("%s abaixo do resto da conta", entityType.Label()),
		Message: fmt.Sprintf(
			"%s A %s %q rende ROAS %.2f enquanto a conta faz %.2f em média. Realocar uns $%.2f para as campeãs deve render mais. %s",
			greetingFor(domain.RexUnderperformance),
			entityType.Label(), m.EntityName, m.Roas, b.AvgRoas, reallocation,
			urgencyPhraseFor(domain.RexUnderperformance, domain.UrgencyHigh),
		),
		Urgency:         domain.UrgencyHigh,
		PotentialImpact: reallocation,
	}
}

func checkLowConversionRate(m *domain.EntityMetrics, entityType domain.EntityType, _ *domain.Benchmarks) *domain.CreateRexSuggestionParams {
	if m.Clicks == nil || *m.Clicks < lowConversionClicksFloor {
		return nil
	}

	conversionRate := utils.RoundWithOneDecimalPlace(
		utils.SafeDivide(float64(m.Conversions), float64(*m.Clicks)) * 100,
	)
	if conversionRate >= lowConversionRateFloor {
		return nil
	}

	return &domain.CreateRexSuggestionParams{
		Type:  domain.RexLowConversionRate,
		Title: fmt.Sprintf("Cliques sem conversão na %s %q", entityType.Label(), m.EntityName),
		Message: fmt.Sprintf(
			"%s A %s %q recebeu %d cliques mas converteu só %.1f%%. O tráfego chega, a página não segura. Vale revisar oferta e checkout. %s",
			greetingFor(domain.RexLowConversionRate),
			entityType.Label(), m.EntityName, *m.Clicks, conversionRate,
			urgencyPhraseFor(domain.RexLowConversionRate, domain.UrgencyMedium),
		),
		Urgency:         domain.UrgencyMedium,
		PotentialImpact: utils.RoundWithTwoDecimalPlace(m.Spend * 0.25),
	}
}

func snapshotOf(m *domain.EntityMetrics) domain.MetricsSnapshot {
	return domain.MetricsSnapshot{
		Spend:       m.Spend,
		Revenue:     m.Revenue,
		Roas:        m.Roas,
		Conversions: m.Conversions,
		Profit:      m.Profit,
		Cpa:         m.Cpa,
		Ctr:         m.Ctr,
	}
}

// expiryFor calcula a validade da sugestão a partir do momento da análise
func expiryFor(now time.Time, ttlHours int) time.Time {
	return now.Add(time.Duration(ttlHours) * time.Hour)
}
