package suggesting

import (
	"fmt"

	"github.com/revoa/revoa-api/internal/domain"
	"github.com/revoa/revoa-api/pkg/utils"
)

// Prioridades e confianças fixas por classificação
const (
	priorityScaleHighPerformer = 95
	priorityPause              = 90
	priorityNegativeROI        = 85
	priorityReduceBudget       = 75
	priorityHighCPA            = 70
	priorityLowCTR             = 60
	priorityOptimizeModerate   = 50

	confidenceScaleHighPerformer = 90
	confidencePause              = 85
	confidenceNegativeROI        = 80
	confidenceReduceBudget       = 75
	confidenceHighCPA            = 70
	confidenceLowCTR             = 65
	confidenceOptimizeModerate   = 60
)

// Limiares de classificação
const (
	scaleRoasThreshold    = 2.5
	scaleSpendThreshold   = 50.0
	pauseRoasThreshold    = 1.0
	pauseSpendThreshold   = 100.0
	underperformRoasRatio = 0.7
	highCpaRatio          = 1.5
	lowCtrRatio           = 0.5
	moderateRoasMin       = 1.5
)

// classificationRule é um par (predicado, construtor). A lista é avaliada de
// cima para baixo e a primeira regra que casar encerra a classificação — a
// ordem carrega a urgência comercial e não pode ser alterada.
type classificationRule struct {
	matches func(m *domain.EntityMetrics, b *domain.Benchmarks) bool
	build   func(m *domain.EntityMetrics, entityType domain.EntityType, b *domain.Benchmarks) *domain.Suggestion
}

var classificationRules = []classificationRule{
	{matchesScaleHighPerformer, buildScaleHighPerformer},
	{matchesPauseUnderperforming, buildPauseUnderperforming},
	{matchesReduceBudgetUnderperformer, buildReduceBudgetUnderperformer},
	{matchesNegativeROI, buildNegativeROI},
	{matchesHighCPA, buildHighCPA},
	{matchesLowCTR, buildLowCTR},
	{matchesOptimizeModerate, buildOptimizeModerate},
}

func matchesScaleHighPerformer(m *domain.EntityMetrics, _ *domain.Benchmarks) bool {
	return m.Roas >= scaleRoasThreshold && m.Spend >= scaleSpendThreshold
}

func buildScaleHighPerformer(m *domain.EntityMetrics, entityType domain.EntityType, _ *domain.Benchmarks) *domain.Suggestion {
	budgetIncrease := utils.RoundWithTwoDecimalPlace(m.Spend * 0.5)

	// O limiar derivado vai íntegro para a regra automática; o arredondamento
	// acontece apenas na formatação do texto
	protectionThreshold := m.Roas * 0.75

	return &domain.Suggestion{
		Type:       domain.SituationScaleHighPerformer,
		Priority:   priorityScaleHighPerformer,
		Confidence: confidenceScaleHighPerformer,
		Title:      fmt.Sprintf("Oportunidade de escala: %s com ROAS %.2f", entityType.Label(), m.Roas),
		Message: fmt.Sprintf(
			"A %s %q está performando acima da meta, com ROAS de %.2f e investimento de $%.2f. Recomendamos aumentar o orçamento em 50%% ($%.2f) para capturar mais resultado.",
			entityType.Label(), m.EntityName, m.Roas, m.Spend, budgetIncrease,
		),
		Reasoning: &domain.SuggestionReasoning{
			Triggers:  []string{"roas_acima_do_limiar_de_escala", "investimento_acima_do_minimo"},
			RiskLevel: domain.RiskLow,
			Urgency:   domain.UrgencyHigh,
			Metrics:   snapshotOf(m),
			Analysis: fmt.Sprintf(
				"ROAS de %.2f com $%.2f investidos indica que a %s sustenta volume. Escalar agora tende a manter o retorno enquanto o ROAS ficar acima de %.2f.",
				m.Roas, m.Spend, entityType.Label(), protectionThreshold,
			),
		},
		RecommendedRule: &domain.AutomatedRule{
			Name:              "Pausa de proteção durante a escala",
			ConditionMetric:   "roas",
			ConditionOperator: "<",
			ConditionValue:    protectionThreshold,
			Action:            "pause",
			ActionValue:       0,
			Frequency:         "daily",
			RequiresApproval:  false,
		},
		EstimatedImpact: &domain.EstimatedImpact{
			ProjectedRevenue: utils.RoundWithTwoDecimalPlace(budgetIncrease * m.Roas),
			BudgetChange:     budgetIncrease,
			Confidence:       "alta",
		},
	}
}

func matchesPauseUnderperforming(m *domain.EntityMetrics, _ *domain.Benchmarks) bool {
	return m.Roas < pauseRoasThreshold && m.Spend >= pauseSpendThreshold
}

func buildPauseUnderperforming(m *domain.EntityMetrics, entityType domain.EntityType, _ *domain.Benchmarks) *domain.Suggestion {
	return &domain.Suggestion{
		Type:       domain.SituationPauseUnderperforming,
		Priority:   priorityPause,
		Confidence: confidencePause,
		Title:      fmt.Sprintf("Pausar %s: ROAS abaixo de 1", entityType.Label()),
		Message: fmt.Sprintf(
			"A %s %q já consumiu $%.2f com ROAS de %.2f — cada dólar investido retorna menos de um dólar. Recomendamos pausar imediatamente para estancar a perda.",
			entityType.Label(), m.EntityName, m.Spend, m.Roas,
		),
		Reasoning: &domain.SuggestionReasoning{
			Triggers:  []string{"roas_abaixo_de_um", "investimento_acima_do_limite_de_perda"},
			RiskLevel: domain.RiskHigh,
			Urgency:   domain.UrgencyCritical,
			Metrics:   snapshotOf(m),
			Analysis: fmt.Sprintf(
				"Com ROAS de %.2f, a %s opera abaixo do ponto de equilíbrio. Manter o investimento de $%.2f só amplia o prejuízo.",
				m.Roas, entityType.Label(), m.Spend,
			),
		},
		RecommendedRule: &domain.AutomatedRule{
			Name:              "Pausa automática por ROAS crítico",
			ConditionMetric:   "roas",
			ConditionOperator: "<",
			ConditionValue:    pauseRoasThreshold,
			Action:            "pause",
			ActionValue:       0,
			Frequency:         "daily",
			RequiresApproval:  false,
		},
		EstimatedImpact: &domain.EstimatedImpact{
			ProjectedSavings: utils.RoundWithTwoDecimalPlace(m.Spend),
			BudgetChange:     utils.RoundWithTwoDecimalPlace(-m.Spend),
			Confidence:       "alta",
		},
	}
}

func matchesReduceBudgetUnderperformer(m *domain.EntityMetrics, b *domain.Benchmarks) bool {
	// Média da conta não positiva desabilita a comparação relativa
	if b == nil || b.AvgRoas <= 0 {
		return false
	}
	return m.Roas < b.AvgRoas*underperformRoasRatio && m.Spend >= scaleSpendThreshold
}

func buildReduceBudgetUnderperformer(m *domain.EntityMetrics, entityType domain.EntityType, b *domain.Benchmarks) *domain.Suggestion {
	budgetReduction := utils.RoundWithTwoDecimalPlace(m.Spend * 0.5)
	relativeThreshold := b.AvgRoas * underperformRoasRatio

	return &domain.Suggestion{
		Type:       domain.SituationReduceBudgetUnderperform,
		Priority:   priorityReduceBudget,
		Confidence: confidenceReduceBudget,
		Title:      fmt.Sprintf("Reduzir orçamento: %s abaixo da média da conta", entityType.Label()),
		Message: fmt.Sprintf(
			"A %s %q tem ROAS de %.2f, bem abaixo da média da conta (%.2f). Recomendamos reduzir o orçamento em 50%% ($%.2f) e realocar para as entidades de melhor retorno.",
			entityType.Label(), m.EntityName, m.Roas, b.AvgRoas, budgetReduction,
		),
		Reasoning: &domain.SuggestionReasoning{
			Triggers:  []string{"roas_abaixo_da_media_da_conta", "investimento_acima_do_minimo"},
			RiskLevel: domain.RiskMedium,
			Urgency:   domain.UrgencyHigh,
			Metrics:   snapshotOf(m),
			Analysis: fmt.Sprintf(
				"O ROAS de %.2f está abaixo de 70%% da média da conta (%.2f). Realocar metade do orçamento tende a melhorar o retorno agregado.",
				m.Roas, relativeThreshold,
			),
		},
		RecommendedRule: &domain.AutomatedRule{
			Name:              "Redução de orçamento por baixa performance relativa",
			ConditionMetric:   "roas",
			ConditionOperator: "<",
			ConditionValue:    relativeThreshold,
			Action:            "reduce_budget",
			ActionValue:       50,
			Frequency:         "daily",
			RequiresApproval:  false,
		},
		EstimatedImpact: &domain.EstimatedImpact{
			ProjectedSavings: budgetReduction,
			BudgetChange:     -budgetReduction,
			Confidence:       "média",
		},
	}
}

func matchesNegativeROI(m *domain.EntityMetrics, _ *domain.Benchmarks) bool {
	return m.Profit != nil && *m.Profit < 0 && m.Spend >= pauseSpendThreshold
}

func buildNegativeROI(m *domain.EntityMetrics, entityType domain.EntityType, _ *domain.Benchmarks) *domain.Suggestion {
	loss := utils.RoundWithTwoDecimalPlace(-*m.Profit)

	return &domain.Suggestion{
		Type:       domain.SituationNegativeROI,
		Priority:   priorityNegativeROI,
		Confidence: confidenceNegativeROI,
		Title:      fmt.Sprintf("ROI negativo: %s acumula prejuízo de $%.2f", entityType.Label(), loss),
		Message: fmt.Sprintf(
			"A %s %q acumula prejuízo de $%.2f com $%.2f investidos. Recomendamos pausar até revisar a oferta e o público.",
			entityType.Label(), m.EntityName, loss, m.Spend,
		),
		Reasoning: &domain.SuggestionReasoning{
			Triggers:  []string{"lucro_negativo", "investimento_acima_do_limite_de_perda"},
			RiskLevel: domain.RiskHigh,
			Urgency:   domain.UrgencyCritical,
			Metrics:   snapshotOf(m),
			Analysis: fmt.Sprintf(
				"O prejuízo de $%.2f indica que a margem do produto não cobre o custo de aquisição atual. Pausar evita perdas adicionais.",
				loss,
			),
		},
		RecommendedRule: &domain.AutomatedRule{
			Name:              "Pausa automática por prejuízo",
			ConditionMetric:   "profit",
			ConditionOperator: "<",
			ConditionValue:    0,
			Action:            "pause",
			ActionValue:       0,
			Frequency:         "daily",
			RequiresApproval:  false,
		},
		EstimatedImpact: &domain.EstimatedImpact{
			ProjectedSavings: loss,
			BudgetChange:     utils.RoundWithTwoDecimalPlace(-m.Spend),
			Confidence:       "alta",
		},
	}
}

func matchesHighCPA(m *domain.EntityMetrics, b *domain.Benchmarks) bool {
	if m.Cpa == nil || b == nil || b.AvgCpa == nil || *b.AvgCpa <= 0 {
		return false
	}
	return *m.Cpa > *b.AvgCpa*highCpaRatio
}

func buildHighCPA(m *domain.EntityMetrics, entityType domain.EntityType, b *domain.Benchmarks) *domain.Suggestion {
	cpaThreshold := *b.AvgCpa * highCpaRatio
	excessCost := utils.RoundWithTwoDecimalPlace((*m.Cpa - *b.AvgCpa) * float64(m.Conversions))

	return &domain.Suggestion{
		Type:       domain.SituationHighCPA,
		Priority:   priorityHighCPA,
		Confidence: confidenceHighCPA,
		Title:      fmt.Sprintf("CPA elevado: %s custa $%.2f por conversão", entityType.Label(), *m.Cpa),
		Message: fmt.Sprintf(
			"A %s %q converte a $%.2f, enquanto a média da conta é $%.2f. Recomendamos revisar segmentação e criativos antes de qualquer ação automática.",
			entityType.Label(), m.EntityName, *m.Cpa, *b.AvgCpa,
		),
		Reasoning: &domain.SuggestionReasoning{
			Triggers:  []string{"cpa_acima_da_media_da_conta"},
			RiskLevel: domain.RiskMedium,
			Urgency:   domain.UrgencyMedium,
			Metrics:   snapshotOf(m),
			Analysis: fmt.Sprintf(
				"O CPA atual supera em mais de 50%% a média da conta ($%.2f). O custo excedente estimado é de $%.2f.",
				*b.AvgCpa, excessCost,
			),
		},
		RecommendedRule: &domain.AutomatedRule{
			Name:              "Revisão por CPA acima do teto",
			ConditionMetric:   "cpa",
			ConditionOperator: ">",
			ConditionValue:    cpaThreshold,
			Action:            "notify",
			ActionValue:       0,
			Frequency:         "daily",
			RequiresApproval:  true,
		},
		EstimatedImpact: &domain.EstimatedImpact{
			ProjectedSavings: excessCost,
			Confidence:       "média",
		},
	}
}

func matchesLowCTR(m *domain.EntityMetrics, b *domain.Benchmarks) bool {
	if m.Ctr == nil || b == nil || b.AvgCtr == nil || *b.AvgCtr <= 0 {
		return false
	}
	return *m.Ctr < *b.AvgCtr*lowCtrRatio
}

func buildLowCTR(m *domain.EntityMetrics, entityType domain.EntityType, b *domain.Benchmarks) *domain.Suggestion {
	ctrThreshold := *b.AvgCtr * lowCtrRatio

	return &domain.Suggestion{
		Type:       domain.SituationLowCTR,
		Priority:   priorityLowCTR,
		Confidence: confidenceLowCTR,
		Title:      fmt.Sprintf("CTR baixo: %s com %.1f%% de cliques", entityType.Label(), *m.Ctr),
		Message: fmt.Sprintf(
			"A %s %q tem CTR de %.1f%%, menos da metade da média da conta (%.1f%%). Recomendamos renovar os criativos para recuperar o engajamento.",
			entityType.Label(), m.EntityName, *m.Ctr, *b.AvgCtr,
		),
		Reasoning: &domain.SuggestionReasoning{
			Triggers:  []string{"ctr_abaixo_da_metade_da_media"},
			RiskLevel: domain.RiskLow,
			Urgency:   domain.UrgencyMedium,
			Metrics:   snapshotOf(m),
			Analysis: fmt.Sprintf(
				"CTR de %.1f%% contra média de %.1f%% sugere fadiga ou desalinhamento do criativo com o público.",
				*m.Ctr, *b.AvgCtr,
			),
		},
		RecommendedRule: &domain.AutomatedRule{
			Name:              "Troca de criativo por CTR baixo",
			ConditionMetric:   "ctr",
			ConditionOperator: "<",
			ConditionValue:    ctrThreshold,
			Action:            "rotate_creative",
			ActionValue:       0,
			Frequency:         "weekly",
			RequiresApproval:  true,
		},
	}
}

func matchesOptimizeModerate(m *domain.EntityMetrics, _ *domain.Benchmarks) bool {
	return m.Roas >= moderateRoasMin && m.Roas < scaleRoasThreshold && m.Spend >= scaleSpendThreshold
}

func buildOptimizeModerate(m *domain.EntityMetrics, entityType domain.EntityType, _ *domain.Benchmarks) *domain.Suggestion {
	budgetIncrease := utils.RoundWithTwoDecimalPlace(m.Spend * 0.2)

	return &domain.Suggestion{
		Type:       domain.SituationOptimizeModerate,
		Priority:   priorityOptimizeModerate,
		Confidence: confidenceOptimizeModerate,
		Title:      fmt.Sprintf("Otimizar %s: performance moderada", entityType.Label()),
		Message: fmt.Sprintf(
			"A %s %q mantém ROAS de %.2f com $%.2f investidos. Há espaço para testes incrementais de orçamento e criativo antes de escalar.",
			entityType.Label(), m.EntityName, m.Roas, m.Spend,
		),
		Reasoning: &domain.SuggestionReasoning{
			Triggers:  []string{"roas_moderado", "investimento_acima_do_minimo"},
			RiskLevel: domain.RiskLow,
			Urgency:   domain.UrgencyLow,
			Metrics:   snapshotOf(m),
			Analysis: fmt.Sprintf(
				"ROAS entre %.1f e %.1f indica operação rentável porém sem folga para escala agressiva. Um incremento de $%.2f permite testar o teto sem comprometer o retorno.",
				moderateRoasMin, scaleRoasThreshold, budgetIncrease,
			),
		},
		EstimatedImpact: &domain.EstimatedImpact{
			ProjectedRevenue: utils.RoundWithTwoDecimalPlace(budgetIncrease * m.Roas),
			BudgetChange:     budgetIncrease,
			Confidence:       "média",
		},
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
