package rex

import "github.com/revoa/revoa-api/internal/domain"

// Camada de personalidade do Rex. Os bancos de frases existem para variar o
// tom das mensagens, mas a seleção usa índice fixo por tipo de verificação:
// a saída é determinística para a mesma entrada.

var greetings = []string{
	"Oi! Aqui é o Rex.",
	"Rex na área!",
	"Passando para avisar:",
	"Olha só o que eu encontrei:",
}

var urgencyPhrases = map[domain.Urgency][]string{
	domain.UrgencyCritical: {
		"Isso precisa de atenção agora.",
		"Quanto antes você agir, menos dinheiro vai embora.",
	},
	domain.UrgencyHigh: {
		"Vale olhar ainda hoje.",
		"Não deixa essa passar.",
	},
	domain.UrgencyMedium: {
		"Sem pressa, mas mereceria uma olhada essa semana.",
		"Anota aí para a próxima revisão.",
	},
	domain.UrgencyLow: {
		"Só para você ficar de olho.",
		"Nada urgente, é mais um lembrete.",
	},
}

// Índices fixos por verificação
var phraseIndexByType = map[domain.RexSuggestionType]int{
	domain.RexNegativeROI:       0,
	domain.RexScaleOpportunity:  1,
	domain.RexCreativeFatigue:   2,
	domain.RexUnderperformance:  3,
	domain.RexLowConversionRate: 0,
}

func greetingFor(suggestionType domain.RexSuggestionType) string {
	return greetings[phraseIndexByType[suggestionType]%len(greetings)]
}

func urgencyPhraseFor(suggestionType domain.RexSuggestionType, urgency domain.Urgency) string {
	bank := urgencyPhrases[urgency]
	if len(bank) == 0 {
		return ""
	}
	return bank[phraseIndexByType[suggestionType]%len(bank)]
}
