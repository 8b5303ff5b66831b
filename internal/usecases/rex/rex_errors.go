package rex

import "errors"

var (
	ErrAccountNotFound    = errors.New("conta de anúncio não encontrada")
	ErrSuggestionNotFound = errors.New("sugestão não encontrada")
)
