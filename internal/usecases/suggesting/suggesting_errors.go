package suggesting

import "errors"

var (
	ErrAccountNotFound = errors.New("conta de anúncio não encontrada")
)
