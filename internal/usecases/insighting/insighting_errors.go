package insighting

import "errors"

var (
	ErrAccountNotFound = errors.New("conta de anúncio não encontrada")
)
