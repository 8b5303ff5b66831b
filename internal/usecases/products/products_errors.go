package products

import "errors"

var (
	ErrMissingProductData = errors.New("SKU e título do produto são obrigatórios")
	ErrProductNotFound    = errors.New("produto não encontrado")
)
