package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/revoa/revoa-api/internal/domain"
	"github.com/revoa/revoa-api/internal/usecases/products"
	"github.com/revoa/revoa-api/pkg/apiErrors"
)

// ImportProductResponse devolve o produto persistido e o resultado da regra de preço
type ImportProductResponse struct {
	Product *domain.Product      `json:"product"`
	Pricing *domain.PricingCheck `json:"pricing"`
}

// ImportProduct aplica a regra price-first e persiste o produto com o status
// resultante. Produtos reprovados também são gravados, marcados como REJECTED.
func ImportProduct(service products.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ImportProduct")

		var request domain.ImportProductRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		product, pricing, err := service.ImportProduct(&request)
		if err != nil {
			logrus.Error("Error importing product:", err)

			if errors.Is(err, products.ErrMissingProductData) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "SKU e título do produto são obrigatórios", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao importar produto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if product.Status == domain.ProductStatusRejected {
			w.WriteHeader(http.StatusUnprocessableEntity)
		} else {
			w.WriteHeader(http.StatusCreated)
		}

		if err := json.NewEncoder(w).Encode(ImportProductResponse{
			Product: product,
			Pricing: pricing,
		}); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ListProducts lista os produtos importados
func ListProducts(service products.ProductService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		productList, err := service.ListProducts()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produtos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(productList); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
