package products

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/revoa/revoa-api/infrastructure/repository/mocks"
	"github.com/revoa/revoa-api/internal/domain"
)

func TestService_CheckPricing(t *testing.T) {
	service := &Service{}

	tests := []struct {
		name         string
		amazonPrice  float64
		supplierCost float64
		shippingCost float64
		expectPass   bool
		validate     func(t *testing.T, check *domain.PricingCheck)
	}{
		{
			name:         "Custo abaixo de 50% da referência - aprovado pela regra da metade",
			amazonPrice:  40,
			supplierCost: 12,
			shippingCost: 3,
			expectPass:   true,
			validate: func(t *testing.T, check *domain.PricingCheck) {
				assert.Equal(t, 15.0, check.LandedCost)
				assert.Equal(t, 25.0, check.Spread)
				assert.InDelta(t, 0.38, check.CostRatio, 0.01)
			},
		},
		{
			name:         "Custo acima de 50% mas margem de $20 - aprovado pela regra do spread",
			amazonPrice:  60,
			supplierCost: 30,
			shippingCost: 5,
			expectPass:   true,
			validate: func(t *testing.T, check *domain.PricingCheck) {
				assert.Equal(t, 35.0, check.LandedCost)
				assert.Equal(t, 25.0, check.Spread)
			},
		},
		{
			name:         "Custo exatamente em 50% da referência - aprovado (limite inclusivo)",
			amazonPrice:  30,
			supplierCost: 15,
			shippingCost: 0,
			expectPass:   true,
		},
		{
			name:         "Margem exatamente em $20 - aprovado (limite inclusivo)",
			amazonPrice:  55,
			supplierCost: 35,
			shippingCost: 0,
			expectPass:   true,
		},
		{
			name:         "Custo alto e margem curta - reprovado",
			amazonPrice:  30,
			supplierCost: 18,
			shippingCost: 2,
			expectPass:   false,
			validate: func(t *testing.T, check *domain.PricingCheck) {
				assert.NotEmpty(t, check.FailedReason)
			},
		},
		{
			name:         "Sem preço de referência - reprovado",
			amazonPrice:  0,
			supplierCost: 10,
			shippingCost: 2,
			expectPass:   false,
		},
		{
			name:         "Sem custo de fornecedor - reprovado",
			amazonPrice:  50,
			supplierCost: 0,
			shippingCost: 0,
			expectPass:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := service.CheckPricing(tt.amazonPrice, tt.supplierCost, tt.shippingCost)

			assert.Equal(t, tt.expectPass, check.Passed)
			if tt.validate != nil {
				tt.validate(t, check)
			}
		})
	}
}

func TestService_ImportProduct(t *testing.T) {
	fixedNow := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Produto aprovado recebe os campos de auditoria do relógio do serviço", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		productRepo := mocks.NewMockProductRepository(ctrl)
		productRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(p *domain.Product) (*domain.Product, error) { return p, nil })

		service := NewService(productRepo).WithClock(func() time.Time { return fixedNow })

		product, check, err := service.ImportProduct(&domain.ImportProductRequest{
			ExternalSKU:  "SKU-001",
			Title:        "Garrafa Térmica",
			AmazonPrice:  40,
			SupplierCost: 12,
			ShippingCost: 3,
		})

		require.NoError(t, err)
		require.NotNil(t, product)
		assert.True(t, check.Passed)
		assert.Equal(t, domain.ProductStatusApproved, product.Status)
		assert.Equal(t, fixedNow, product.CreatedAt)
		assert.Equal(t, fixedNow, product.UpdatedAt)
	})

	t.Run("Produto reprovado também é persistido com o status de rejeição", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		productRepo := mocks.NewMockProductRepository(ctrl)
		productRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(p *domain.Product) (*domain.Product, error) { return p, nil })

		service := NewService(productRepo).WithClock(func() time.Time { return fixedNow })

		product, check, err := service.ImportProduct(&domain.ImportProductRequest{
			ExternalSKU:  "SKU-002",
			Title:        "Caneca",
			AmazonPrice:  30,
			SupplierCost: 18,
			ShippingCost: 2,
		})

		require.NoError(t, err)
		require.NotNil(t, product)
		assert.False(t, check.Passed)
		assert.Equal(t, domain.ProductStatusRejected, product.Status)
		assert.Equal(t, fixedNow, product.CreatedAt)
	})

	t.Run("SKU ausente interrompe a importação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mocks.NewMockProductRepository(ctrl))

		_, _, err := service.ImportProduct(&domain.ImportProductRequest{Title: "Sem SKU"})
		assert.ErrorIs(t, err, ErrMissingProductData)
	})
}
