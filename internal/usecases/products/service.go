package products

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/revoa/revoa-api/infrastructure/repository"
	"github.com/revoa/revoa-api/internal/domain"
	"github.com/revoa/revoa-api/pkg/utils"
)

// Regra de preço da importação price-first: o custo total do fornecedor
// (produto + frete) precisa caber em metade do preço de referência da Amazon,
// ou a diferença absoluta precisa ser de pelo menos $20
const (
	maxCostRatio    = 0.50
	minSpreadDollar = 20.0

	// Markup sugerido sobre o custo total
	suggestedPriceMultiplier = 3.0
)

type ProductService interface {
	ImportProduct(request *domain.ImportProductRequest) (*domain.Product, *domain.PricingCheck, error)
	ListProducts() ([]*domain.Product, error)
	CheckPricing(amazonPrice, supplierCost, shippingCost float64) *domain.PricingCheck
}

type Service struct {
	productRepository repository.ProductRepository
	now               func() time.Time
}

func NewService(productRepository repository.ProductRepository) *Service {
	return &Service{
		productRepository: productRepository,
		now:               time.Now,
	}
}

// WithClock substitui a fonte de tempo do serviço
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CheckPricing aplica a regra de preço e devolve o detalhamento do cálculo
func (s *Service) CheckPricing(amazonPrice, supplierCost, shippingCost float64) *domain.PricingCheck {
	check := &domain.PricingCheck{
		LandedCost: utils.RoundWithTwoDecimalPlace(supplierCost + shippingCost),
	}

	if amazonPrice <= 0 {
		check.FailedReason = "preço de referência da Amazon ausente"
		return check
	}
	if check.LandedCost <= 0 {
		check.FailedReason = "custo do fornecedor ausente"
		return check
	}

	check.Spread = utils.RoundWithTwoDecimalPlace(amazonPrice - check.LandedCost)
	check.CostRatio = utils.RoundWithTwoDecimalPlace(check.LandedCost / amazonPrice)

	halfRule := check.LandedCost <= amazonPrice*maxCostRatio
	spreadRule := check.Spread >= minSpreadDollar

	if halfRule || spreadRule {
		check.Passed = true
		return check
	}

	check.FailedReason = "custo acima de 50% da referência e margem abaixo de $20"
	return check
}

// ImportProduct valida a regra de preço e faz o upsert do produto pelo SKU.
// Produtos reprovados também são registrados, com status de rejeição, para
// que a mesma oferta não seja reavaliada do zero.
func (s *Service) ImportProduct(request *domain.ImportProductRequest) (*domain.Product, *domain.PricingCheck, error) {
	if request.ExternalSKU == "" || request.Title == "" {
		return nil, nil, ErrMissingProductData
	}

	check := s.CheckPricing(request.AmazonPrice, request.SupplierCost, request.ShippingCost)

	status := domain.ProductStatusRejected
	if check.Passed {
		status = domain.ProductStatusApproved
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	product := &domain.Product{
		ID:             id,
		ExternalSKU:    request.ExternalSKU,
		Title:          request.Title,
		Description:    request.Description,
		AmazonPrice:    request.AmazonPrice,
		SupplierCost:   request.SupplierCost,
		ShippingCost:   request.ShippingCost,
		SuggestedPrice: utils.RoundWithTwoDecimalPlace(check.LandedCost * suggestedPriceMultiplier),
		ImageURLs:      request.ImageURLs,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	saved, err := s.productRepository.SaveOrUpdate(product)
	if err != nil {
		return nil, nil, err
	}

	logrus.WithFields(logrus.Fields{
		"external_sku": request.ExternalSKU,
		"status":       status,
		"landed_cost":  check.LandedCost,
		"spread":       check.Spread,
	}).Info("Produto importado")

	return saved, check, nil
}

func (s *Service) ListProducts() ([]*domain.Product, error) {
	return s.productRepository.ListProducts()
}
