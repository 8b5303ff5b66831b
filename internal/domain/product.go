package domain

import "time"

type ProductStatus string

const (
	ProductStatusApproved ProductStatus = "APPROVED"
	ProductStatusRejected ProductStatus = "REJECTED"
)

// Product representa um produto importado pelo fluxo price-first
type Product struct {
	ID             string        `json:"id"`
	ExternalSKU    string        `json:"external_sku"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	AmazonPrice    float64       `json:"amazon_price"`
	SupplierCost   float64       `json:"supplier_cost"`
	ShippingCost   float64       `json:"shipping_cost"`
	SuggestedPrice float64       `json:"suggested_price"`
	ImageURLs      []string      `json:"image_urls"`
	Status         ProductStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type ImportProductRequest struct {
	ExternalSKU  string   `json:"external_sku"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	AmazonPrice  float64  `json:"amazon_price"`
	SupplierCost float64  `json:"supplier_cost"`
	ShippingCost float64  `json:"shipping_cost"`
	ImageURLs    []string `json:"image_urls"`
}

// PricingCheck é o resultado da regra de preço aplicada na importação
type PricingCheck struct {
	Passed       bool    `json:"passed"`
	LandedCost   float64 `json:"landed_cost"`
	Spread       float64 `json:"spread"`
	CostRatio    float64 `json:"cost_ratio"`
	FailedReason string  `json:"failed_reason,omitempty"`
}
