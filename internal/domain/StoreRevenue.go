package domain

import "time"

// StoreRevenue consolida o faturamento da loja em um intervalo de datas
type StoreRevenue struct {
	StoreDomain   string    `json:"store_domain"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	TotalRevenue  float64   `json:"total_revenue"`
	OrderCount    int       `json:"order_count"`
	AvgOrderValue float64   `json:"avg_order_value"`
	Currency      string    `json:"currency"`
}

// OrderWebhookPayload é o corpo relevante dos webhooks de pedido da Shopify
type OrderWebhookPayload struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	TotalPrice      string `json:"total_price"`
	Currency        string `json:"currency"`
	FinancialStatus string `json:"financial_status"`
	CreatedAt       string `json:"created_at"`
}
