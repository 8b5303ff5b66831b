package shopify

import (
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/revoa/revoa-api/internal/config"
	"github.com/revoa/revoa-api/internal/domain"
	"github.com/revoa/revoa-api/pkg/utils"
)

type ShopifyIntegrator struct {
	cfg    *config.Config
	Client Client
}

func New(cfg *config.Config, client Client) *ShopifyIntegrator {
	return &ShopifyIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetRevenueByDateRange soma o faturamento dos pedidos pagos da loja no intervalo.
// Pedidos cancelados e reembolsados ficam de fora do total.
func (s *ShopifyIntegrator) GetRevenueByDateRange(storeDomain string, startDate, endDate time.Time) (*domain.StoreRevenue, error) {
	orders, err := s.Client.GetOrdersByDateRange(storeDomain, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"store_domain": storeDomain,
			"error":        err.Error(),
		}).Error("shopify: falha ao buscar pedidos da loja")
		return nil, err
	}

	revenue := &domain.StoreRevenue{
		StoreDomain: storeDomain,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	for _, order := range orders {
		if order.CancelledAt != "" {
			continue
		}

		switch order.FinancialStatus {
		case "paid", "partially_paid", "partially_refunded":
		default:
			continue
		}

		total, err := strconv.ParseFloat(order.TotalPrice, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"order_id":    order.ID,
				"total_price": order.TotalPrice,
			}).Warn("shopify: erro ao converter total do pedido")
			continue
		}

		revenue.TotalRevenue += total
		revenue.OrderCount++

		if revenue.Currency == "" {
			revenue.Currency = order.Currency
		}
	}

	revenue.TotalRevenue = utils.RoundWithTwoDecimalPlace(revenue.TotalRevenue)

	if revenue.OrderCount > 0 {
		revenue.AvgOrderValue = utils.RoundWithTwoDecimalPlace(revenue.TotalRevenue / float64(revenue.OrderCount))
	}

	return revenue, nil
}
