package shopify

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/revoa/revoa-api/internal/config"
)

type Client interface {
	GetOrdersByDateRange(storeDomain string, startDate, endDate time.Time) ([]Order, error)
}

type ShopifyClient struct {
	Cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ShopifyClient{
		Cfg: cfg,
	}
}

type Order struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	TotalPrice      string `json:"total_price"`
	Currency        string `json:"currency"`
	FinancialStatus string `json:"financial_status"`
	CreatedAt       string `json:"created_at"`
	CancelledAt     string `json:"cancelled_at"`
}

type ordersResponse struct {
	Orders []Order `json:"orders"`
}

// A Admin API pagina via header Link: <...page_info=xyz>; rel="next"
var nextLinkPattern = regexp.MustCompile(`<([^>]+)>;\s*rel="next"`)

// GetOrdersByDateRange busca os pedidos da loja no intervalo, seguindo a paginação por page_info
func (c *ShopifyClient) GetOrdersByDateRange(storeDomain string, startDate, endDate time.Time) ([]Order, error) {
	params := url.Values{}
	params.Add("status", "any")
	params.Add("limit", "250")
	params.Add("created_at_min", startDate.Format(time.RFC3339))
	params.Add("created_at_max", endDate.Format(time.RFC3339))
	params.Add("fields", "id,name,total_price,currency,financial_status,created_at,cancelled_at")

	endpoint := fmt.Sprintf("https://%s/admin/api/%s/orders.json?%s", storeDomain, c.Cfg.Shopify.APIVersion, params.Encode())

	orders := make([]Order, 0)
	for endpoint != "" {
		req, err := http.NewRequest(http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("X-Shopify-Access-Token", c.Cfg.Shopify.AccessToken)

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao fazer a requisição para a Shopify")
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusOK {
			logrus.WithFields(logrus.Fields{
				"store_domain": storeDomain,
				"status":       resp.StatusCode,
			}).Error("shopify: requisição de pedidos retornou erro")
			return nil, errors.Errorf("API da Shopify retornou status %d: %s", resp.StatusCode, string(body))
		}

		var response ordersResponse
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar pedidos da Shopify")
		}

		orders = append(orders, response.Orders...)
		endpoint = nextPageURL(resp.Header.Get("Link"))
	}

	return orders, nil
}

func nextPageURL(linkHeader string) string {
	if linkHeader == "" {
		return ""
	}

	matches := nextLinkPattern.FindStringSubmatch(linkHeader)
	if len(matches) < 2 {
		return ""
	}

	return matches[1]
}
