package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/revoa/revoa-api/infrastructure/integrator/shopify"
	"github.com/revoa/revoa-api/internal/domain"
	"github.com/revoa/revoa-api/pkg/apiErrors"
	"github.com/revoa/revoa-api/pkg/utils"
)

// Tópicos de webhook aceitos
const (
	WebhookTopicOrdersCreate        = "orders/create"
	WebhookTopicOrdersPaid          = "orders/paid"
	WebhookTopicCustomerDataRequest = "customers/data_request"
	WebhookTopicCustomerRedact      = "customers/redact"
	WebhookTopicShopRedact          = "shop/redact"
)

// ShopifyWebhook recebe os webhooks do Shopify. A rota é pública; a
// autenticidade é garantida pelo HMAC calculado sobre o corpo bruto.
func ShopifyWebhook(integrator *shopify.ShopifyIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		topic := strings.TrimPrefix(httprouter.ParamsFromContext(r.Context()).ByName("topic"), "/")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			logrus.WithError(err).Error("Erro ao ler corpo do webhook")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler corpo da requisição", nil)
			return
		}
		defer r.Body.Close()

		receivedHMAC := r.Header.Get("X-Shopify-Hmac-Sha256")
		if !integrator.VerifyWebhookHMAC(body, receivedHMAC) {
			logrus.WithField("topic", topic).Warn("Webhook com assinatura HMAC inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidWebhookHmac, "Assinatura HMAC inválida", nil)
			return
		}

		shopDomain := r.Header.Get("X-Shopify-Shop-Domain")

		switch topic {
		case WebhookTopicOrdersCreate, WebhookTopicOrdersPaid:
			var order domain.OrderWebhookPayload
			if err := json.Unmarshal(body, &order); err != nil {
				logrus.WithError(err).Error("Erro ao decodificar pedido do webhook")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo do webhook inválido", nil)
				return
			}

			logrus.Debugf("Corpo do webhook de pedido: %s", utils.PrettyJson(body))

			logrus.WithFields(logrus.Fields{
				"topic":            topic,
				"shop_domain":      shopDomain,
				"order_id":         order.ID,
				"order_name":       order.Name,
				"total_price":      order.TotalPrice,
				"financial_status": order.FinancialStatus,
			}).Info("Pedido recebido via webhook")

		case WebhookTopicCustomerDataRequest:
			logrus.WithFields(logrus.Fields{
				"topic":       topic,
				"shop_domain": shopDomain,
			}).Info("Solicitação de dados de cliente recebida")

		case WebhookTopicCustomerRedact, WebhookTopicShopRedact:
			// Confirmar o recebimento e enfileirar a remoção dos dados
			logrus.WithFields(logrus.Fields{
				"topic":       topic,
				"shop_domain": shopDomain,
			}).Info("Solicitação de remoção de dados recebida e enfileirada")

		default:
			logrus.WithField("topic", topic).Warn("Tópico de webhook desconhecido")
			apiErrors.WriteError(w, apiErrors.ErrUnknownWebhookTopic, "Tópico de webhook desconhecido", map[string]any{
				"topic": topic,
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status": "ok",
			"topic":  topic,
		})
	})
}
