package shopify

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// VerifyWebhookHMAC valida a assinatura X-Shopify-Hmac-Sha256 do corpo do webhook.
// A Shopify envia o HMAC-SHA256 do corpo bruto, em base64, calculado com o secret da app.
func (s *ShopifyIntegrator) VerifyWebhookHMAC(body []byte, receivedHMAC string) bool {
	if receivedHMAC == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(s.cfg.Shopify.WebhookSecret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(receivedHMAC))
}
