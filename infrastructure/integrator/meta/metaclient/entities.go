package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	metadomain "github.com/revoa/revoa-api/infrastructure/integrator/meta/domain"
)

type responseAdAccounts struct {
	Data   []metadomain.AdAccount `json:"data"`
	Paging metadomain.Paging      `json:"paging"`
}

type responseEntities struct {
	Data   []metadomain.Entity `json:"data"`
	Paging metadomain.Paging   `json:"paging"`
}

// Caminhos da Graph API por nível da hierarquia de anúncios
var levelPath = map[string]string{
	"campaign": "campaigns",
	"ad_set":   "adsets",
	"ad":       "ads",
}

func (c *MetaClient) GetAdAccountsByBusinessID(businessID string) ([]metadomain.AdAccount, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	params := url.Values{}
	params.Add("fields", "id,name,currency,account_status")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	endpoint := fmt.Sprintf("%s/%s/owned_ad_accounts?%s", c.Cfg.Meta.URL, businessID, params.Encode())

	accounts := make([]metadomain.AdAccount, 0)
	for endpoint != "" {
		resp, err := http.Get(endpoint)
		if err != nil {
			logrus.WithError(err).Error("Erro ao fazer a requisição")
			return nil, err
		}

		body, err := c.HandleResponse(resp)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}

		var response responseAdAccounts
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		accounts = append(accounts, response.Data...)
		endpoint = response.Paging.Next
	}

	return accounts, nil
}

// GetEntitiesByAccountID lista campanhas, conjuntos de anúncios ou anúncios da conta,
// seguindo os cursores de paginação da Graph API
func (c *MetaClient) GetEntitiesByAccountID(accountID, level string) ([]metadomain.Entity, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	path, ok := levelPath[level]
	if !ok {
		return nil, fmt.Errorf("nível de entidade desconhecido: %s", level)
	}

	params := url.Values{}
	params.Add("fields", "id,name,status")
	params.Add("limit", "100")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	endpoint := fmt.Sprintf("%s/act_%s/%s?%s", c.Cfg.Meta.URL, accountID, path, params.Encode())

	entities := make([]metadomain.Entity, 0)
	for endpoint != "" {
		resp, err := http.Get(endpoint)
		if err != nil {
			logrus.WithError(err).Error("Erro ao fazer a requisição")
			return nil, err
		}

		body, err := c.HandleResponse(resp)
		resp.Body.Close()
		if err != nil {
			if err.Error() == "token expirado e renovado, por favor tente novamente" {
				return c.GetEntitiesByAccountID(accountID, level)
			}
			return nil, err
		}

		var response responseEntities
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		entities = append(entities, response.Data...)
		endpoint = response.Paging.Next
	}

	return entities, nil
}
