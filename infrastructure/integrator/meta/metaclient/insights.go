package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/revoa/revoa-api/infrastructure/integrator/meta/domain"
)

type responseEntityInsights struct {
	Data   []metadomain.EntityInsight `json:"data"`
	Paging metadomain.Paging          `json:"paging"`
}

// GetEntityInsights busca os insights diários de uma entidade na Graph API
func (c *MetaClient) GetEntityInsights(entityID, level string, date time.Time) ([]metadomain.EntityInsight, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", date.Format(time.DateOnly), date.Format(time.DateOnly))

	fields := "account_id,campaign_id,campaign_name,spend,impressions,clicks,actions,action_values"
	switch level {
	case "ad_set":
		fields = "account_id,adset_id,adset_name,spend,impressions,clicks,actions,action_values"
	case "ad":
		fields = "account_id,ad_id,ad_name,spend,impressions,clicks,actions,action_values"
	}

	params := url.Values{}
	params.Add("fields", fields)
	params.Add("time_range", timeRange)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	endpoint := fmt.Sprintf("%s/%s/insights?%s", c.Cfg.Meta.URL, entityID, params.Encode())

	insights := make([]metadomain.EntityInsight, 0)
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
				return c.GetEntityInsights(entityID, level, date)
			}
			return nil, err
		}

		var response responseEntityInsights
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		insights = append(insights, response.Data...)
		endpoint = response.Paging.Next
	}

	return insights, nil
}
