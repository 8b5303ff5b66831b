package tiktok

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/revoa/revoa-api/internal/config"
	"github.com/revoa/revoa-api/pkg/utils"
)

type Client interface {
	GetAdvertisers() ([]advertiser, error)
	GetDailyReport(advertiserID, dataLevel string, date time.Time) ([]reportRow, error)
}

type TikTokClient struct {
	Cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &TikTokClient{
		Cfg: cfg,
	}
}

// Níveis do relatório integrado por tipo de entidade
var dataLevelDimensions = map[string]string{
	"AUCTION_CAMPAIGN": "campaign_id",
	"AUCTION_ADGROUP":  "adgroup_id",
	"AUCTION_AD":       "ad_id",
}

type apiResponse struct {
	Code      int             `json:"code"`
	Message   string          `json:"message"`
	RequestID string          `json:"request_id"`
	Data      json.RawMessage `json:"data"`
}

// doGet executa um GET autenticado e valida o envelope {code, message, data} da Business API
func (c *TikTokClient) doGet(path string, params url.Values) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s%s?%s", c.Cfg.TikTok.URL, path, params.Encode())

	body, err := utils.MakeRequest(endpoint, map[string]string{
		"Access-Token": c.Cfg.TikTok.AccessToken,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao fazer a requisição para o TikTok")
	}

	var response apiResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta do TikTok")
	}

	// A Business API sinaliza erro pelo code do envelope, não pelo status HTTP
	if response.Code != 0 {
		logrus.WithFields(logrus.Fields{
			"code":       response.Code,
			"message":    response.Message,
			"request_id": response.RequestID,
		}).Error("tiktok: API retornou erro")
		return nil, errors.Errorf("API do TikTok retornou code %d: %s", response.Code, response.Message)
	}

	return response.Data, nil
}

type advertiser struct {
	AdvertiserID   string `json:"advertiser_id"`
	AdvertiserName string `json:"advertiser_name"`
}

type advertiserListData struct {
	List []advertiser `json:"list"`
}

func (c *TikTokClient) GetAdvertisers() ([]advertiser, error) {
	params := url.Values{}
	params.Add("app_id", c.Cfg.TikTok.AppID)
	params.Add("secret", c.Cfg.TikTok.AppSecret)

	data, err := c.doGet("/oauth2/advertiser/get/", params)
	if err != nil {
		return nil, err
	}

	var payload advertiserListData
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar lista de advertisers do TikTok")
	}

	return payload.List, nil
}

type reportRow struct {
	Dimensions struct {
		CampaignID string `json:"campaign_id"`
		AdgroupID  string `json:"adgroup_id"`
		AdID       string `json:"ad_id"`
	} `json:"dimensions"`
	Metrics struct {
		EntityName                string `json:"entity_name"`
		Spend                     string `json:"spend"`
		Impressions               string `json:"impressions"`
		Clicks                    string `json:"clicks"`
		CompletePayment           string `json:"complete_payment"`
		TotalCompletePaymentValue string `json:"total_complete_payment_rate_value"`
	} `json:"metrics"`
}

type reportData struct {
	List     []reportRow `json:"list"`
	PageInfo struct {
		Page        int `json:"page"`
		PageSize    int `json:"page_size"`
		TotalNumber int `json:"total_number"`
		TotalPage   int `json:"total_page"`
	} `json:"page_info"`
}

// GetDailyReport busca o relatório integrado do dia, paginando por page/total_page
func (c *TikTokClient) GetDailyReport(advertiserID, dataLevel string, date time.Time) ([]reportRow, error) {
	dimension, ok := dataLevelDimensions[dataLevel]
	if !ok {
		return nil, errors.Errorf("nível de relatório desconhecido: %s", dataLevel)
	}

	day := date.Format(time.DateOnly)
	metricsJSON := `["entity_name","spend","impressions","clicks","complete_payment","total_complete_payment_rate_value"]`

	rows := make([]reportRow, 0)
	page := 1

	for {
		params := url.Values{}
		params.Add("advertiser_id", advertiserID)
		params.Add("report_type", "BASIC")
		params.Add("data_level", dataLevel)
		params.Add("dimensions", fmt.Sprintf(`["%s"]`, dimension))
		params.Add("metrics", metricsJSON)
		params.Add("start_date", day)
		params.Add("end_date", day)
		params.Add("page", fmt.Sprintf("%d", page))
		params.Add("page_size", "200")

		data, err := c.doGet("/report/integrated/get/", params)
		if err != nil {
			return nil, err
		}

		var payload reportData
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar relatório do TikTok")
		}

		rows = append(rows, payload.List...)

		if page >= payload.PageInfo.TotalPage {
			break
		}
		page++
	}

	return rows, nil
}
