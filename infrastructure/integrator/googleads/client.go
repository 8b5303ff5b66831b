package googleads

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/revoa/revoa-api/internal/config"
	"github.com/revoa/revoa-api/pkg/utils"
)

const googleOAuthTokenURL = "https://oauth2.googleapis.com/token"

type Client interface {
	ListAccessibleCustomers() ([]string, error)
	Search(customerID, query string) ([]searchRow, error)
}

type GoogleAdsClient struct {
	Cfg *config.Config

	tokenMutex     sync.Mutex
	accessToken    string
	tokenExpiresAt time.Time
}

func NewClient(cfg *config.Config) Client {
	return &GoogleAdsClient{
		Cfg: cfg,
	}
}

type oauthTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// ensureAccessToken troca o refresh token por um access token quando necessário
func (c *GoogleAdsClient) ensureAccessToken() (string, error) {
	c.tokenMutex.Lock()
	defer c.tokenMutex.Unlock()

	if c.accessToken != "" && time.Until(c.tokenExpiresAt) > 5*time.Minute {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Add("grant_type", "refresh_token")
	form.Add("client_id", c.Cfg.GoogleAds.ClientID)
	form.Add("client_secret", c.Cfg.GoogleAds.ClientSecret)
	form.Add("refresh_token", c.Cfg.GoogleAds.RefreshToken)

	resp, err := http.Post(googleOAuthTokenURL, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "erro ao requisitar access token do Google")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "erro ao ler resposta do token do Google")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("troca de refresh token retornou status %d: %s", resp.StatusCode, string(body))
	}

	var token oauthTokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", errors.Wrap(err, "erro ao decodificar resposta do token do Google")
	}

	c.accessToken = token.AccessToken
	c.tokenExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)

	return c.accessToken, nil
}

type listCustomersResponse struct {
	ResourceNames []string `json:"resourceNames"`
}

func (c *GoogleAdsClient) ListAccessibleCustomers() ([]string, error) {
	token, err := c.ensureAccessToken()
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/customers:listAccessibleCustomers", c.Cfg.GoogleAds.URL)

	body, err := utils.MakeRequest(endpoint, c.headers(token))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar customers do Google Ads")
	}

	var response listCustomersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta do Google Ads")
	}

	customerIDs := make([]string, 0, len(response.ResourceNames))
	for _, resourceName := range response.ResourceNames {
		// resourceName tem o formato "customers/1234567890"
		customerIDs = append(customerIDs, strings.TrimPrefix(resourceName, "customers/"))
	}

	return customerIDs, nil
}

type searchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
	PageSize  int    `json:"pageSize,omitempty"`
}

type searchResponse struct {
	Results       []searchRow `json:"results"`
	NextPageToken string      `json:"nextPageToken"`
}

// Search executa uma consulta GAQL paginada via customers/{id}/googleAds:search
func (c *GoogleAdsClient) Search(customerID, query string) ([]searchRow, error) {
	token, err := c.ensureAccessToken()
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/customers/%s/googleAds:search", c.Cfg.GoogleAds.URL, customerID)

	rows := make([]searchRow, 0)
	pageToken := ""

	for {
		payload, err := json.Marshal(searchRequest{Query: query, PageToken: pageToken, PageSize: 1000})
		if err != nil {
			return nil, err
		}

		req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		c.setHeaders(req, token)
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao consultar o Google Ads")
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusOK {
			logrus.WithFields(logrus.Fields{
				"customer_id": customerID,
				"status":      resp.StatusCode,
			}).Error("googleads: consulta retornou erro")
			return nil, errors.Errorf("API do Google Ads retornou status %d: %s", resp.StatusCode, string(body))
		}

		var response searchResponse
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar resposta do Google Ads")
		}

		rows = append(rows, response.Results...)

		if response.NextPageToken == "" {
			break
		}
		pageToken = response.NextPageToken
	}

	return rows, nil
}

func (c *GoogleAdsClient) headers(token string) map[string]string {
	headers := map[string]string{
		"Authorization":   "Bearer " + token,
		"developer-token": c.Cfg.GoogleAds.DeveloperToken,
	}
	if c.Cfg.GoogleAds.LoginCustomer != "" {
		headers["login-customer-id"] = c.Cfg.GoogleAds.LoginCustomer
	}
	return headers
}

func (c *GoogleAdsClient) setHeaders(req *http.Request, token string) {
	for key, value := range c.headers(token) {
		req.Header.Set(key, value)
	}
}
