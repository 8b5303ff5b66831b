package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	metadomain "github.com/revoa/revoa-api/infrastructure/integrator/meta/domain"
	"github.com/revoa/revoa-api/internal/config"
	"github.com/sirupsen/logrus"
)

// TokenManager gerencia tokens de acesso da API do Meta
type TokenManager struct {
	cfg               *config.Config
	tokenRefreshMutex sync.Mutex
	tokenExpiresAt    time.Time
	stopRefresh       chan struct{}
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:         cfg,
		stopRefresh: make(chan struct{}),
	}
}

type tokenExchangeResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// RefreshToken troca o token atual por um novo token de longa duração
func (tm *TokenManager) RefreshToken() error {
	tm.tokenRefreshMutex.Lock()
	defer tm.tokenRefreshMutex.Unlock()

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", tm.cfg.Meta.AppID)
	params.Add("client_secret", tm.cfg.Meta.AppSecret)
	params.Add("fb_exchange_token", tm.cfg.Meta.AccessToken)

	endpoint := fmt.Sprintf("%s/oauth/access_token?%s", tm.cfg.Meta.URL, params.Encode())

	resp, err := http.Get(endpoint)
	if err != nil {
		return fmt.Errorf("erro ao requisitar troca de token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta da troca de token: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("troca de token retornou status %d: %s", resp.StatusCode, string(body))
	}

	var exchange tokenExchangeResponse
	if err := json.Unmarshal(body, &exchange); err != nil {
		return fmt.Errorf("erro ao decodificar resposta da troca de token: %w", err)
	}

	if exchange.AccessToken == "" {
		return fmt.Errorf("troca de token não retornou access_token")
	}

	tm.cfg.Meta.AccessToken = exchange.AccessToken
	tm.cfg.Meta.LongLivedToken = exchange.AccessToken

	// Tokens de longa duração do Meta valem ~60 dias; quando a API não informa
	// a expiração, assumimos esse prazo
	expiresIn := exchange.ExpiresIn
	if expiresIn == 0 {
		expiresIn = int64((60 * 24 * time.Hour).Seconds())
	}
	tm.tokenExpiresAt = time.Now().Add(time.Duration(expiresIn) * time.Second)

	logrus.WithField("expires_at", tm.tokenExpiresAt.Format(time.RFC3339)).
		Info("Token do Meta renovado com sucesso")

	return nil
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (tm *TokenManager) EnsureValidToken() error {
	tm.tokenRefreshMutex.Lock()
	expiresAt := tm.tokenExpiresAt
	tm.tokenRefreshMutex.Unlock()

	if expiresAt.IsZero() {
		// Primeira utilização: assumimos que o token configurado é válido até a
		// primeira resposta de erro da API dizer o contrário
		return nil
	}

	// Renovar com antecedência de 24 horas
	if time.Until(expiresAt) < 24*time.Hour {
		logrus.Info("Token do Meta próximo de expirar, renovando")
		return tm.RefreshToken()
	}

	return nil
}

// StartAutoRefresh inicia uma goroutine que renova o token periodicamente
func (tm *TokenManager) StartAutoRefresh() {
	refreshInterval := 23 * time.Hour
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica do token do Meta")
			if err := tm.RefreshToken(); err != nil {
				logrus.Errorf("Erro na renovação periódica do token: %v", err)

				// Se falhar, tente novamente em um intervalo mais curto
				ticker.Reset(1 * time.Hour)
			} else {
				ticker.Reset(refreshInterval)
			}
		case <-tm.stopRefresh:
			logrus.Info("Encerrando goroutine de renovação periódica do token")
			return
		}
	}
}

// StopAutoRefresh para a goroutine de renovação automática
func (tm *TokenManager) StopAutoRefresh() {
	close(tm.stopRefresh)
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (tm *TokenManager) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler corpo da resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errorResponse metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResponse); err == nil && errorResponse.IsTokenExpired() {
		logrus.Warn("Token do Meta expirado, tentando renovar")
		if refreshErr := tm.RefreshToken(); refreshErr != nil {
			return nil, fmt.Errorf("erro ao renovar token expirado: %w", refreshErr)
		}
		return nil, fmt.Errorf("token expirado e renovado, por favor tente novamente")
	}

	return nil, fmt.Errorf("API do Meta retornou status %d: %s", resp.StatusCode, string(body))
}
