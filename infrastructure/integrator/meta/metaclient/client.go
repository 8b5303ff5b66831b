package metaclient

import (
	"net/http"
	"time"

	metadomain "github.com/revoa/revoa-api/infrastructure/integrator/meta/domain"
	"github.com/revoa/revoa-api/internal/config"
)

type Client interface {
	GetAdAccountsByBusinessID(businessID string) ([]metadomain.AdAccount, error)
	GetEntitiesByAccountID(accountID, level string) ([]metadomain.Entity, error)
	GetEntityInsights(entityID, level string, date time.Time) ([]metadomain.EntityInsight, error)
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
	}
	return client
}

// RefreshToken obtém um novo token de longa duração
func (c *MetaClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *MetaClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}
