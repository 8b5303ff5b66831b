package meta

import (
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/revoa/revoa-api/infrastructure/integrator/meta/domain"
	"github.com/revoa/revoa-api/infrastructure/integrator/meta/metaclient"
	"github.com/revoa/revoa-api/internal/config"
	"github.com/revoa/revoa-api/internal/domain"
	"github.com/revoa/revoa-api/pkg/utils"
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) Platform() domain.Platform {
	return domain.PlatformMeta
}

// ListAccounts busca as contas de anúncio do business configurado
func (s *MetaIntegrator) ListAccounts() ([]*domain.AdAccount, error) {
	rawAccounts, err := s.Client.GetAdAccountsByBusinessID(s.cfg.Meta.BusinessID)
	if err != nil {
		logrus.WithError(err).Error("meta: falha ao listar contas de anúncio")
		return nil, err
	}

	accounts := make([]*domain.AdAccount, 0, len(rawAccounts))
	for _, raw := range rawAccounts {
		status := domain.AdAccountStatusInactive
		if raw.Status == 1 {
			status = domain.AdAccountStatusActive
		}

		accounts = append(accounts, &domain.AdAccount{
			ExternalID: raw.ID,
			Name:       raw.Name,
			Platform:   domain.PlatformMeta,
			Currency:   raw.Currency,
			Status:     status,
		})
	}

	return accounts, nil
}

// FetchDailyEntityMetrics busca as métricas do dia para todas as entidades da conta,
// percorrendo os três níveis da hierarquia de anúncios
func (s *MetaIntegrator) FetchDailyEntityMetrics(externalAccountID string, date time.Time) ([]*domain.AdInsightEntry, error) {
	entries := make([]*domain.AdInsightEntry, 0)

	for _, level := range []domain.EntityType{domain.EntityTypeCampaign, domain.EntityTypeAdSet, domain.EntityTypeAd} {
		entities, err := s.Client.GetEntitiesByAccountID(externalAccountID, string(level))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": externalAccountID,
				"level":      level,
				"error":      err.Error(),
			}).Error("meta: falha ao listar entidades da conta")
			return nil, err
		}

		for _, entity := range entities {
			insights, err := s.Client.GetEntityInsights(entity.ID, string(level), date)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"entity_id": entity.ID,
					"level":     level,
					"error":     err.Error(),
				}).Error("meta: falha ao buscar insights da entidade")
				continue
			}

			for _, insight := range insights {
				metrics := s.factoryEntityMetrics(entity, &insight, externalAccountID)
				if metrics == nil {
					continue
				}

				entries = append(entries, &domain.AdInsightEntry{
					AccountID:  externalAccountID,
					EntityID:   entity.ID,
					EntityType: level,
					Platform:   domain.PlatformMeta,
					Date:       date,
					Metrics:    metrics,
				})
			}
		}
	}

	return entries, nil
}

// factoryEntityMetrics converte a linha da Graph API (valores em string) para métricas numéricas
func (s *MetaIntegrator) factoryEntityMetrics(entity metadomain.Entity, insight *metadomain.EntityInsight, accountID string) *domain.EntityMetrics {
	spend, err := strconv.ParseFloat(insight.Spend, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id":   entity.ID,
			"spend_value": insight.Spend,
			"error":       err.Error(),
		}).Warn("meta: erro ao converter spend para float")
		return nil
	}

	revenue := insight.GetPurchaseValue()
	conversions := insight.GetPurchases()

	status := domain.EntityStatusPaused
	if entity.Status == "ACTIVE" {
		status = domain.EntityStatusActive
	}

	metrics := &domain.EntityMetrics{
		EntityID:    entity.ID,
		EntityName:  entity.Name,
		AccountID:   accountID,
		Platform:    domain.PlatformMeta,
		Status:      status,
		Spend:       utils.RoundWithTwoDecimalPlace(spend),
		Revenue:     utils.RoundWithTwoDecimalPlace(revenue),
		Roas:        utils.RoundWithTwoDecimalPlace(utils.SafeDivide(revenue, spend)),
		Conversions: conversions,
	}

	profit := utils.RoundWithTwoDecimalPlace(revenue - spend)
	metrics.Profit = &profit

	if conversions > 0 {
		cpa := utils.RoundWithTwoDecimalPlace(spend / float64(conversions))
		metrics.Cpa = &cpa
	}

	if impressions, err := strconv.Atoi(insight.Impressions); err == nil {
		metrics.Impressions = &impressions

		if clicks, err := strconv.Atoi(insight.Clicks); err == nil {
			metrics.Clicks = &clicks

			if impressions > 0 {
				ctr := utils.RoundWithTwoDecimalPlace(float64(clicks) / float64(impressions) * 100)
				metrics.Ctr = &ctr
			}
		}
	}

	return metrics
}
