package googleads

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/revoa/revoa-api/internal/config"
	"github.com/revoa/revoa-api/internal/domain"
	"github.com/revoa/revoa-api/pkg/utils"
)

type GoogleAdsIntegrator struct {
	cfg    *config.Config
	Client Client
}

func New(cfg *config.Config, client Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GoogleAdsIntegrator) Platform() domain.Platform {
	return domain.PlatformGoogle
}

// ListAccounts lista os customers acessíveis pelo refresh token configurado
func (s *GoogleAdsIntegrator) ListAccounts() ([]*domain.AdAccount, error) {
	customerIDs, err := s.Client.ListAccessibleCustomers()
	if err != nil {
		logrus.WithError(err).Error("googleads: falha ao listar customers")
		return nil, err
	}

	accounts := make([]*domain.AdAccount, 0, len(customerIDs))
	for _, customerID := range customerIDs {
		rows, err := s.Client.Search(customerID,
			"SELECT customer.id, customer.descriptive_name, customer.currency_code, customer.status FROM customer")
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Warn("googleads: falha ao buscar detalhes do customer")
			continue
		}

		for _, row := range rows {
			if row.Customer == nil {
				continue
			}

			status := domain.AdAccountStatusInactive
			if row.Customer.Status == "ENABLED" {
				status = domain.AdAccountStatusActive
			}

			accounts = append(accounts, &domain.AdAccount{
				ExternalID: row.Customer.ID,
				Name:       row.Customer.DescriptiveName,
				Platform:   domain.PlatformGoogle,
				Currency:   row.Customer.CurrencyCode,
				Status:     status,
			})
		}
	}

	return accounts, nil
}

// FetchDailyEntityMetrics busca as métricas do dia por campanha, grupo de anúncios e anúncio
func (s *GoogleAdsIntegrator) FetchDailyEntityMetrics(externalAccountID string, date time.Time) ([]*domain.AdInsightEntry, error) {
	day := date.Format(time.DateOnly)
	entries := make([]*domain.AdInsightEntry, 0)

	queries := []struct {
		entityType domain.EntityType
		query      string
	}{
		{
			entityType: domain.EntityTypeCampaign,
			query: fmt.Sprintf(
				"SELECT campaign.id, campaign.name, campaign.status, metrics.cost_micros, metrics.impressions, metrics.clicks, metrics.conversions, metrics.conversions_value, segments.date FROM campaign WHERE segments.date = '%s'",
				day,
			),
		},
		{
			entityType: domain.EntityTypeAdSet,
			query: fmt.Sprintf(
				"SELECT ad_group.id, ad_group.name, ad_group.status, metrics.cost_micros, metrics.impressions, metrics.clicks, metrics.conversions, metrics.conversions_value, segments.date FROM ad_group WHERE segments.date = '%s'",
				day,
			),
		},
		{
			entityType: domain.EntityTypeAd,
			query: fmt.Sprintf(
				"SELECT ad_group_ad.ad.id, ad_group_ad.ad.name, ad_group_ad.status, metrics.cost_micros, metrics.impressions, metrics.clicks, metrics.conversions, metrics.conversions_value, segments.date FROM ad_group_ad WHERE segments.date = '%s'",
				day,
			),
		},
	}

	for _, q := range queries {
		rows, err := s.Client.Search(externalAccountID, q.query)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"customer_id": externalAccountID,
				"level":       q.entityType,
				"error":       err.Error(),
			}).Error("googleads: falha ao buscar métricas")
			return nil, err
		}

		for _, row := range rows {
			entityID, entityName, entityStatus := extractEntity(q.entityType, row)
			if entityID == "" || row.Metrics == nil {
				continue
			}

			metrics := s.factoryEntityMetrics(entityID, entityName, entityStatus, externalAccountID, row.Metrics)

			entries = append(entries, &domain.AdInsightEntry{
				AccountID:  externalAccountID,
				EntityID:   entityID,
				EntityType: q.entityType,
				Platform:   domain.PlatformGoogle,
				Date:       date,
				Metrics:    metrics,
			})
		}
	}

	return entries, nil
}

func extractEntity(entityType domain.EntityType, row searchRow) (id, name, status string) {
	switch entityType {
	case domain.EntityTypeCampaign:
		if row.Campaign != nil {
			return row.Campaign.ID, row.Campaign.Name, row.Campaign.Status
		}
	case domain.EntityTypeAdSet:
		if row.AdGroup != nil {
			return row.AdGroup.ID, row.AdGroup.Name, row.AdGroup.Status
		}
	case domain.EntityTypeAd:
		if row.AdGroupAd != nil {
			return row.AdGroupAd.Ad.ID, row.AdGroupAd.Ad.Name, row.AdGroupAd.Status
		}
	}
	return "", "", ""
}

// factoryEntityMetrics converte a linha da API (custo em micros) para métricas numéricas
func (s *GoogleAdsIntegrator) factoryEntityMetrics(entityID, entityName, entityStatus, accountID string, raw *metricsRow) *domain.EntityMetrics {
	costMicros, err := strconv.ParseInt(raw.CostMicros, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id":  entityID,
			"cost_value": raw.CostMicros,
		}).Warn("googleads: erro ao converter cost_micros")
		costMicros = 0
	}

	spend := float64(costMicros) / 1_000_000
	revenue := raw.ConversionsValue
	conversions := int(raw.Conversions)

	status := domain.EntityStatusPaused
	if entityStatus == "ENABLED" {
		status = domain.EntityStatusActive
	}

	metrics := &domain.EntityMetrics{
		EntityID:    entityID,
		EntityName:  entityName,
		AccountID:   accountID,
		Platform:    domain.PlatformGoogle,
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

	if impressions, err := strconv.Atoi(raw.Impressions); err == nil {
		metrics.Impressions = &impressions

		if clicks, err := strconv.Atoi(raw.Clicks); err == nil {
			metrics.Clicks = &clicks

			if impressions > 0 {
				ctr := utils.RoundWithTwoDecimalPlace(float64(clicks) / float64(impressions) * 100)
				metrics.Ctr = &ctr
			}
		}
	}

	return metrics
}
