package tiktok

import (
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/revoa/revoa-api/internal/config"
	"github.com/revoa/revoa-api/internal/domain"
	"github.com/revoa/revoa-api/pkg/utils"
)

type TikTokIntegrator struct {
	cfg    *config.Config
	Client Client
}

func New(cfg *config.Config, client Client) *TikTokIntegrator {
	return &TikTokIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *TikTokIntegrator) Platform() domain.Platform {
	return domain.PlatformTikTok
}

// ListAccounts lista os advertisers autorizados pelo token configurado
func (s *TikTokIntegrator) ListAccounts() ([]*domain.AdAccount, error) {
	advertisers, err := s.Client.GetAdvertisers()
	if err != nil {
		logrus.WithError(err).Error("tiktok: falha ao listar advertisers")
		return nil, err
	}

	accounts := make([]*domain.AdAccount, 0, len(advertisers))
	for _, adv := range advertisers {
		accounts = append(accounts, &domain.AdAccount{
			ExternalID: adv.AdvertiserID,
			Name:       adv.AdvertiserName,
			Platform:   domain.PlatformTikTok,
			Status:     domain.AdAccountStatusActive,
		})
	}

	return accounts, nil
}

var reportLevels = []struct {
	entityType domain.EntityType
	dataLevel  string
}{
	{domain.EntityTypeCampaign, "AUCTION_CAMPAIGN"},
	{domain.EntityTypeAdSet, "AUCTION_ADGROUP"},
	{domain.EntityTypeAd, "AUCTION_AD"},
}

// FetchDailyEntityMetrics busca o relatório integrado do dia nos três níveis da hierarquia
func (s *TikTokIntegrator) FetchDailyEntityMetrics(externalAccountID string, date time.Time) ([]*domain.AdInsightEntry, error) {
	entries := make([]*domain.AdInsightEntry, 0)

	for _, level := range reportLevels {
		rows, err := s.Client.GetDailyReport(externalAccountID, level.dataLevel, date)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"advertiser_id": externalAccountID,
				"level":         level.entityType,
				"error":         err.Error(),
			}).Error("tiktok: falha ao buscar relatório diário")
			return nil, err
		}

		for _, row := range rows {
			entityID := entityIDForLevel(level.entityType, row)
			if entityID == "" {
				continue
			}

			metrics := s.factoryEntityMetrics(entityID, externalAccountID, &row)
			if metrics == nil {
				continue
			}

			entries = append(entries, &domain.AdInsightEntry{
				AccountID:  externalAccountID,
				EntityID:   entityID,
				EntityType: level.entityType,
				Platform:   domain.PlatformTikTok,
				Date:       date,
				Metrics:    metrics,
			})
		}
	}

	return entries, nil
}

func entityIDForLevel(entityType domain.EntityType, row reportRow) string {
	switch entityType {
	case domain.EntityTypeCampaign:
		return row.Dimensions.CampaignID
	case domain.EntityTypeAdSet:
		return row.Dimensions.AdgroupID
	case domain.EntityTypeAd:
		return row.Dimensions.AdID
	}
	return ""
}

// factoryEntityMetrics converte a linha do relatório (valores em string) para métricas numéricas
func (s *TikTokIntegrator) factoryEntityMetrics(entityID, accountID string, row *reportRow) *domain.EntityMetrics {
	spend, err := strconv.ParseFloat(row.Metrics.Spend, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id":   entityID,
			"spend_value": row.Metrics.Spend,
			"error":       err.Error(),
		}).Warn("tiktok: erro ao converter spend para float")
		return nil
	}

	revenue, _ := strconv.ParseFloat(row.Metrics.TotalCompletePaymentValue, 64)
	conversions, _ := strconv.Atoi(row.Metrics.CompletePayment)

	metrics := &domain.EntityMetrics{
		EntityID:    entityID,
		EntityName:  row.Metrics.EntityName,
		AccountID:   accountID,
		Platform:    domain.PlatformTikTok,
		Status:      domain.EntityStatusActive,
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

	if impressions, err := strconv.Atoi(row.Metrics.Impressions); err == nil {
		metrics.Impressions = &impressions

		if clicks, err := strconv.Atoi(row.Metrics.Clicks); err == nil {
			metrics.Clicks = &clicks

			if impressions > 0 {
				ctr := utils.RoundWithTwoDecimalPlace(float64(clicks) / float64(impressions) * 100)
				metrics.Ctr = &ctr
			}
		}
	}

	return metrics
}
