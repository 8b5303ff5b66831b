package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

type AdAccount struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Status   int    `json:"account_status"`
}

// Entity representa uma campanha, conjunto de anúncios ou anúncio do Meta
type Entity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// EntityInsight é a linha de insights retornada pela Graph API.
// Os valores numéricos chegam como strings e são convertidos pelo integrador.
type EntityInsight struct {
	AccountID    string   `json:"account_id"`
	CampaignID   string   `json:"campaign_id,omitempty"`
	AdSetID      string   `json:"adset_id,omitempty"`
	AdID         string   `json:"ad_id,omitempty"`
	CampaignName string   `json:"campaign_name,omitempty"`
	AdSetName    string   `json:"adset_name,omitempty"`
	AdName       string   `json:"ad_name,omitempty"`
	Spend        string   `json:"spend"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
}

const purchaseActionType = "offsite_conversion.fb_pixel_purchase"

// GetPurchases retorna o número de compras atribuídas à entidade
func (i *EntityInsight) GetPurchases() int {
	for _, action := range i.Actions {
		if action.ActionType == purchaseActionType || action.ActionType == "purchase" {
			value, err := strconv.Atoi(action.Value)
			if err != nil {
				logrus.WithError(err).Error("Erro ao converter valor da ação")
				return 0
			}
			return value
		}
	}

	return 0
}

// GetPurchaseValue retorna a receita de compras atribuídas à entidade
func (i *EntityInsight) GetPurchaseValue() float64 {
	for _, action := range i.ActionValues {
		if action.ActionType == purchaseActionType || action.ActionType == "purchase" {
			value, err := strconv.ParseFloat(action.Value, 64)
			if err != nil {
				logrus.WithError(err).Error("Erro ao converter valor de receita da ação")
				return 0
			}
			return value
		}
	}

	return 0
}
