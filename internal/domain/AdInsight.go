package domain

import (
	"time"
)

// AdInsightEntry representa as métricas diárias de uma entidade de anúncio armazenadas no banco
type AdInsightEntry struct {
	ID         int64          `json:"id"`
	AccountID  string         `json:"account_id"`
	EntityID   string         `json:"entity_id"`
	EntityType EntityType     `json:"entity_type"`
	Platform   Platform       `json:"platform"`
	Date       time.Time      `json:"date"`
	Metrics    *EntityMetrics `json:"metrics"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
