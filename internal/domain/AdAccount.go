package domain

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

type AdAccount struct {
	ID          string          `json:"id"`
	ExternalID  string          `json:"external_id"`
	Name        string          `json:"name"`
	Nickname    *string         `json:"nickname"`
	Platform    Platform        `json:"platform"`
	StoreDomain *string         `json:"store_domain"`
	Currency    string          `json:"currency"`
	Status      AdAccountStatus `json:"status"`
}

type AdAccountResponse struct {
	ID         string          `json:"id"`
	ExternalID string          `json:"external_id"`
	Name       string          `json:"name"`
	Nickname   *string         `json:"nickname"`
	Platform   Platform        `json:"platform"`
	Currency   string          `json:"currency"`
	Status     AdAccountStatus `json:"status"`
}

type UpdateAdAccountRequest struct {
	ID          string  `json:"id"`
	Nickname    *string `json:"nickname,omitempty"`
	StoreDomain *string `json:"store_domain,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type UpdateAdAccountResponse struct {
	ID          string  `json:"id"`
	Nickname    *string `json:"nickname,omitempty"`
	StoreDomain *string `json:"store_domain,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type SyncAccountsResponse struct {
	Quantity int    `json:"quantity"`
	Message  string `json:"message"`
	Error    bool   `json:"error"`
}
