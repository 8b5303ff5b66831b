package googleads

// Tipos de resposta do googleAds:search. A API REST devolve os campos
// selecionados na GAQL em camelCase, com custo em micros.

type searchRow struct {
	Customer   *customerRow `json:"customer,omitempty"`
	Campaign   *resourceRow `json:"campaign,omitempty"`
	AdGroup    *resourceRow `json:"adGroup,omitempty"`
	AdGroupAd  *adGroupAd   `json:"adGroupAd,omitempty"`
	Metrics    *metricsRow  `json:"metrics,omitempty"`
	Segments   *segmentsRow `json:"segments,omitempty"`
}

type customerRow struct {
	ID              string `json:"id"`
	DescriptiveName string `json:"descriptiveName"`
	CurrencyCode    string `json:"currencyCode"`
	Status          string `json:"status"`
}

type resourceRow struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type adGroupAd struct {
	Status string `json:"status"`
	Ad     struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"ad"`
}

type metricsRow struct {
	CostMicros       string  `json:"costMicros"`
	Impressions      string  `json:"impressions"`
	Clicks           string  `json:"clicks"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversionsValue"`
}

type segmentsRow struct {
	Date string `json:"date"`
}
