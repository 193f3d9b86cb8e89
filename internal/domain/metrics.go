package domain

// AdMetricsRecord é o registro numérico canônico de um insight normalizado.
// Os campos de identificação presentes variam por nível (campaign/adset/ad);
// os campos de métrica têm o mesmo esquema em todos os níveis.
//
// CTR é percentual (1.23 significa 1,23%). ROAS = purchase_value / spend,
// zero quando não houve investimento. Valores decimais com 4 casas.
type AdMetricsRecord struct {
	CampaignID   string `json:"campaign_id,omitempty"`
	CampaignName string `json:"campaign_name,omitempty"`
	AdsetID      string `json:"adset_id,omitempty"`
	AdsetName    string `json:"adset_name,omitempty"`
	AdID         string `json:"ad_id,omitempty"`
	AdName       string `json:"ad_name,omitempty"`

	Impressions   int     `json:"impressions"`
	Clicks        int     `json:"clicks"`
	Spend         float64 `json:"spend"`
	CPM           float64 `json:"cpm"`
	CPC           float64 `json:"cpc"`
	CTR           float64 `json:"ctr"`
	Purchases     int     `json:"purchases"`
	PurchaseValue float64 `json:"purchase_value"`
	ROAS          float64 `json:"roas"`
}

// Validate verifica as restrições do esquema canônico
func (r *AdMetricsRecord) Validate() error {
	if r.Impressions < 0 {
		return &ValidationError{Field: "impressions", Reason: "valor negativo"}
	}
	if r.Clicks < 0 {
		return &ValidationError{Field: "clicks", Reason: "valor negativo"}
	}
	if r.Spend < 0 {
		return &ValidationError{Field: "spend", Reason: "valor negativo"}
	}
	if r.CPM < 0 {
		return &ValidationError{Field: "cpm", Reason: "valor negativo"}
	}
	if r.CPC < 0 {
		return &ValidationError{Field: "cpc", Reason: "valor negativo"}
	}
	if r.CTR < 0 {
		return &ValidationError{Field: "ctr", Reason: "valor negativo"}
	}
	if r.Purchases < 0 {
		return &ValidationError{Field: "purchases", Reason: "valor negativo"}
	}
	if r.PurchaseValue < 0 {
		return &ValidationError{Field: "purchase_value", Reason: "valor negativo"}
	}
	if r.ROAS < 0 {
		return &ValidationError{Field: "roas", Reason: "valor negativo"}
	}
	return nil
}
