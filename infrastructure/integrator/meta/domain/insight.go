package metadomain

// ActionEntry é uma entrada de conversão reportada pela Graph API: um tipo de
// ação e um valor (contagem em "actions", valor monetário em "action_values").
// A Graph API retorna números como strings
type ActionEntry struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// InsightRow é a linha bruta retornada por /act_<id>/insights. Os campos de
// identificação presentes dependem do nível solicitado; os numéricos chegam
// como strings e são convertidos na normalização
type InsightRow struct {
	CampaignID   string `json:"campaign_id,omitempty"`
	CampaignName string `json:"campaign_name,omitempty"`
	AdsetID      string `json:"adset_id,omitempty"`
	AdsetName    string `json:"adset_name,omitempty"`
	AdID         string `json:"ad_id,omitempty"`
	AdName       string `json:"ad_name,omitempty"`

	Impressions string `json:"impressions,omitempty"`
	Clicks      string `json:"clicks,omitempty"`
	Spend       string `json:"spend,omitempty"`
	CPM         string `json:"cpm,omitempty"`
	CPC         string `json:"cpc,omitempty"`
	CTR         string `json:"ctr,omitempty"`

	Actions      []ActionEntry `json:"actions,omitempty"`
	ActionValues []ActionEntry `json:"action_values,omitempty"`
}

// Paging é o bloco de paginação da Graph API; Next é a URL completa da
// próxima página (já inclui o token de acesso)
type Paging struct {
	Next    string `json:"next,omitempty"`
	Cursors struct {
		Before string `json:"before,omitempty"`
		After  string `json:"after,omitempty"`
	} `json:"cursors,omitempty"`
}

// InsightsResponse é o envelope de resposta de /act_<id>/insights
type InsightsResponse struct {
	Data   []InsightRow  `json:"data"`
	Paging *Paging       `json:"paging,omitempty"`
	Error  *ErrorDetails `json:"error,omitempty"`
}
