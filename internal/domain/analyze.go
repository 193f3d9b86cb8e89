package domain

// ChatMessage é um turno do histórico conversacional enviado pelo cliente
type ChatMessage struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

// AnalyzeRequest é a entrada da análise interativa (POST /v1/meta/analyze)
type AnalyzeRequest struct {
	UserMessage      string        `json:"user_message,omitempty"`
	DatePreset       string        `json:"date_preset,omitempty"` // ex.: last_7d, maximum
	Since            string        `json:"since,omitempty"`       // YYYY-MM-DD
	Until            string        `json:"until,omitempty"`       // YYYY-MM-DD
	IncludeCampaigns bool          `json:"include_campaigns"`
	IncludeLevels    []string      `json:"include_levels,omitempty"` // ["campaign","adset","ad"]
	Messages         []ChatMessage `json:"messages,omitempty"`       // histórico opcional do chat
}

// AnalyzeResponse é o resultado da análise gerada
type AnalyzeResponse struct {
	AnalysisID  string            `json:"analysis_id"`
	Analysis    string            `json:"analysis"`
	PeriodLabel string            `json:"period_label"`
	Campaigns   []AdMetricsRecord `json:"campaigns,omitempty"`
	AdSets      []AdMetricsRecord `json:"adsets,omitempty"`
	Ads         []AdMetricsRecord `json:"ads,omitempty"`
}

// MetricsResponse é o retorno dos endpoints de métricas normalizadas
type MetricsResponse struct {
	Campaigns  []AdMetricsRecord `json:"campaigns,omitempty"`
	AdSets     []AdMetricsRecord `json:"adsets,omitempty"`
	Ads        []AdMetricsRecord `json:"ads,omitempty"`
	DatePreset string            `json:"date_preset"`
}
