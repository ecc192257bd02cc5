package domain

// DailyInsight é uma linha de insight diário da Graph API do Meta, no nível de
// campanha com time_increment=1. Métricas numéricas chegam como string.
type DailyInsight struct {
	AccountID    string        `json:"account_id"`
	CampaignID   string        `json:"campaign_id"`
	CampaignName string        `json:"campaign_name"`
	AdSetID      string        `json:"adset_id"`
	Spend        string        `json:"spend"`
	Impressions  string        `json:"impressions"`
	Clicks       string        `json:"clicks"`
	DateStart    string        `json:"date_start"`
	DateStop     string        `json:"date_stop"`
	Actions      []Action      `json:"actions"`
	ActionValues []ActionValue `json:"action_values"`
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type ActionValue struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// InsightsResponse é o envelope paginado da Graph API
type InsightsResponse struct {
	Data   []DailyInsight `json:"data"`
	Paging *Paging        `json:"paging"`
}

type Paging struct {
	Next string `json:"next"`
}

// APIError é o envelope de erro da Graph API
type APIError struct {
	Error struct {
		Message   string `json:"message"`
		Type      string `json:"type"`
		Code      int    `json:"code"`
		FBTraceID string `json:"fbtrace_id"`
	} `json:"error"`
}
