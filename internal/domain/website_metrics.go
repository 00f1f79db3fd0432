package domain

// WebsiteMetrics resume o tráfego do site vindo do GA4 nos últimos 30 dias.
// Quando o GA4 não está configurado os totais são zerados e Mock é true,
// uma condição diferente de falha na consulta.
type WebsiteMetrics struct {
	ActiveUsers     int                `json:"activeUsers"`
	Sessions        int                `json:"sessions"`
	ScreenPageViews int                `json:"screenPageViews"`
	EngagementRate  float64            `json:"engagementRate"`
	History         []WebsiteDailyUser `json:"history"`
	Mock            bool               `json:"mock,omitempty"`
}

// WebsiteDailyUser é um ponto da série diária de usuários ativos
type WebsiteDailyUser struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Users int    `json:"users"`
}
