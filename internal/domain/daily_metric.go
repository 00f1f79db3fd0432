package domain

import "time"

// DailyMetric é o snapshot diário das métricas do perfil, uma linha por data.
// Os contadores *_daily descrevem a atividade daquele dia; followers_count é
// o total de seguidores no momento da coleta, não um delta.
type DailyMetric struct {
	ID                  int       `json:"id"`
	Date                time.Time `json:"date"`
	FollowersCount      int       `json:"followers_count"`
	MediaCount          int       `json:"media_count"`
	ReachDaily          int       `json:"reach_daily"`
	ImpressionsDaily    int       `json:"impressions_daily"`
	Reach28d            int       `json:"reach_28d"`
	Impressions28d      int       `json:"impressions_28d"`
	ProfileViewsDaily   int       `json:"profile_views_daily"`
	EmailContacts       int       `json:"email_contacts"`
	WebsiteClicks       int       `json:"website_clicks"`
	PhoneCallClicks     int       `json:"phone_call_clicks"`
	TextMessageClicks   int       `json:"text_message_clicks"`
	GetDirectionsClicks int       `json:"get_directions_clicks"`
	AudienceCity        Breakdown `json:"audience_city"`
	AudienceGenderAge   Breakdown `json:"audience_gender_age"`
	AudienceCountry     Breakdown `json:"audience_country"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Interactions soma as visualizações de perfil e todos os cliques de contato
// registrados no dia
func (m *DailyMetric) Interactions() int {
	return m.ProfileViewsDaily +
		m.EmailContacts +
		m.WebsiteClicks +
		m.PhoneCallClicks +
		m.TextMessageClicks +
		m.GetDirectionsClicks
}
