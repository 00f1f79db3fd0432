package domain

import "time"

// TrackingConfig é a configuração única de rastreamento e SEO do site:
// IDs de pixel, verificações de domínio e metadados padrão. Uma linha só,
// lida pelo site público e editada no dashboard.
type TrackingConfig struct {
	ID                              int       `json:"id"`
	GA4MeasurementID                string    `json:"ga4_measurement_id"`
	GoogleSearchConsoleVerification string    `json:"google_search_console_verification"`
	GoogleTagManagerID              string    `json:"google_tag_manager_id"`
	MetaPixelID                     string    `json:"meta_pixel_id"`
	MetaDomainVerification          string    `json:"meta_domain_verification"`
	TikTokPixelID                   string    `json:"tiktok_pixel_id"`
	CustomHeadScripts               string    `json:"custom_head_scripts"`
	SiteTitle                       string    `json:"site_title"`
	SiteDescription                 string    `json:"site_description"`
	SiteKeywords                    string    `json:"site_keywords"`
	OGDefaultImage                  string    `json:"og_default_image"`
	UpdatedAt                       time.Time `json:"updated_at"`
}
