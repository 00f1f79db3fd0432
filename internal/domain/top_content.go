package domain

import "time"

// TopContentItem é uma publicação recente do perfil, atualizada pela
// sincronização diária e ranqueada por engajamento no site público
type TopContentItem struct {
	ID            string    `json:"id"`
	MediaType     string    `json:"media_type"` // IMAGE, VIDEO ou CAROUSEL_ALBUM
	MediaURL      string    `json:"media_url"`
	ThumbnailURL  string    `json:"thumbnail_url"`
	Caption       string    `json:"caption"`
	Permalink     string    `json:"permalink"`
	LikeCount     int       `json:"like_count"`
	CommentsCount int       `json:"comments_count"`
	Timestamp     time.Time `json:"timestamp"`
	LastUpdated   time.Time `json:"last_updated"`
}
