package domain

import "time"

// MediaResponse é a resposta de /{ig-user-id}/media
type MediaResponse struct {
	Data []Media `json:"data"`
}

type Media struct {
	ID            string    `json:"id"`
	MediaType     string    `json:"media_type"`
	MediaURL      string    `json:"media_url"`
	ThumbnailURL  string    `json:"thumbnail_url"`
	Caption       string    `json:"caption"`
	Permalink     string    `json:"permalink"`
	LikeCount     int       `json:"like_count"`
	CommentsCount int       `json:"comments_count"`
	Timestamp     time.Time `json:"timestamp"`
}
