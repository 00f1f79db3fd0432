package domain

import "time"

// Status de publicação de um post
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

type BlogPost struct {
	ID              int        `json:"id"`
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content"` // Markdown
	CoverImageURL   *string    `json:"cover_image_url"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	Keywords        []string   `json:"keywords"`
	Category        string     `json:"category"`
	Status          string     `json:"status"`
	PublishedAt     *time.Time `json:"published_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type UpdateBlogPostRequest struct {
	ID              int       `json:"id"`
	Title           *string   `json:"title"`
	Excerpt         *string   `json:"excerpt"`
	Content         *string   `json:"content"`
	CoverImageURL   *string   `json:"cover_image_url"`
	MetaTitle       *string   `json:"meta_title"`
	MetaDescription *string   `json:"meta_description"`
	Keywords        *[]string `json:"keywords"`
	Category        *string   `json:"category"`
	Status          *string   `json:"status"`
}

// GeneratedPost é o rascunho devolvido pela geração assistida por IA
type GeneratedPost struct {
	Title           string   `json:"title"`
	Excerpt         string   `json:"excerpt"`
	Content         string   `json:"content"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	Keywords        []string `json:"keywords"`
	Category        string   `json:"category"`
}
