package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/hfujimoto/athlete-site-api/infrastructure/database/postgres"
	"github.com/hfujimoto/athlete-site-api/internal/domain"
)

const (
	topContentTable   = "top_content tc"
	topContentColumns = `tc.id, tc.media_type, tc.media_url, tc.thumbnail_url,
		tc.caption, tc.permalink, tc.like_count, tc.comments_count,
		tc.timestamp, tc.last_updated`
)

// TopContentRepository guarda as publicações recentes sincronizadas do perfil
type TopContentRepository interface {
	// ListTopByLikes retorna as publicações mais curtidas, limitadas a limit
	ListTopByLikes(limit int) ([]*domain.TopContentItem, error)
	SaveOrUpdate(item *domain.TopContentItem) error
}

type topContentRepository struct {
	conn *postgres.Connection
}

func NewTopContentRepository(conn *postgres.Connection) TopContentRepository {
	return &topContentRepository{
		conn: conn,
	}
}

func (r *topContentRepository) ListTopByLikes(limit int) ([]*domain.TopContentItem, error) {
	query, args, err := squirrel.
		Select(topContentColumns).
		From(topContentTable).
		OrderBy("tc.like_count DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.TopContentItem, 0)
	for rows.Next() {
		item, err := r.scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear publicação: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

func (r *topContentRepository) SaveOrUpdate(item *domain.TopContentItem) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("top_content").
		Columns(
			"id", "media_type", "media_url", "thumbnail_url", "caption",
			"permalink", "like_count", "comments_count", "timestamp", "last_updated",
		).
		Values(
			item.ID,
			item.MediaType,
			item.MediaURL,
			item.ThumbnailURL,
			item.Caption,
			item.Permalink,
			item.LikeCount,
			item.CommentsCount,
			item.Timestamp,
			item.LastUpdated,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				media_type = EXCLUDED.media_type,
				media_url = EXCLUDED.media_url,
				thumbnail_url = EXCLUDED.thumbnail_url,
				caption = EXCLUDED.caption,
				permalink = EXCLUDED.permalink,
				like_count = EXCLUDED.like_count,
				comments_count = EXCLUDED.comments_count,
				timestamp = EXCLUDED.timestamp,
				last_updated = EXCLUDED.last_updated
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *topContentRepository) scanItem(rows *sql.Rows) (*domain.TopContentItem, error) {
	item := &domain.TopContentItem{}

	err := rows.Scan(
		&item.ID,
		&item.MediaType,
		&item.MediaURL,
		&item.ThumbnailURL,
		&item.Caption,
		&item.Permalink,
		&item.LikeCount,
		&item.CommentsCount,
		&item.Timestamp,
		&item.LastUpdated,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
