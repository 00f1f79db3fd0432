package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/hfujimoto/athlete-site-api/infrastructure/database/postgres"
	"github.com/hfujimoto/athlete-site-api/internal/domain"
)

// TrackingConfigRepository acessa a linha única de configuração de
// rastreamento do site
type TrackingConfigRepository interface {
	Get() (*domain.TrackingConfig, error)
	Update(cfg *domain.TrackingConfig) error
}

type trackingConfigRepository struct {
	conn *postgres.Connection
}

func NewTrackingConfigRepository(conn *postgres.Connection) TrackingConfigRepository {
	return &trackingConfigRepository{
		conn: conn,
	}
}

func (r *trackingConfigRepository) Get() (*domain.TrackingConfig, error) {
	query, args, err := squirrel.
		Select(`tc.id, tc.ga4_measurement_id, tc.google_search_console_verification,
			tc.google_tag_manager_id, tc.meta_pixel_id, tc.meta_domain_verification,
			tc.tiktok_pixel_id, tc.custom_head_scripts, tc.site_title,
			tc.site_description, tc.site_keywords, tc.og_default_image, tc.updated_at`).
		From("tracking_config tc").
		OrderBy("tc.id ASC").
		Limit(1).
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

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
		}
		return nil, nil
	}

	cfg := &domain.TrackingConfig{}
	err = rows.Scan(
		&cfg.ID,
		&cfg.GA4MeasurementID,
		&cfg.GoogleSearchConsoleVerification,
		&cfg.GoogleTagManagerID,
		&cfg.MetaPixelID,
		&cfg.MetaDomainVerification,
		&cfg.TikTokPixelID,
		&cfg.CustomHeadScripts,
		&cfg.SiteTitle,
		&cfg.SiteDescription,
		&cfg.SiteKeywords,
		&cfg.OGDefaultImage,
		&cfg.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear configuração: %w", err)
	}

	return cfg, nil
}

func (r *trackingConfigRepository) Update(cfg *domain.TrackingConfig) error {
	query, args, err := squirrel.StatementBuilder.
		Update("tracking_config").
		Set("ga4_measurement_id", cfg.GA4MeasurementID).
		Set("google_search_console_verification", cfg.GoogleSearchConsoleVerification).
		Set("google_tag_manager_id", cfg.GoogleTagManagerID).
		Set("meta_pixel_id", cfg.MetaPixelID).
		Set("meta_domain_verification", cfg.MetaDomainVerification).
		Set("tiktok_pixel_id", cfg.TikTokPixelID).
		Set("custom_head_scripts", cfg.CustomHeadScripts).
		Set("site_title", cfg.SiteTitle).
		Set("site_description", cfg.SiteDescription).
		Set("site_keywords", cfg.SiteKeywords).
		Set("og_default_image", cfg.OGDefaultImage).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": cfg.ID}).
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
