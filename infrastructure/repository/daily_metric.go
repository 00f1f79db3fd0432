package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/hfujimoto/athlete-site-api/infrastructure/database/postgres"
	"github.com/hfujimoto/athlete-site-api/internal/domain"
	"github.com/lib/pq"
)

const (
	dailyMetricsTable   = "daily_metrics dm"
	dailyMetricsColumns = `dm.id, dm.date, dm.followers_count, dm.media_count,
		dm.reach_daily, dm.impressions_daily, dm.reach_28d, dm.impressions_28d,
		dm.profile_views_daily, dm.email_contacts, dm.website_clicks,
		dm.phone_call_clicks, dm.text_message_clicks, dm.get_directions_clicks,
		dm.audience_city, dm.audience_gender_age, dm.audience_country,
		dm.created_at, dm.updated_at`
)

// DailyMetricRepository é o acesso de leitura e escrita à tabela de snapshots
// diários. A tabela tem no máximo uma linha por data (upsert por date).
type DailyMetricRepository interface {
	// GetByDateRange retorna os snapshots com data em [startDate, endDate],
	// ordenados de forma ascendente
	GetByDateRange(startDate, endDate time.Time) ([]*domain.DailyMetric, error)
	// GetByDateRangeExclusive retorna os snapshots em [startDate, endDate),
	// usado para o período de comparação sem contar o dia de fronteira duas
	// vezes
	GetByDateRangeExclusive(startDate, endDate time.Time) ([]*domain.DailyMetric, error)
	// GetLatest retorna o snapshot mais recente de toda a tabela, ou nil se
	// não houver nenhum
	GetLatest() (*domain.DailyMetric, error)
	SaveOrUpdate(metric *domain.DailyMetric) error
	DeleteOlderThan(days int) (int64, error)
}

type dailyMetricRepository struct {
	conn *postgres.Connection
}

func NewDailyMetricRepository(conn *postgres.Connection) DailyMetricRepository {
	return &dailyMetricRepository{
		conn: conn,
	}
}

func (r *dailyMetricRepository) GetByDateRange(startDate, endDate time.Time) ([]*domain.DailyMetric, error) {
	return r.getByRange(
		squirrel.GtOrEq{"dm.date": startDate.Format("2006-01-02")},
		squirrel.LtOrEq{"dm.date": endDate.Format("2006-01-02")},
	)
}

func (r *dailyMetricRepository) GetByDateRangeExclusive(startDate, endDate time.Time) ([]*domain.DailyMetric, error) {
	return r.getByRange(
		squirrel.GtOrEq{"dm.date": startDate.Format("2006-01-02")},
		squirrel.Lt{"dm.date": endDate.Format("2006-01-02")},
	)
}

func (r *dailyMetricRepository) getByRange(lower, upper squirrel.Sqlizer) ([]*domain.DailyMetric, error) {
	query, args, err := squirrel.
		Select(dailyMetricsColumns).
		From(dailyMetricsTable).
		Where(lower).
		Where(upper).
		OrderBy("dm.date ASC").
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

	metrics := make([]*domain.DailyMetric, 0)
	for rows.Next() {
		metric, err := r.scanMetric(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

func (r *dailyMetricRepository) GetLatest() (*domain.DailyMetric, error) {
	query, args, err := squirrel.
		Select(dailyMetricsColumns).
		From(dailyMetricsTable).
		OrderBy("dm.date DESC").
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

	metric, err := r.scanMetric(rows)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return metric, nil
}

func (r *dailyMetricRepository) SaveOrUpdate(metric *domain.DailyMetric) error {
	cityJSON, err := json.Marshal(metric.AudienceCity)
	if err != nil {
		return fmt.Errorf("erro ao serializar audience_city: %w", err)
	}

	genderAgeJSON, err := json.Marshal(metric.AudienceGenderAge)
	if err != nil {
		return fmt.Errorf("erro ao serializar audience_gender_age: %w", err)
	}

	countryJSON, err := json.Marshal(metric.AudienceCountry)
	if err != nil {
		return fmt.Errorf("erro ao serializar audience_country: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("daily_metrics").
		Columns(
			"date", "followers_count", "media_count",
			"reach_daily", "impressions_daily", "reach_28d", "impressions_28d",
			"profile_views_daily", "email_contacts", "website_clicks",
			"phone_call_clicks", "text_message_clicks", "get_directions_clicks",
			"audience_city", "audience_gender_age", "audience_country",
		).
		Values(
			metric.Date.Format("2006-01-02"),
			metric.FollowersCount,
			metric.MediaCount,
			metric.ReachDaily,
			metric.ImpressionsDaily,
			metric.Reach28d,
			metric.Impressions28d,
			metric.ProfileViewsDaily,
			metric.EmailContacts,
			metric.WebsiteClicks,
			metric.PhoneCallClicks,
			metric.TextMessageClicks,
			metric.GetDirectionsClicks,
			cityJSON,
			genderAgeJSON,
			countryJSON,
		).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				followers_count = EXCLUDED.followers_count,
				media_count = EXCLUDED.media_count,
				reach_daily = EXCLUDED.reach_daily,
				impressions_daily = EXCLUDED.impressions_daily,
				reach_28d = EXCLUDED.reach_28d,
				impressions_28d = EXCLUDED.impressions_28d,
				profile_views_daily = EXCLUDED.profile_views_daily,
				email_contacts = EXCLUDED.email_contacts,
				website_clicks = EXCLUDED.website_clicks,
				phone_call_clicks = EXCLUDED.phone_call_clicks,
				text_message_clicks = EXCLUDED.text_message_clicks,
				get_directions_clicks = EXCLUDED.get_directions_clicks,
				audience_city = EXCLUDED.audience_city,
				audience_gender_age = EXCLUDED.audience_gender_age,
				audience_country = EXCLUDED.audience_country,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *dailyMetricRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("daily_metrics").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *dailyMetricRepository) scanMetric(rows *sql.Rows) (*domain.DailyMetric, error) {
	metric := &domain.DailyMetric{}
	var cityJSON, genderAgeJSON, countryJSON []byte

	err := rows.Scan(
		&metric.ID,
		&metric.Date,
		&metric.FollowersCount,
		&metric.MediaCount,
		&metric.ReachDaily,
		&metric.ImpressionsDaily,
		&metric.Reach28d,
		&metric.Impressions28d,
		&metric.ProfileViewsDaily,
		&metric.EmailContacts,
		&metric.WebsiteClicks,
		&metric.PhoneCallClicks,
		&metric.TextMessageClicks,
		&metric.GetDirectionsClicks,
		&cityJSON,
		&genderAgeJSON,
		&countryJSON,
		&metric.CreatedAt,
		&metric.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// O unmarshal de Breakdown normaliza os dois formatos de audiência e
	// nunca falha; colunas nulas viram mapeamentos vazios
	metric.AudienceCity = unmarshalBreakdown(cityJSON)
	metric.AudienceGenderAge = unmarshalBreakdown(genderAgeJSON)
	metric.AudienceCountry = unmarshalBreakdown(countryJSON)

	return metric, nil
}

func unmarshalBreakdown(data []byte) domain.Breakdown {
	if len(data) == 0 {
		return domain.Breakdown{}
	}

	var breakdown domain.Breakdown
	_ = json.Unmarshal(data, &breakdown)
	if breakdown == nil {
		breakdown = domain.Breakdown{}
	}
	return breakdown
}
