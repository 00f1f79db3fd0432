package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hfujimoto/athlete-site-api/infrastructure/database/postgres"
	"github.com/hfujimoto/athlete-site-api/internal/domain"
)

var dailyMetricTestColumns = []string{
	"id", "date", "followers_count", "media_count",
	"reach_daily", "impressions_daily", "reach_28d", "impressions_28d",
	"profile_views_daily", "email_contacts", "website_clicks",
	"phone_call_clicks", "text_message_clicks", "get_directions_clicks",
	"audience_city", "audience_gender_age", "audience_country",
	"created_at", "updated_at",
}

func newDailyMetricRepoTest(t *testing.T) (DailyMetricRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewDailyMetricRepository(&postgres.Connection{DB: db})
	return repo, mock
}

func addMetricRow(rows *sqlmock.Rows, id int, date time.Time, followers int, cityJSON string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, date, followers, 120,
		300, 450, 2100, 3200,
		40, 2, 15,
		1, 3, 0,
		[]byte(cityJSON), []byte(`{"M.18-24": 10}`), []byte(`{"BR": 95}`),
		now, now,
	)
}

func TestDailyMetricRepository_GetByDateRange(t *testing.T) {
	repo, mock := newDailyMetricRepoTest(t)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(dailyMetricTestColumns)
	addMetricRow(rows, 1, start, 1000, `{"São Paulo, São Paulo (state)": 80}`)
	addMetricRow(rows, 2, end, 1040, `{"Rio de Janeiro, Rio de Janeiro (state)": 60}`)

	mock.ExpectQuery(`(?s)SELECT .+ FROM daily_metrics dm WHERE dm\.date >= \$1 AND dm\.date <= \$2 ORDER BY dm\.date ASC`).
		WithArgs("2024-06-01", "2024-06-30").
		WillReturnRows(rows)

	metrics, err := repo.GetByDateRange(start, end)
	require.NoError(t, err)
	require.Len(t, metrics, 2)

	assert.Equal(t, 1000, metrics[0].FollowersCount)
	assert.Equal(t, 1040, metrics[1].FollowersCount)
	assert.Equal(t, float64(80), metrics[0].AudienceCity["São Paulo, São Paulo (state)"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyMetricRepository_GetByDateRangeExclusive(t *testing.T) {
	repo, mock := newDailyMetricRepoTest(t)

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// Limite superior aberto: o dia de fronteira fica de fora
	mock.ExpectQuery(`(?s)SELECT .+ FROM daily_metrics dm WHERE dm\.date >= \$1 AND dm\.date < \$2 ORDER BY dm\.date ASC`).
		WithArgs("2024-05-01", "2024-06-01").
		WillReturnRows(sqlmock.NewRows(dailyMetricTestColumns))

	metrics, err := repo.GetByDateRangeExclusive(start, end)
	require.NoError(t, err)
	assert.Empty(t, metrics)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyMetricRepository_GetLatest(t *testing.T) {
	repo, mock := newDailyMetricRepoTest(t)

	date := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(dailyMetricTestColumns)
	addMetricRow(rows, 7, date, 1040, `{"São Paulo, São Paulo (state)": 80}`)

	mock.ExpectQuery(`(?s)SELECT .+ FROM daily_metrics dm ORDER BY dm\.date DESC LIMIT 1`).
		WillReturnRows(rows)

	metric, err := repo.GetLatest()
	require.NoError(t, err)
	require.NotNil(t, metric)
	assert.Equal(t, 7, metric.ID)
	assert.Equal(t, 1040, metric.FollowersCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyMetricRepository_GetLatestEmptyTable(t *testing.T) {
	repo, mock := newDailyMetricRepoTest(t)

	mock.ExpectQuery(`(?s)SELECT .+ FROM daily_metrics dm ORDER BY dm\.date DESC LIMIT 1`).
		WillReturnRows(sqlmock.NewRows(dailyMetricTestColumns))

	metric, err := repo.GetLatest()
	require.NoError(t, err)
	assert.Nil(t, metric)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyMetricRepository_SaveOrUpdate(t *testing.T) {
	repo, mock := newDailyMetricRepoTest(t)

	metric := &domain.DailyMetric{
		Date:                time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		FollowersCount:      1040,
		MediaCount:          120,
		ReachDaily:          300,
		ImpressionsDaily:    450,
		Reach28d:            2100,
		Impressions28d:      3200,
		ProfileViewsDaily:   40,
		EmailContacts:       2,
		WebsiteClicks:       15,
		PhoneCallClicks:     1,
		TextMessageClicks:   3,
		GetDirectionsClicks: 0,
		AudienceCity:        domain.Breakdown{"São Paulo": 80},
		AudienceGenderAge:   domain.Breakdown{"M.18-24": 10},
		AudienceCountry:     domain.Breakdown{"BR": 95},
	}

	mock.ExpectExec(`(?s)INSERT INTO daily_metrics .+ ON CONFLICT \(date\) DO UPDATE SET.+updated_at = NOW\(\)`).
		WithArgs(
			"2024-06-30", 1040, 120,
			300, 450, 2100, 3200,
			40, 2, 15,
			1, 3, 0,
			[]byte(`{"São Paulo":80}`), []byte(`{"M.18-24":10}`), []byte(`{"BR":95}`),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveOrUpdate(metric)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyMetricRepository_DeleteOlderThan(t *testing.T) {
	repo, mock := newDailyMetricRepoTest(t)

	cutoff := time.Now().AddDate(0, 0, -400).Format("2006-01-02")

	mock.ExpectExec(`DELETE FROM daily_metrics WHERE date < \$1`).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 12))

	deleted, err := repo.DeleteOlderThan(400)
	require.NoError(t, err)
	assert.Equal(t, int64(12), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
