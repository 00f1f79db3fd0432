package insighting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hfujimoto/athlete-site-api/infrastructure/repository/mocks"
	"github.com/hfujimoto/athlete-site-api/internal/domain"
)

// Data de referência fixa para as janelas dos testes
var testToday = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

func newTestService(dailyRepo *mocks.MockDailyMetricRepository, contentRepo *mocks.MockTopContentRepository) *Service {
	return NewService(dailyRepo, contentRepo).WithClock(func() time.Time {
		// Hora do dia não deve importar: o serviço trunca para a data
		return testToday.Add(15 * time.Hour)
	})
}

func metricOn(date time.Time, reach, impressions, profileViews, followers int) *domain.DailyMetric {
	return &domain.DailyMetric{
		Date:              date,
		ReachDaily:        reach,
		ImpressionsDaily:  impressions,
		ProfileViewsDaily: profileViews,
		FollowersCount:    followers,
	}
}

func TestGetAggregatedMetrics_GrowthBetweenWindows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
	contentRepo := mocks.NewMockTopContentRepository(ctrl)
	service := newTestService(dailyRepo, contentRepo)

	currentStart := testToday.AddDate(0, 0, -30)
	previousStart := testToday.AddDate(0, 0, -60)

	// Janela atual: reach 300 em dois dias, seguidores de 1000 para 1040
	dailyRepo.EXPECT().
		GetByDateRange(currentStart, testToday).
		Return([]*domain.DailyMetric{
			metricOn(currentStart, 100, 50, 10, 1000),
			metricOn(testToday, 200, 150, 20, 1040),
		}, nil)

	// Janela anterior: reach 150
	dailyRepo.EXPECT().
		GetByDateRangeExclusive(previousStart, currentStart).
		Return([]*domain.DailyMetric{
			metricOn(previousStart, 150, 100, 30, 980),
		}, nil)

	dailyRepo.EXPECT().
		GetLatest().
		Return(&domain.DailyMetric{
			Date:              testToday,
			AudienceCity:      domain.Breakdown{"São Paulo, São Paulo (state)": 100},
			AudienceGenderAge: domain.Breakdown{"F, 25-34": 60},
			AudienceCountry:   domain.Breakdown{"BR": 90},
		}, nil)

	result, err := service.GetAggregatedMetrics(context.Background(), 30)

	require.NoError(t, err)
	assert.Equal(t, 300, result.TotalReach)
	assert.Equal(t, 200, result.TotalImpressions)
	assert.Equal(t, 30, result.TotalInteractions)
	assert.Equal(t, 40, result.FollowersGained)
	assert.Equal(t, float64(100), result.ReachGrowth)
	assert.Equal(t, float64(100), result.ImpressionsGrowth)
	assert.Equal(t, float64(0), result.InteractionsGrowth)
	assert.Equal(t, domain.Breakdown{"São Paulo, São Paulo (state)": 100}, result.AudienceCity)
	assert.Equal(t, domain.Breakdown{"F, 25-34": 60}, result.AudienceGenderAge)
	assert.Equal(t, domain.Breakdown{"BR": 90}, result.AudienceCountry)
}

func TestGetAggregatedMetrics_EmptyStoreReturnsZeros(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
	contentRepo := mocks.NewMockTopContentRepository(ctrl)
	service := newTestService(dailyRepo, contentRepo)

	dailyRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any()).Return(nil, nil)
	dailyRepo.EXPECT().GetByDateRangeExclusive(gomock.Any(), gomock.Any()).Return(nil, nil)
	dailyRepo.EXPECT().GetLatest().Return(nil, nil)

	result, err := service.GetAggregatedMetrics(context.Background(), 30)

	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalReach)
	assert.Equal(t, 0, result.TotalImpressions)
	assert.Equal(t, 0, result.TotalInteractions)
	assert.Equal(t, 0, result.FollowersGained)
	assert.Equal(t, float64(0), result.ReachGrowth)
	assert.Empty(t, result.AudienceCity)
	assert.Empty(t, result.AudienceGenderAge)
	assert.Empty(t, result.AudienceCountry)
}

func TestGetAggregatedMetrics_CurrentWindowFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
	contentRepo := mocks.NewMockTopContentRepository(ctrl)
	service := newTestService(dailyRepo, contentRepo)

	storeErr := errors.New("banco indisponível")
	dailyRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any()).Return(nil, storeErr)

	result, err := service.GetAggregatedMetrics(context.Background(), 30)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, storeErr)
}

func TestGetAggregatedMetrics_PreviousWindowFailureDegradesToZeroGrowth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
	contentRepo := mocks.NewMockTopContentRepository(ctrl)
	service := newTestService(dailyRepo, contentRepo)

	dailyRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any()).
		Return([]*domain.DailyMetric{
			metricOn(testToday, 500, 300, 40, 1200),
		}, nil)
	dailyRepo.EXPECT().
		GetByDateRangeExclusive(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("timeout na janela anterior"))
	dailyRepo.EXPECT().GetLatest().Return(nil, nil)

	result, err := service.GetAggregatedMetrics(context.Background(), 30)

	require.NoError(t, err)
	assert.Equal(t, 500, result.TotalReach)
	assert.Equal(t, float64(0), result.ReachGrowth)
	assert.Equal(t, float64(0), result.ImpressionsGrowth)
	assert.Equal(t, float64(0), result.FollowersGrowth)
}

func TestGetAggregatedMetrics_RejectsNonPositiveWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
	contentRepo := mocks.NewMockTopContentRepository(ctrl)
	service := newTestService(dailyRepo, contentRepo)

	for _, days := range []int{0, -1, -30} {
		result, err := service.GetAggregatedMetrics(context.Background(), days)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	}
}

func TestGetAggregatedMetrics_LatestFailureKeepsTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
	contentRepo := mocks.NewMockTopContentRepository(ctrl)
	service := newTestService(dailyRepo, contentRepo)

	dailyRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any()).
		Return([]*domain.DailyMetric{metricOn(testToday, 80, 60, 5, 900)}, nil)
	dailyRepo.EXPECT().GetByDateRangeExclusive(gomock.Any(), gomock.Any()).Return(nil, nil)
	dailyRepo.EXPECT().GetLatest().Return(nil, errors.New("leitura falhou"))

	result, err := service.GetAggregatedMetrics(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 80, result.TotalReach)
	assert.Empty(t, result.AudienceCity)
}

func TestGetAggregatedMetrics_FractionalGrowthIsRounded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
	contentRepo := mocks.NewMockTopContentRepository(ctrl)
	service := newTestService(dailyRepo, contentRepo)

	// 100 → 133: crescimento de 33% arredondado em duas casas
	dailyRepo.EXPECT().
		GetByDateRange(gomock.Any(), gomock.Any()).
		Return([]*domain.DailyMetric{metricOn(testToday, 133, 0, 0, 0)}, nil)
	dailyRepo.EXPECT().
		GetByDateRangeExclusive(gomock.Any(), gomock.Any()).
		Return([]*domain.DailyMetric{metricOn(testToday.AddDate(0, 0, -40), 100, 0, 0, 0)}, nil)
	dailyRepo.EXPECT().GetLatest().Return(nil, nil)

	result, err := service.GetAggregatedMetrics(context.Background(), 30)

	require.NoError(t, err)
	assert.Equal(t, float64(33), result.ReachGrowth)
}

func TestGetTopContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
	contentRepo := mocks.NewMockTopContentRepository(ctrl)
	service := newTestService(dailyRepo, contentRepo)

	items := []*domain.TopContentItem{
		{ID: "mid-1", LikeCount: 900},
		{ID: "mid-2", LikeCount: 450},
	}
	contentRepo.EXPECT().ListTopByLikes(5).Return(items, nil)

	result, err := service.GetTopContent(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, items, result)
}

func TestGetTopContent_DefaultsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
	contentRepo := mocks.NewMockTopContentRepository(ctrl)
	service := newTestService(dailyRepo, contentRepo)

	contentRepo.EXPECT().ListTopByLikes(5).Return(nil, nil)

	_, err := service.GetTopContent(context.Background(), 0)

	require.NoError(t, err)
}
