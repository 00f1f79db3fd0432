package scheduler

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/hfujimoto/athlete-site-api/infrastructure/repository/mocks"
	"github.com/hfujimoto/athlete-site-api/internal/domain"
)

// fakeFetcher implementa ProfileFetcher com respostas fixas
type fakeFetcher struct {
	snapshot    *domain.DailyMetric
	snapshotErr error
	content     []*domain.TopContentItem
	contentErr  error
}

func (f *fakeFetcher) FetchDailySnapshot() (*domain.DailyMetric, error) {
	return f.snapshot, f.snapshotErr
}

func (f *fakeFetcher) FetchRecentContent(limit int) ([]*domain.TopContentItem, error) {
	return f.content, f.contentErr
}

func newSyncService(fetcher ProfileFetcher, dailyRepo *mocks.MockDailyMetricRepository, contentRepo *mocks.MockTopContentRepository) *MetricsSyncService {
	return &MetricsSyncService{
		config: MetricsSyncConfig{
			RetentionDays: 400,
			MediaLimit:    50,
			SyncEnabled:   true,
		},
		instagramService: fetcher,
		dailyMetricRepo:  dailyRepo,
		topContentRepo:   contentRepo,
	}
}

func TestSyncMetrics_FullRound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
	contentRepo := mocks.NewMockTopContentRepository(ctrl)

	snapshot := &domain.DailyMetric{
		Date:           time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		FollowersCount: 12000,
		ReachDaily:     340,
	}
	fetcher := &fakeFetcher{
		snapshot: snapshot,
		content: []*domain.TopContentItem{
			{ID: "mid-1", LikeCount: 900},
			{ID: "mid-2", LikeCount: 450},
		},
	}

	dailyRepo.EXPECT().SaveOrUpdate(snapshot).Return(nil)
	contentRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(2)
	dailyRepo.EXPECT().DeleteOlderThan(400).Return(int64(3), nil)

	service := newSyncService(fetcher, dailyRepo, contentRepo)
	service.syncMetrics()

	assert.False(t, service.lastSyncCompletedAt.IsZero())
	assert.Empty(t, service.lastSyncError)
}

func TestSyncMetrics_SnapshotFailureSkipsRest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
	contentRepo := mocks.NewMockTopContentRepository(ctrl)

	fetcher := &fakeFetcher{snapshotErr: errors.New("Graph API indisponível")}

	service := newSyncService(fetcher, dailyRepo, contentRepo)
	service.syncMetrics()

	// Nenhuma escrita acontece quando o snapshot falha
	assert.NotEmpty(t, service.lastSyncError)
	assert.True(t, service.lastSyncCompletedAt.IsZero())
}

func TestSyncMetrics_ContentFailureKeepsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
	contentRepo := mocks.NewMockTopContentRepository(ctrl)

	fetcher := &fakeFetcher{
		snapshot:   &domain.DailyMetric{Date: time.Now()},
		contentErr: errors.New("mídia indisponível"),
	}

	dailyRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
	dailyRepo.EXPECT().DeleteOlderThan(400).Return(int64(0), nil)

	service := newSyncService(fetcher, dailyRepo, contentRepo)
	service.syncMetrics()

	assert.NotEmpty(t, service.lastSyncError)
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
	contentRepo := mocks.NewMockTopContentRepository(ctrl)

	service := newSyncService(&fakeFetcher{}, dailyRepo, contentRepo)
	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, 400, status["retention_days"])
	assert.Equal(t, false, status["sync_running"])
}
