package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/hfujimoto/athlete-site-api/infrastructure/repository"
	"github.com/hfujimoto/athlete-site-api/internal/config"
	"github.com/hfujimoto/athlete-site-api/internal/domain"
)

// ProfileFetcher é o recorte do integrador do Instagram usado pela
// sincronização
type ProfileFetcher interface {
	FetchDailySnapshot() (*domain.DailyMetric, error)
	FetchRecentContent(limit int) ([]*domain.TopContentItem, error)
}

// MetricsSyncConfig representa a configuração do agendador de sincronização
// de métricas do Instagram
type MetricsSyncConfig struct {
	CronSchedule  string
	RetentionDays int
	MediaLimit    int
	SyncEnabled   bool
}

// MetricsSyncService agenda e executa a sincronização diária: um snapshot de
// métricas do perfil, a vitrine de conteúdo e a limpeza por retenção
type MetricsSyncService struct {
	scheduler           *gocron.Scheduler
	config              MetricsSyncConfig
	instagramService    ProfileFetcher
	dailyMetricRepo     repository.DailyMetricRepository
	topContentRepo      repository.TopContentRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewMetricsSyncService cria uma nova instância do serviço de sincronização
func NewMetricsSyncService(
	instagramService ProfileFetcher,
	dailyMetricRepo repository.DailyMetricRepository,
	topContentRepo repository.TopContentRepository,
	appConfig *config.Config,
) *MetricsSyncService {
	syncConfig := MetricsSyncConfig{
		CronSchedule:  appConfig.MetricsSync.CronSchedule,
		RetentionDays: appConfig.MetricsSync.RetentionDays,
		MediaLimit:    appConfig.MetricsSync.MediaLimit,
		SyncEnabled:   appConfig.MetricsSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"retention_days": syncConfig.RetentionDays,
		"media_limit":    syncConfig.MediaLimit,
		"sync_enabled":   syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de métricas do Instagram carregada")

	return &MetricsSyncService{
		scheduler:        gocron.NewScheduler(time.Local),
		config:           syncConfig,
		instagramService: instagramService,
		dailyMetricRepo:  dailyMetricRepo,
		topContentRepo:   topContentRepo,
	}
}

// Start inicia o agendador e o encerra quando o contexto é cancelado
func (s *MetricsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de métricas do Instagram desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de métricas do Instagram")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMetrics()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de métricas do Instagram: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de métricas do Instagram")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara uma sincronização manual fora do horário agendado
func (s *MetricsSyncService) RunNow() {
	go s.syncMetrics()
}

// syncMetrics executa uma rodada completa de sincronização. Execuções
// sobrepostas são ignoradas.
func (s *MetricsSyncService) syncMetrics() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de métricas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.lastSyncError = ""

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de métricas do Instagram")

	if err := s.syncDailySnapshot(); err != nil {
		s.lastSyncError = err.Error()
		logrus.WithError(err).Error("Erro ao sincronizar o snapshot diário")
		return
	}

	// Falha na vitrine de conteúdo não invalida o snapshot já gravado
	if err := s.syncTopContent(); err != nil {
		s.lastSyncError = err.Error()
		logrus.WithError(err).Error("Erro ao sincronizar a vitrine de conteúdo")
	}

	s.applyRetention()

	s.lastSyncCompletedAt = time.Now()
	logrus.WithField("duration", time.Since(startTime).String()).Info("Sincronização de métricas do Instagram concluída")
}

func (s *MetricsSyncService) syncDailySnapshot() error {
	snapshot, err := s.instagramService.FetchDailySnapshot()
	if err != nil {
		return fmt.Errorf("erro ao buscar snapshot do Instagram: %w", err)
	}

	if err := s.dailyMetricRepo.SaveOrUpdate(snapshot); err != nil {
		return fmt.Errorf("erro ao gravar snapshot diário: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"date":            snapshot.Date.Format(time.DateOnly),
		"followers_count": snapshot.FollowersCount,
		"reach_daily":     snapshot.ReachDaily,
	}).Info("Snapshot diário gravado")

	return nil
}

func (s *MetricsSyncService) syncTopContent() error {
	items, err := s.instagramService.FetchRecentContent(s.config.MediaLimit)
	if err != nil {
		return fmt.Errorf("erro ao buscar publicações recentes: %w", err)
	}

	saved := 0
	for _, item := range items {
		if err := s.topContentRepo.SaveOrUpdate(item); err != nil {
			logrus.WithError(err).WithField("media_id", item.ID).Error("Erro ao gravar publicação")
			continue
		}
		saved++
	}

	logrus.WithFields(logrus.Fields{
		"fetched": len(items),
		"saved":   saved,
	}).Info("Vitrine de conteúdo sincronizada")

	return nil
}

func (s *MetricsSyncService) applyRetention() {
	if s.config.RetentionDays <= 0 {
		return
	}

	removed, err := s.dailyMetricRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao aplicar retenção de snapshots")
		return
	}

	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"removed":        removed,
			"retention_days": s.config.RetentionDays,
		}).Info("Snapshots antigos removidos")
	}
}

// GetStatus retorna o status atual do agendador
func (s *MetricsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"retention_days":         s.config.RetentionDays,
		"media_limit":            s.config.MediaLimit,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
