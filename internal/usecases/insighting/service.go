package insighting

import (
	"context"
	"time"

	"github.com/hfujimoto/athlete-site-api/infrastructure/repository"
	"github.com/hfujimoto/athlete-site-api/internal/domain"
	"github.com/hfujimoto/athlete-site-api/pkg/log"
	"github.com/hfujimoto/athlete-site-api/pkg/utils"
)

// storeTimeout limita o tempo total de acesso ao banco por requisição
const storeTimeout = 10 * time.Second

// windowTotals acumula os totais de uma janela de snapshots
type windowTotals struct {
	reach        int
	impressions  int
	interactions int
	followers    int
}

// Service implementa a interface Insighter sobre o repositório de snapshots
type Service struct {
	dailyMetricRepository repository.DailyMetricRepository
	topContentRepository  repository.TopContentRepository
	now                   func() time.Time
}

// NewService cria uma nova instância do serviço de agregação de métricas
func NewService(
	dailyMetricRepo repository.DailyMetricRepository,
	topContentRepo repository.TopContentRepository,
) *Service {
	return &Service{
		dailyMetricRepository: dailyMetricRepo,
		topContentRepository:  topContentRepo,
		now:                   time.Now,
	}
}

// WithClock substitui a fonte de tempo do serviço, usado nos testes para
// fixar o dia de referência das janelas
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// GetAggregatedMetrics agrega os snapshots da janela [hoje-N, hoje] e calcula
// o crescimento contra a janela anterior [hoje-2N, hoje-N). A falha na busca
// da janela atual é fatal; a falha na janela anterior degrada para um
// crescimento de 0% com um aviso no log. Os recortes de audiência vêm sempre
// do snapshot mais recente, independentemente da janela pedida.
func (s *Service) GetAggregatedMetrics(ctx context.Context, windowDays int) (*domain.AggregatedMetrics, error) {
	if windowDays <= 0 {
		return nil, ErrInvalidWindow
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	today := utils.DateOnly(s.now())
	currentStart := today.AddDate(0, 0, -windowDays)
	previousStart := today.AddDate(0, 0, -2*windowDays)

	current, err := s.fetchRange(ctx, func() ([]*domain.DailyMetric, error) {
		return s.dailyMetricRepository.GetByDateRange(currentStart, today)
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"window_days": windowDays,
			"start_date":  currentStart.Format("2006-01-02"),
		}).Error("Erro ao buscar snapshots da janela atual")
		return nil, err
	}

	previous, err := s.fetchRange(ctx, func() ([]*domain.DailyMetric, error) {
		return s.dailyMetricRepository.GetByDateRangeExclusive(previousStart, currentStart)
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"window_days": windowDays,
			"start_date":  previousStart.Format("2006-01-02"),
		}).Warn("Erro ao buscar snapshots da janela anterior, crescimento será zerado")
		previous = nil
	}

	currentTotals := sumWindow(current)
	previousTotals := sumWindow(previous)

	metrics := &domain.AggregatedMetrics{
		TotalReach:         currentTotals.reach,
		TotalImpressions:   currentTotals.impressions,
		TotalInteractions:  currentTotals.interactions,
		FollowersGained:    currentTotals.followers,
		ReachGrowth:        domain.Growth(currentTotals.reach, previousTotals.reach),
		ImpressionsGrowth:  domain.Growth(currentTotals.impressions, previousTotals.impressions),
		InteractionsGrowth: domain.Growth(currentTotals.interactions, previousTotals.interactions),
		FollowersGrowth:    domain.Growth(currentTotals.followers, previousTotals.followers),
		AudienceCity:       domain.Breakdown{},
		AudienceGenderAge:  domain.Breakdown{},
		AudienceCountry:    domain.Breakdown{},
	}

	latest, err := s.fetchLatest(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao buscar o último snapshot para os recortes de audiência")
		return metrics, nil
	}

	if latest != nil {
		metrics.AudienceCity = domain.NormalizeBreakdown(latest.AudienceCity)
		metrics.AudienceGenderAge = domain.NormalizeBreakdown(latest.AudienceGenderAge)
		metrics.AudienceCountry = domain.NormalizeBreakdown(latest.AudienceCountry)
	}

	return metrics, nil
}

// GetTopContent retorna os conteúdos mais curtidos já sincronizados
func (s *Service) GetTopContent(ctx context.Context, limit int) ([]*domain.TopContentItem, error) {
	if limit <= 0 {
		limit = 5
	}

	items, err := s.topContentRepository.ListTopByLikes(limit)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar os conteúdos mais curtidos")
		return nil, err
	}

	return items, nil
}

// sumWindow soma os contadores diários de uma janela. O ganho de seguidores é
// a diferença entre o último e o primeiro snapshot da janela, não uma soma
func sumWindow(metrics []*domain.DailyMetric) windowTotals {
	totals := windowTotals{}
	for _, m := range metrics {
		totals.reach += m.ReachDaily
		totals.impressions += m.ImpressionsDaily
		totals.interactions += m.Interactions()
	}

	if len(metrics) > 0 {
		totals.followers = metrics[len(metrics)-1].FollowersCount - metrics[0].FollowersCount
	}

	return totals
}

type rangeResult struct {
	metrics []*domain.DailyMetric
	err     error
}

// fetchRange executa a busca respeitando o deadline do contexto, já que o
// driver não recebe o contexto diretamente
func (s *Service) fetchRange(ctx context.Context, fetch func() ([]*domain.DailyMetric, error)) ([]*domain.DailyMetric, error) {
	done := make(chan rangeResult, 1)
	go func() {
		metrics, err := fetch()
		done <- rangeResult{metrics: metrics, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-done:
		return result.metrics, result.err
	}
}

func (s *Service) fetchLatest(ctx context.Context) (*domain.DailyMetric, error) {
	type latestResult struct {
		metric *domain.DailyMetric
		err    error
	}

	done := make(chan latestResult, 1)
	go func() {
		metric, err := s.dailyMetricRepository.GetLatest()
		done <- latestResult{metric: metric, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-done:
		return result.metric, result.err
	}
}
