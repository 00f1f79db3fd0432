package tracking

import (
	"context"

	"github.com/pkg/errors"

	"github.com/hfujimoto/athlete-site-api/infrastructure/repository"
	"github.com/hfujimoto/athlete-site-api/internal/domain"
	"github.com/hfujimoto/athlete-site-api/pkg/log"
)

var ErrConfigNotFound = errors.New("configuração de rastreamento não encontrada")

// Tracker expõe a configuração de rastreamento e SEO do site. Sem cache em
// memória: o serviço é injetado e cada leitura vai ao banco, o que mantém o
// dashboard e o site sempre consistentes após uma atualização.
type Tracker interface {
	GetConfig(ctx context.Context) (*domain.TrackingConfig, error)
	UpdateConfig(ctx context.Context, cfg *domain.TrackingConfig) error
}

type Service struct {
	trackingRepo repository.TrackingConfigRepository
}

func NewService(trackingRepo repository.TrackingConfigRepository) Tracker {
	return &Service{
		trackingRepo: trackingRepo,
	}
}

func (s *Service) GetConfig(ctx context.Context) (*domain.TrackingConfig, error) {
	cfg, err := s.trackingRepo.Get()
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar a configuração de rastreamento")
		return nil, err
	}

	if cfg == nil {
		return nil, ErrConfigNotFound
	}

	return cfg, nil
}

func (s *Service) UpdateConfig(ctx context.Context, cfg *domain.TrackingConfig) error {
	if err := s.trackingRepo.Update(cfg); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao atualizar a configuração de rastreamento")
		return err
	}

	return nil
}
