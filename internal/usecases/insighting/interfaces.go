package insighting

import (
	"context"

	"github.com/hfujimoto/athlete-site-api/internal/domain"
)

// Insighter define a interface para a agregação de métricas do perfil
type Insighter interface {
	// GetAggregatedMetrics agrega as métricas diárias dos últimos windowDays dias
	// e calcula o crescimento em relação à janela anterior de mesmo tamanho
	GetAggregatedMetrics(ctx context.Context, windowDays int) (*domain.AggregatedMetrics, error)

	// GetTopContent retorna os conteúdos mais curtidos do perfil
	GetTopContent(ctx context.Context, limit int) ([]*domain.TopContentItem, error)
}
