package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/hfujimoto/athlete-site-api/internal/usecases/insighting"
	"github.com/hfujimoto/athlete-site-api/pkg/apiErrors"
	"github.com/hfujimoto/athlete-site-api/pkg/log"
)

const defaultWindowDays = 30

// GetMetrics serve os totais agregados do perfil para o site público.
// O parâmetro days define a janela; o padrão é 30 dias.
func GetMetrics(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		windowDays := defaultWindowDays
		if raw := r.URL.Query().Get("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				logger.WithField("days", raw).Warn("métricas: parâmetro days inválido")
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Parâmetro days deve ser um número inteiro", nil)
				return
			}
			windowDays = parsed
		}

		metrics, err := service.GetAggregatedMetrics(r.Context(), windowDays)
		if err != nil {
			if errors.Is(err, insighting.ErrInvalidWindow) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Janela de agregação deve ser positiva", nil)
				return
			}

			logger.WithError(err).WithField("days", windowDays).Error("métricas: erro ao agregar métricas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar métricas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logger.WithError(err).Error("métricas: erro ao codificar resposta")
		}
	})
}

// GetTopContent serve a vitrine das publicações mais curtidas
func GetTopContent(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit := 5
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		items, err := service.GetTopContent(r.Context(), limit)
		if err != nil {
			logger.WithError(err).Error("conteúdo: erro ao buscar publicações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar publicações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(items); err != nil {
			logger.WithError(err).Error("conteúdo: erro ao codificar resposta")
		}
	})
}
