package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/hfujimoto/athlete-site-api/internal/domain"
	"github.com/hfujimoto/athlete-site-api/internal/usecases/tracking"
	"github.com/hfujimoto/athlete-site-api/pkg/apiErrors"
	"github.com/hfujimoto/athlete-site-api/pkg/log"
)

// GetTrackingConfig serve a configuração de rastreamento e SEO ao site
func GetTrackingConfig(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cfg, err := service.GetConfig(r.Context())
		if err != nil {
			if errors.Is(err, tracking.ErrConfigNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Configuração de rastreamento não encontrada", nil)
				return
			}

			logger.WithError(err).Error("rastreamento: erro ao buscar configuração")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar configuração", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cfg); err != nil {
			logger.WithError(err).Error("rastreamento: erro ao codificar resposta")
		}
	})
}

// UpdateTrackingConfig atualiza a configuração a partir do dashboard
func UpdateTrackingConfig(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var cfg domain.TrackingConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.UpdateConfig(r.Context(), &cfg); err != nil {
			logger.WithError(err).Error("rastreamento: erro ao atualizar configuração")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar configuração", nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
