package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hfujimoto/athlete-site-api/infrastructure/integrator/ga4"
	"github.com/hfujimoto/athlete-site-api/pkg/apiErrors"
	"github.com/hfujimoto/athlete-site-api/pkg/log"
)

// GetWebsiteMetrics serve o resumo de tráfego do site vindo do GA4
func GetWebsiteMetrics(service *ga4.Integrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		metrics, err := service.GetWebsiteMetrics(r.Context())
		if err != nil {
			logger.WithError(err).Error("website: erro ao consultar o GA4")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar métricas do site", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logger.WithError(err).Error("website: erro ao codificar resposta")
		}
	}
}
