package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/hfujimoto/athlete-site-api/internal/scheduler"
	"github.com/hfujimoto/athlete-site-api/pkg/apiErrors"
)

// Tipos de cron job disparáveis manualmente
const (
	CronJobTypeMetrics = "metrics"
	CronJobTypeAll     = "all"
)

// CronJobServices contém os agendadores expostos para execução manual
type CronJobServices struct {
	MetricsSyncService *scheduler.MetricsSyncService
}

// RunCronJob dispara manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeMetrics, CronJobTypeAll:
			if services.MetricsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de métricas não disponível", nil)
				return
			}
			services.MetricsSyncService.RunNow()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job desconhecido", nil)
			return
		}

		logrus.WithField("cron_type", cronType).Info("Cron job disparada manualmente")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "started",
			"type":   cronType,
		})
	}
}

// CronStatus retorna o status dos agendadores
func CronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.MetricsSyncService != nil {
			status["metrics"] = services.MetricsSyncService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.Error(err)
		}
	}
}
