package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hfujimoto/athlete-site-api/internal/usecases/audience"
	"github.com/hfujimoto/athlete-site-api/pkg/apiErrors"
	"github.com/hfujimoto/athlete-site-api/pkg/log"
)

// GetAudienceOverview serve o recorte de audiência consumido pelos gráficos
// do site: gênero, faixas etárias, top cidades e o mapa de calor por estado
func GetAudienceOverview(service audience.Overviewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		overview, err := service.GetOverview(r.Context())
		if err != nil {
			logger.WithError(err).Error("audiência: erro ao montar o recorte")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar audiência", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(overview); err != nil {
			logger.WithError(err).Error("audiência: erro ao codificar resposta")
		}
	})
}
