package handler

import (
	"net/http"

	"github.com/hfujimoto/athlete-site-api/internal/usecases/publishing"
	"github.com/hfujimoto/athlete-site-api/pkg/apiErrors"
	"github.com/hfujimoto/athlete-site-api/pkg/log"
)

// Sitemap serve o sitemap.xml montado a partir dos posts publicados
func Sitemap(service publishing.Publisher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sitemap, err := service.BuildSitemap()
		if err != nil {
			logger.WithError(err).Error("sitemap: erro ao montar o XML")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar o sitemap", nil)
			return
		}

		w.Header().Set("Content-Type", "application/xml")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		if _, err := w.Write([]byte(sitemap)); err != nil {
			logger.WithError(err).Error("sitemap: erro ao escrever resposta")
		}
	})
}
