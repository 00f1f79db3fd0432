package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/hfujimoto/athlete-site-api/infrastructure/integrator/ga4"
	"github.com/hfujimoto/athlete-site-api/internal/api/handler"
	"github.com/hfujimoto/athlete-site-api/internal/api/handler/router"
	"github.com/hfujimoto/athlete-site-api/internal/config"
	"github.com/hfujimoto/athlete-site-api/internal/scheduler"
	"github.com/hfujimoto/athlete-site-api/internal/usecases/audience"
	"github.com/hfujimoto/athlete-site-api/internal/usecases/authenticating"
	"github.com/hfujimoto/athlete-site-api/internal/usecases/insighting"
	"github.com/hfujimoto/athlete-site-api/internal/usecases/publishing"
	"github.com/hfujimoto/athlete-site-api/internal/usecases/tracking"
	"github.com/hfujimoto/athlete-site-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	insightService insighting.Insighter,
	audienceService audience.Overviewer,
	authenticator authenticating.Authenticator,
	publisher publishing.Publisher,
	tracker tracking.Tracker,
	ga4Integrator *ga4.Integrator,
	metricsSyncService *scheduler.MetricsSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		MetricsSyncService: metricsSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Metrics(insightService)...),
		router.WithRoutes(handler.Audience(audienceService)...),
		router.WithRoutes(handler.Blog(publisher)...),
		router.WithRoutes(handler.Tracking(tracker)...),
		router.WithRoutes(handler.Website(ga4Integrator)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
