package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hfujimoto/athlete-site-api/infrastructure/database/postgres"
	"github.com/hfujimoto/athlete-site-api/infrastructure/integrator/ga4"
	"github.com/hfujimoto/athlete-site-api/infrastructure/integrator/instagram"
	"github.com/hfujimoto/athlete-site-api/infrastructure/integrator/instagram/igclient"
	"github.com/hfujimoto/athlete-site-api/infrastructure/integrator/openai"
	"github.com/hfujimoto/athlete-site-api/infrastructure/repository"
	"github.com/hfujimoto/athlete-site-api/internal/api"
	"github.com/hfujimoto/athlete-site-api/internal/config"
	"github.com/hfujimoto/athlete-site-api/internal/scheduler"
	"github.com/hfujimoto/athlete-site-api/internal/usecases/audience"
	"github.com/hfujimoto/athlete-site-api/internal/usecases/authenticating"
	"github.com/hfujimoto/athlete-site-api/internal/usecases/insighting"
	"github.com/hfujimoto/athlete-site-api/internal/usecases/publishing"
	"github.com/hfujimoto/athlete-site-api/internal/usecases/tracking"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	dailyMetricRepo := repository.NewDailyMetricRepository(pgConn)
	topContentRepo := repository.NewTopContentRepository(pgConn)
	blogPostRepo := repository.NewBlogPostRepository(pgConn)
	trackingRepo := repository.NewTrackingConfigRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	igClient := igclient.NewClient(cfg)
	instagramIntegrator := instagram.New(cfg, igClient)

	ga4Integrator := ga4.New(cfg)

	openaiClient := openai.NewClient(cfg)

	insightService := insighting.NewService(dailyMetricRepo, topContentRepo)
	audienceService := audience.NewService(dailyMetricRepo)
	publisher := publishing.NewService(blogPostRepo, openaiClient, cfg)
	tracker := tracking.NewService(trackingRepo)

	// Agendador de sincronização diária de métricas do Instagram
	metricsSyncService := scheduler.NewMetricsSyncService(
		instagramIntegrator,
		dailyMetricRepo,
		topContentRepo,
		cfg,
	)

	if err := metricsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de métricas")
	} else {
		logrus.Info("Agendador de sincronização de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		insightService,
		audienceService,
		authenticator,
		publisher,
		tracker,
		ga4Integrator,
		metricsSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
