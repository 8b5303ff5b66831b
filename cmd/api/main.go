package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/revoa/revoa-api/infrastructure/database/postgres"
	"github.com/revoa/revoa-api/infrastructure/integrator/googleads"
	"github.com/revoa/revoa-api/infrastructure/integrator/meta"
	"github.com/revoa/revoa-api/infrastructure/integrator/meta/metaclient"
	"github.com/revoa/revoa-api/infrastructure/integrator/shopify"
	"github.com/revoa/revoa-api/infrastructure/integrator/tiktok"
	"github.com/revoa/revoa-api/infrastructure/repository"
	"github.com/revoa/revoa-api/internal/api"
	"github.com/revoa/revoa-api/internal/api/handler"
	"github.com/revoa/revoa-api/internal/config"
	"github.com/revoa/revoa-api/internal/scheduler"
	"github.com/revoa/revoa-api/internal/usecases/account"
	"github.com/revoa/revoa-api/internal/usecases/authenticating"
	"github.com/revoa/revoa-api/internal/usecases/insighting"
	"github.com/revoa/revoa-api/internal/usecases/products"
	"github.com/revoa/revoa-api/internal/usecases/rex"
	"github.com/revoa/revoa-api/internal/usecases/suggesting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

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

	accountRepo := repository.NewAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	adInsightRepo := repository.NewAdInsightRepository(pgConn)
	rexSuggestionRepo := repository.NewRexSuggestionRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, accountRepo, cfg)

	// Meta mantém um token de longa duração renovado em background
	tokenManager := metaclient.NewTokenManager(cfg)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	metaClient := metaclient.NewClient(cfg, tokenManager)
	metaIntegrator := meta.New(cfg, metaClient)

	googleAdsIntegrator := googleads.New(cfg, googleads.NewClient(cfg))
	tiktokIntegrator := tiktok.New(cfg, tiktok.NewClient(cfg))
	shopifyIntegrator := shopify.New(cfg, shopify.NewClient(cfg))

	integrators := []insighting.PlatformIntegrator{
		metaIntegrator,
		googleAdsIntegrator,
		tiktokIntegrator,
	}

	accountService := account.NewService(cfg, accountRepo, integrators)
	insightService := insighting.NewService(cfg, accountRepo, adInsightRepo)
	suggestionService := suggesting.NewService(cfg, accountRepo, adInsightRepo)
	rexService := rex.NewService(cfg, accountRepo, adInsightRepo, rexSuggestionRepo)
	productService := products.NewService(productRepo)

	// Um agendador de sincronização de métricas por plataforma
	metaSyncService := scheduler.NewPlatformInsightSyncService(metaIntegrator, accountRepo, adInsightRepo, cfg)
	googleSyncService := scheduler.NewPlatformInsightSyncService(googleAdsIntegrator, accountRepo, adInsightRepo, cfg)
	tiktokSyncService := scheduler.NewPlatformInsightSyncService(tiktokIntegrator, accountRepo, adInsightRepo, cfg)

	rexAnalysisSyncService := scheduler.NewRexAnalysisSyncService(accountRepo, rexSuggestionRepo, rexService, cfg)

	startScheduler(ctx, "Meta", metaSyncService)
	startScheduler(ctx, "Google Ads", googleSyncService)
	startScheduler(ctx, "TikTok", tiktokSyncService)
	startScheduler(ctx, "análise proativa", rexAnalysisSyncService)

	cronServices := handler.CronJobServices{
		MetaInsightSyncService:   metaSyncService,
		GoogleInsightSyncService: googleSyncService,
		TikTokInsightSyncService: tiktokSyncService,
		RexAnalysisSyncService:   rexAnalysisSyncService,
	}

	server, err := api.New(
		cfg,
		insightService,
		suggestionService,
		rexService,
		accountService,
		productService,
		authenticator,
		shopifyIntegrator,
		cronServices,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

type startable interface {
	Start(ctx context.Context) error
}

func startScheduler(ctx context.Context, name string, service startable) {
	if err := service.Start(ctx); err != nil {
		logrus.WithError(err).Errorf("Erro ao iniciar o agendador de %s", name)
		return
	}
	logrus.Infof("Agendador de %s iniciado com sucesso", name)
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
