package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/gmendes/agency-ops-api/infrastructure/database/postgres"
	"github.com/gmendes/agency-ops-api/infrastructure/integrator/adplatform"
	"github.com/gmendes/agency-ops-api/infrastructure/integrator/adplatform/bridgeclient"
	"github.com/gmendes/agency-ops-api/infrastructure/repository"
	"github.com/gmendes/agency-ops-api/internal/api"
	"github.com/gmendes/agency-ops-api/internal/config"
	"github.com/gmendes/agency-ops-api/internal/scheduler"
	"github.com/gmendes/agency-ops-api/internal/usecases/authenticating"
	"github.com/gmendes/agency-ops-api/internal/usecases/budgeting"
	"github.com/gmendes/agency-ops-api/internal/usecases/pacing"
	"github.com/gmendes/agency-ops-api/internal/usecases/suppressing"
	"github.com/sirupsen/logrus"
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

	// Timezone da agência: todas as comparações de data de calendário
	// (supressão, "hoje", limites de mês) acontecem nesta localização
	location, err := time.LoadLocation(cfg.Agency.Timezone)
	if err != nil {
		logrus.WithError(err).Fatalf("Timezone da agência inválida: %s", cfg.Agency.Timezone)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	clientRepo := repository.NewClientRepository(pgConn)
	accountRepo := repository.NewAdAccountRepository(pgConn)
	overrideRepo := repository.NewBudgetOverrideRepository(pgConn)
	snapshotRepo := repository.NewPeriodSnapshotRepository(pgConn)
	recommendationRepo := repository.NewPacingRecommendationRepository(pgConn)
	healthRepo := repository.NewDeliveryHealthRepository(pgConn)
	suppressionRepo := repository.NewSuppressionMarkRepository(pgConn)
	batchRunRepo := repository.NewBatchRunRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	bridgeClient := bridgeclient.NewClient(cfg)
	snapshotIntegrator := adplatform.New(cfg, bridgeClient)

	budgetResolver := budgeting.NewService(clientRepo, overrideRepo)
	calculator := pacing.NewCalculator(cfg.PacingReview.AdjustmentThresholdPct)
	suppressionTracker := suppressing.NewService(suppressionRepo, location)

	pacingReporter := pacing.NewReportService(
		clientRepo,
		accountRepo,
		recommendationRepo,
		healthRepo,
		budgetResolver,
		suppressionTracker,
	)

	// Inicializa os agendadores de sincronização e revisão
	snapshotSyncService := scheduler.NewSnapshotSyncService(
		accountRepo,
		snapshotRepo,
		snapshotIntegrator,
		cfg,
	)

	pacingReviewService := scheduler.NewPacingReviewService(
		clientRepo,
		accountRepo,
		snapshotRepo,
		recommendationRepo,
		healthRepo,
		batchRunRepo,
		budgetResolver,
		calculator,
		location,
		cfg,
	)

	// Inicia os agendadores em background
	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de snapshots")
	} else {
		logrus.Info("Agendador de sincronização de snapshots iniciado com sucesso")
	}

	if err := pacingReviewService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de revisão de pacing")
	} else {
		logrus.Info("Agendador de revisão de pacing iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		location,
		authenticator,
		budgetResolver,
		pacingReporter,
		suppressionTracker,
		snapshotSyncService,
		pacingReviewService,
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
