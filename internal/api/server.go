package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gmendes/agency-ops-api/internal/api/handler"
	"github.com/gmendes/agency-ops-api/internal/api/handler/router"
	"github.com/gmendes/agency-ops-api/internal/config"
	"github.com/gmendes/agency-ops-api/internal/scheduler"
	"github.com/gmendes/agency-ops-api/internal/usecases/authenticating"
	"github.com/gmendes/agency-ops-api/internal/usecases/budgeting"
	"github.com/gmendes/agency-ops-api/internal/usecases/pacing"
	"github.com/gmendes/agency-ops-api/internal/usecases/suppressing"
	"github.com/gmendes/agency-ops-api/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	location *time.Location,
	authenticator authenticating.Authenticator,
	budgetResolver budgeting.BudgetResolver,
	pacingReporter pacing.Reporter,
	suppressionTracker suppressing.SuppressionTracker,
	snapshotSyncService *scheduler.SnapshotSyncService,
	pacingReviewService *scheduler.PacingReviewService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		SnapshotSyncService: snapshotSyncService,
		PacingReviewService: pacingReviewService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Pacing(pacingReporter, location)...),
		router.WithRoutes(handler.Review(pacingReviewService)...),
		router.WithRoutes(handler.BudgetOverrides(budgetResolver)...),
		router.WithRoutes(handler.Suppression(suppressionTracker)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handlerChain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handlerChain,
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
