package handler

import (
	"net/http"

	"github.com/gmendes/agency-ops-api/internal/domain"
	"github.com/gmendes/agency-ops-api/internal/scheduler"
	"github.com/gmendes/agency-ops-api/pkg/apiErrors"
	"github.com/gmendes/agency-ops-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSnapshots    = "snapshots"
	CronJobTypePacingReview = "pacing-review"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SnapshotSyncService *scheduler.SnapshotSyncService
	PacingReviewService *scheduler.PacingReviewService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSnapshots:
			if services.SnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de snapshots não disponível", nil)
				return
			}
			services.SnapshotSyncService.TriggerManualSync()

		case CronJobTypePacingReview:
			if services.PacingReviewService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de revisão de pacing não disponível", nil)
				return
			}
			if _, err := services.PacingReviewService.TriggerManualReview(); err != nil {
				if errors.Is(err, scheduler.ErrReviewAlreadyRunning) {
					apiErrors.WriteError(w, apiErrors.ErrReviewAlreadyRunning, "Revisão de pacing já em execução", nil)
					return
				}
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar revisão de pacing", nil)
				return
			}

		case CronJobTypeAll:
			if services.SnapshotSyncService != nil {
				services.SnapshotSyncService.TriggerManualSync()
			}
			if services.PacingReviewService != nil {
				if _, err := services.PacingReviewService.TriggerManualReview(); err != nil {
					logrus.WithError(err).Warn("Revisão de pacing não iniciada pelo cron manual")
				}
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshots, pacing-review, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"snapshots":     services.SnapshotSyncService.GetStatus(),
			"pacing-review": services.PacingReviewService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
