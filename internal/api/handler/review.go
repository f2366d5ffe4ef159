package handler

import (
	"net/http"

	"github.com/gmendes/agency-ops-api/internal/domain"
	"github.com/gmendes/agency-ops-api/internal/scheduler"
	"github.com/gmendes/agency-ops-api/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ReviewRunner é o subconjunto do serviço de revisão usado pelos handlers.
// O disparo não recebe o contexto do request: a execução corre em background
// sob o contexto da aplicação e sobrevive ao fim da resposta.
type ReviewRunner interface {
	TriggerManualReview() (*domain.BatchRunState, error)
	GetProgress() (*domain.BatchRunState, error)
}

// RunPacingReview dispara manualmente a revisão diária de pacing. Uma revisão
// já em andamento é rejeitada com conflito; o chamador acompanha pelo
// endpoint de progresso.
func RunPacingReview(service ReviewRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunPacingReview")

		state, err := service.TriggerManualReview()
		if err != nil {
			if errors.Is(err, scheduler.ErrReviewAlreadyRunning) {
				apiErrors.WriteError(w, apiErrors.ErrReviewAlreadyRunning, "Revisão de pacing já em execução", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar revisão de pacing", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(state)
	}
}

// GetPacingReviewProgress retorna o estado persistido da execução mais recente
func GetPacingReviewProgress(service ReviewRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetPacingReviewProgress")

		state, err := service.GetProgress()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar progresso da revisão", nil)
			return
		}

		if state == nil {
			apiErrors.WriteError(w, apiErrors.ErrRecommendationAbsent, "Nenhuma revisão de pacing executada até o momento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(state)
	}
}
