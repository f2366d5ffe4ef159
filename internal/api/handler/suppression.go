package handler

import (
	"net/http"

	"github.com/gmendes/agency-ops-api/internal/domain"
	"github.com/gmendes/agency-ops-api/internal/usecases/suppressing"
	"github.com/gmendes/agency-ops-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

type SuppressWarningRequest struct {
	Platform string `json:"platform"`
}

// SuppressWarning marca o aviso de ajuste do par (cliente, plataforma) como
// suprimido para o dia corrente. A marca expira sozinha na virada do dia.
func SuppressWarning(service suppressing.SuppressionTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SuppressWarning")

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do cliente não informado", nil)
			return
		}

		var req SuppressWarningRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		platform := domain.Platform(req.Platform)
		if !platform.Valid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Plataforma inválida. Valores aceitos: meta, google", nil)
			return
		}

		if err := service.MarkSuppressed(clientID, platform); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao suprimir aviso de ajuste", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
