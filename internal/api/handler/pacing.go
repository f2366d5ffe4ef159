package handler

import (
	"net/http"
	"time"

	"github.com/gmendes/agency-ops-api/internal/usecases/pacing"
	"github.com/gmendes/agency-ops-api/pkg/apiErrors"
	"github.com/gmendes/agency-ops-api/pkg/utils"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GetAccountPacing retorna a visão de pacing de uma conta para uma data:
// recomendação, saúde de entrega e marca de supressão
func GetAccountPacing(service pacing.Reporter, location *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAccountPacing")

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da conta não informado", nil)
			return
		}

		date, err := queryDate(r, location)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		entry, err := service.AccountPacing(accountID, date)
		if err != nil {
			if errors.Is(err, pacing.ErrAccountNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", map[string]any{
					"account_id": accountID,
				})
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar pacing da conta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entry)
	}
}

// GetPacingReport retorna o relatório de pacing de todas as contas ativas
// para uma data
func GetPacingReport(service pacing.Reporter, location *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetPacingReport")

		date, err := queryDate(r, location)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		entries, err := service.Report(date)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar relatório de pacing", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"date":    date.Format(time.DateOnly),
			"entries": entries,
		})
	}
}

// queryDate lê o parâmetro opcional "date"; ausente, assume hoje na timezone
// da agência. Uma data explícita também é interpretada na timezone da
// agência: "2025-06-15" é o dia 15 no calendário da agência, não em UTC
func queryDate(r *http.Request, location *time.Location) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return utils.TruncateToDate(time.Now().In(location)), nil
	}

	parsed, err := time.ParseInLocation(time.DateOnly, raw, location)
	if err != nil {
		return time.Time{}, err
	}

	return utils.TruncateToDate(parsed), nil
}
