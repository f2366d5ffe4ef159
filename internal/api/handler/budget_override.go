package handler

import (
	"net/http"
	"time"

	"github.com/gmendes/agency-ops-api/internal/domain"
	"github.com/gmendes/agency-ops-api/internal/usecases/budgeting"
	"github.com/gmendes/agency-ops-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type CreateBudgetOverrideRequest struct {
	Platform  string  `json:"platform"`
	AccountID *string `json:"account_id"`
	Amount    float64 `json:"amount"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
}

// ListBudgetOverrides lista os orçamentos personalizados de um cliente,
// inclusive os desativados
func ListBudgetOverrides(service budgeting.BudgetResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListBudgetOverrides")

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do cliente não informado", nil)
			return
		}

		overrides, err := service.ListOverrides(clientID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar orçamentos personalizados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(overrides)
	}
}

// CreateBudgetOverride cadastra um orçamento personalizado para o cliente
func CreateBudgetOverride(service budgeting.BudgetResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateBudgetOverride")

		clientID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clientID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do cliente não informado", nil)
			return
		}

		var req CreateBudgetOverrideRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		startDate, err := time.Parse(time.DateOnly, req.StartDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de início inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := time.Parse(time.DateOnly, req.EndDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de fim inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		override := &domain.BudgetOverride{
			ClientID:  clientID,
			Platform:  domain.Platform(req.Platform),
			AccountID: req.AccountID,
			Amount:    req.Amount,
			StartDate: startDate,
			EndDate:   endDate,
		}

		created, err := service.CreateOverride(override)
		if err != nil {
			handleBudgetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// DeactivateBudgetOverride desativa um orçamento personalizado. A resolução
// volta ao orçamento padrão do cliente a partir da próxima revisão.
func DeactivateBudgetOverride(service budgeting.BudgetResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeactivateBudgetOverride")

		overrideID := httprouter.ParamsFromContext(r.Context()).ByName("override_id")
		if overrideID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do orçamento não informado", nil)
			return
		}

		if err := service.DeactivateOverride(overrideID); err != nil {
			handleBudgetError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleBudgetError traduz erros de orçamento para a resposta apropriada
func handleBudgetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, budgeting.ErrClientNotFound):
		apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "Cliente não encontrado", nil)

	case errors.Is(err, budgeting.ErrOverrideNotFound):
		apiErrors.WriteError(w, apiErrors.ErrOverrideNotFound, "Orçamento personalizado não encontrado", nil)

	case errors.Is(err, budgeting.ErrInvalidPlatform):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Plataforma inválida. Valores aceitos: meta, google", nil)

	case errors.Is(err, budgeting.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Período de vigência inválido", nil)

	case errors.Is(err, budgeting.ErrInvalidAmount):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Valor de orçamento inválido", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar orçamento personalizado", nil)
	}
}
