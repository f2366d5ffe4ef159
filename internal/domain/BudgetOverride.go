package domain

import (
	"time"
)

// OverrideScope distingue orçamentos personalizados de conta e de cliente,
// resolvidos explicitamente em vez de por null-check espalhado
type OverrideScope string

const (
	// OverrideScopeClient aplica a todas as contas do cliente na plataforma
	OverrideScopeClient OverrideScope = "client"
	// OverrideScopeAccount aplica apenas à conta indicada
	OverrideScopeAccount OverrideScope = "account"
)

// BudgetOverride é um orçamento personalizado com vigência por período que
// substitui o orçamento mensal padrão do cliente. Nunca é alterado pelo motor
// de pacing; apenas lido.
type BudgetOverride struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Platform  Platform  `json:"platform"`
	AccountID *string   `json:"account_id"` // nil = escopo de cliente
	Amount    float64   `json:"amount"`
	StartDate time.Time `json:"start_date"` // inclusivo
	EndDate   time.Time `json:"end_date"`   // inclusivo
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func (o *BudgetOverride) Scope() OverrideScope {
	if o.AccountID != nil && *o.AccountID != "" {
		return OverrideScopeAccount
	}
	return OverrideScopeClient
}

// Covers informa se a data está dentro da vigência [StartDate, EndDate]
func (o *BudgetOverride) Covers(date time.Time) bool {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	ys, ms, ds := o.StartDate.Date()
	start := time.Date(ys, ms, ds, 0, 0, 0, 0, time.UTC)

	ye, me, de := o.EndDate.Date()
	end := time.Date(ye, me, de, 0, 0, 0, 0, time.UTC)

	return !day.Before(start) && !day.After(end)
}

// BudgetSource marca a origem do orçamento efetivo
type BudgetSource string

const (
	BudgetSourceDefault  BudgetSource = "default"
	BudgetSourceOverride BudgetSource = "override"
)

// EffectiveBudget é o resultado da resolução de orçamento para uma conta e
// data: valor e período vigentes, com a origem para exibição nos cards
type EffectiveBudget struct {
	Amount      float64      `json:"amount"`
	PeriodStart time.Time    `json:"period_start"`
	PeriodEnd   time.Time    `json:"period_end"`
	Source      BudgetSource `json:"source"`
	OverrideID  *string      `json:"override_id,omitempty"`
}
