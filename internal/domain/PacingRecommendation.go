package domain

import "time"

// PacingRecommendation é a saída do motor de pacing para uma conta em um dia.
// Recriada a cada execução; a execução seguinte substitui, nunca mescla.
type PacingRecommendation struct {
	AccountID          string       `json:"account_id"`
	Date               time.Time    `json:"date"`
	BudgetAmount       float64      `json:"budget_amount"`
	BudgetSource       BudgetSource `json:"budget_source"`
	PeriodStart        time.Time    `json:"period_start"`
	PeriodEnd          time.Time    `json:"period_end"`
	AmountSpent        float64      `json:"amount_spent"`
	RemainingBudget    float64      `json:"remaining_budget"`
	RemainingDays      int          `json:"remaining_days"`
	CurrentDailyBudget float64      `json:"current_daily_budget"`
	IdealDailyBudget   float64      `json:"ideal_daily_budget"`
	Difference         float64      `json:"difference"`
	NeedsAdjustment    bool         `json:"needs_adjustment"`

	// Canal secundário baseado na média móvel de 5 dias de gasto, usado para
	// contas Google, onde não há um único knob de orçamento diário confiável
	TrailingIdealDailyBudget *float64 `json:"trailing_ideal_daily_budget,omitempty"`
	TrailingDifference       *float64 `json:"trailing_difference,omitempty"`
	TrailingNeedsAdjustment  *bool    `json:"trailing_needs_adjustment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// PacingReportEntry agrega a visão diária de uma conta para o dashboard
type PacingReportEntry struct {
	Account        AdAccount             `json:"account"`
	Recommendation *PacingRecommendation `json:"recommendation"`
	Health         *DeliveryHealth       `json:"health"`
	Suppressed     bool                  `json:"suppressed"`
	Unavailable    bool                  `json:"unavailable"`
	UnavailableFor string                `json:"unavailable_reason,omitempty"`
}
