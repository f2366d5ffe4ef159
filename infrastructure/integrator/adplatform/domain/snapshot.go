package domain

// AccountSnapshot é o formato de resposta do metrics bridge para uma conta e
// data: números de gasto e campanha já normalizados entre Meta e Google
type AccountSnapshot struct {
	AccountID          string         `json:"account_id"`
	Platform           string         `json:"platform"`
	Date               string         `json:"date"`
	PeriodSpend        float64        `json:"period_spend"`
	DaySpend           float64        `json:"day_spend"`
	DailyBudget        float64        `json:"daily_budget"`
	Campaigns          []CampaignStat `json:"campaigns"`
	Balance            *float64       `json:"balance,omitempty"`
	BalanceDescription *string        `json:"balance_description,omitempty"`
}

type CampaignStat struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Status     string  `json:"status"`
	Delivering bool    `json:"delivering"`
	Spend      float64 `json:"spend"`
}

type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
