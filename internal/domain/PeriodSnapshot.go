package domain

import "time"

// CampaignDelivery é o detalhe de entrega de uma campanha no dia
type CampaignDelivery struct {
	CampaignID string  `json:"campaign_id"`
	Name       string  `json:"name"`
	Status     string  `json:"status"`
	Delivering bool    `json:"delivering"`
	Spend      float64 `json:"spend"`
}

// PeriodSnapshot é o estado de gastos mais recente conhecido de uma conta:
// gasto acumulado no período corrente e orçamento diário configurado.
// Um por conta por dia, escrito pela sincronização de snapshots e apenas
// lido pelo motor de pacing.
type PeriodSnapshot struct {
	AccountID             string             `json:"account_id"`
	Date                  time.Time          `json:"date"`
	AmountSpent           float64            `json:"amount_spent"`
	DailySpend            float64            `json:"daily_spend"`
	CurrentDailyBudget    float64            `json:"current_daily_budget"`
	ActiveCampaignCount   *int               `json:"active_campaign_count"`
	UnservedCampaignCount *int               `json:"unserved_campaign_count"`
	TrailingAverageSpend  *float64           `json:"trailing_average_spend"`
	Campaigns             []CampaignDelivery `json:"campaigns"`
	FetchedAt             time.Time          `json:"fetched_at"`
}

// HasCampaignData informa se o snapshot traz os contadores de campanhas
// necessários para classificar a saúde de entrega
func (s *PeriodSnapshot) HasCampaignData() bool {
	return s != nil && s.ActiveCampaignCount != nil && s.UnservedCampaignCount != nil
}
