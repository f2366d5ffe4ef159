package domain

import "time"

// DeliveryStatus é a classificação de entrega das campanhas de uma conta no dia
type DeliveryStatus string

const (
	DeliveryStatusNoData         DeliveryStatus = "no_data"
	DeliveryStatusNoCampaigns    DeliveryStatus = "no_campaigns"
	DeliveryStatusAllRunning     DeliveryStatus = "all_running"
	DeliveryStatusNoneRunning    DeliveryStatus = "none_running"
	DeliveryStatusPartialRunning DeliveryStatus = "partial_running"
)

// Severity define a ordem de exibição dos estados: quanto maior, mais grave
func (s DeliveryStatus) Severity() int {
	switch s {
	case DeliveryStatusNoneRunning:
		return 5
	case DeliveryStatusPartialRunning:
		return 4
	case DeliveryStatusNoCampaigns:
		return 3
	case DeliveryStatusNoData:
		return 2
	case DeliveryStatusAllRunning:
		return 1
	}
	return 0
}

// DeliveryHealth é a classificação diária de saúde de entrega de uma conta,
// recriada a cada dia a partir dos dados frescos de campanha
type DeliveryHealth struct {
	AccountID             string             `json:"account_id"`
	Date                  time.Time          `json:"date"`
	Status                DeliveryStatus     `json:"status"`
	ActiveCampaignCount   int                `json:"active_campaign_count"`
	UnservedCampaignCount int                `json:"unserved_campaign_count"`
	Campaigns             []CampaignDelivery `json:"campaigns"`
	CreatedAt             time.Time          `json:"created_at"`
}
