package domain

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

// BillingModel indica como a conta é cobrada na plataforma de anúncios.
// Relevante apenas para a extração de saldo de contas pré-pagas.
type BillingModel string

const (
	BillingModelPrepaid  BillingModel = "prepaid"
	BillingModelPostpaid BillingModel = "postpaid"
)

// AdAccount é uma conta de anúncios de um cliente em uma plataforma.
// Um cliente pode ter mais de uma conta por plataforma (principal + secundárias).
type AdAccount struct {
	ID           string          `json:"id"`
	ClientID     string          `json:"client_id"`
	Platform     Platform        `json:"platform"`
	Name         string          `json:"name"`
	Nickname     *string         `json:"nickname"`
	ExternalID   *string         `json:"external_id"`
	BillingModel BillingModel    `json:"billing_model"`
	Primary      bool            `json:"primary"`
	Status       AdAccountStatus `json:"status"`
}
