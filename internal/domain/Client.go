package domain

type Platform string

const (
	PlatformMeta   Platform = "meta"
	PlatformGoogle Platform = "google"
)

func (p Platform) Valid() bool {
	return p == PlatformMeta || p == PlatformGoogle
}

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "ACTIVE"
	ClientStatusInactive ClientStatus = "INACTIVE"
)

// Client é um cliente da agência. Os orçamentos mensais padrão por plataforma
// são usados quando não existe orçamento personalizado vigente.
type Client struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Status              ClientStatus `json:"status"`
	MetaMonthlyBudget   *float64     `json:"meta_monthly_budget"`
	GoogleMonthlyBudget *float64     `json:"google_monthly_budget"`
}

// DefaultMonthlyBudget retorna o orçamento mensal padrão do cliente para a
// plataforma, ou nil quando não configurado
func (c *Client) DefaultMonthlyBudget(platform Platform) *float64 {
	switch platform {
	case PlatformMeta:
		return c.MetaMonthlyBudget
	case PlatformGoogle:
		return c.GoogleMonthlyBudget
	}
	return nil
}
