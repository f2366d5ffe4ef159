package domain

// BalanceSource indica de onde o saldo normalizado foi obtido
type BalanceSource string

const (
	BalanceSourceNumeric     BalanceSource = "numeric"
	BalanceSourceDescription BalanceSource = "description"
)

// AccountBalance é o saldo normalizado de uma conta pré-paga
type AccountBalance struct {
	AccountID      string        `json:"account_id"`
	Amount         float64       `json:"amount"`
	Source         BalanceSource `json:"source"`
	RawDescription string        `json:"raw_description,omitempty"`
}
