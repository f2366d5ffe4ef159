package budgeting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de orçamentos
var (
	// ErrBudgetNotConfigured indica que não há orçamento personalizado vigente
	// nem orçamento mensal padrão para o cliente na plataforma. Nunca deve ser
	// tratado silenciosamente como meta de gasto zero.
	ErrBudgetNotConfigured = errors.New("cliente sem orçamento configurado para a plataforma")

	// Erros de validação de orçamentos personalizados
	ErrClientNotFound   = errors.New("cliente não encontrado")
	ErrInvalidPlatform  = errors.New("plataforma inválida")
	ErrInvalidPeriod    = errors.New("período de vigência inválido")
	ErrInvalidAmount    = errors.New("valor de orçamento inválido")
	ErrOverrideNotFound = errors.New("orçamento personalizado não encontrado")
)

// BudgetError é um erro com contexto adicional de cliente/plataforma
type BudgetError struct {
	Err      error
	ClientID string
	Platform string
	Details  string
}

// Error implementa a interface error
func (e *BudgetError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError cria um novo BudgetError
func NewBudgetError(err error, clientID string, platform string, details string) *BudgetError {
	return &BudgetError{
		Err:      err,
		ClientID: clientID,
		Platform: platform,
		Details:  details,
	}
}
