package billing

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/gmendes/agency-ops-api/internal/domain"
)

// Erros de extração de saldo
var (
	ErrBalanceUnavailable   = errors.New("saldo não disponível para a conta")
	ErrBalanceUnparseable   = errors.New("descrição de saldo não reconhecida")
	ErrPostpaidHasNoBalance = errors.New("conta pós-paga não possui saldo")
)

// Captura o primeiro valor monetário de uma descrição em texto livre, com ou
// sem prefixo de moeda e com ou sem agrupamento de milhar: "R$ 1.234,56",
// "Saldo disponível: 950,00", "1234.56"
var amountPattern = regexp.MustCompile(`-?\d+(?:[.,]\d{3})*(?:[.,]\d{1,2})?`)

// ExtractBalance normaliza o saldo de uma conta pré-paga a partir do valor
// numérico quando informado, ou da descrição em texto livre da plataforma.
// Contas pós-pagas não têm saldo e retornam erro explícito.
func ExtractBalance(account *domain.AdAccount, numeric *float64, description *string) (*domain.AccountBalance, error) {
	if account.BillingModel == domain.BillingModelPostpaid {
		return nil, ErrPostpaidHasNoBalance
	}

	if numeric != nil {
		return &domain.AccountBalance{
			AccountID: account.ID,
			Amount:    *numeric,
			Source:    domain.BalanceSourceNumeric,
		}, nil
	}

	if description == nil || strings.TrimSpace(*description) == "" {
		return nil, ErrBalanceUnavailable
	}

	amount, err := parseAmount(*description)
	if err != nil {
		return nil, err
	}

	return &domain.AccountBalance{
		AccountID:      account.ID,
		Amount:         amount,
		Source:         domain.BalanceSourceDescription,
		RawDescription: *description,
	}, nil
}

// parseAmount converte o primeiro valor monetário encontrado na descrição,
// aceitando os formatos pt-BR ("1.234,56") e en-US ("1,234.56")
func parseAmount(description string) (float64, error) {
	match := amountPattern.FindString(description)
	if match == "" {
		return 0, ErrBalanceUnparseable
	}

	normalized := normalizeDecimal(match)

	amount, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, ErrBalanceUnparseable
	}

	return amount, nil
}

func normalizeDecimal(raw string) string {
	lastComma := strings.LastIndex(raw, ",")
	lastDot := strings.LastIndex(raw, ".")

	lastSep := lastComma
	if lastDot > lastSep {
		lastSep = lastDot
	}

	if lastSep == -1 {
		return raw
	}

	// Três dígitos após o último separador indicam agrupamento de milhar
	// ("R$ 1.234" e "1,234" valem 1234), não casa decimal
	if len(raw)-lastSep-1 == 3 {
		raw = strings.ReplaceAll(raw, ".", "")
		return strings.ReplaceAll(raw, ",", "")
	}

	if lastComma > lastDot {
		// Formato pt-BR: ponto agrupa milhares, vírgula separa decimais
		raw = strings.ReplaceAll(raw, ".", "")
		return strings.Replace(raw, ",", ".", 1)
	}

	// Formato en-US: vírgula agrupa milhares
	return strings.ReplaceAll(raw, ",", "")
}
