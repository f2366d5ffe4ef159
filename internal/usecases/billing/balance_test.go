package billing

import (
	"errors"
	"testing"

	"github.com/gmendes/agency-ops-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func stringPtr(s string) *string {
	return &s
}

func prepaidAccount() *domain.AdAccount {
	return &domain.AdAccount{
		ID:           "ACC001",
		ClientID:     "CLI001",
		Platform:     domain.PlatformMeta,
		BillingModel: domain.BillingModelPrepaid,
	}
}

func TestExtractBalance_PostpaidHasNoBalance(t *testing.T) {
	account := &domain.AdAccount{
		ID:           "ACC002",
		BillingModel: domain.BillingModelPostpaid,
	}

	balance, err := ExtractBalance(account, floatPtr(100), nil)
	require.Error(t, err)
	assert.Nil(t, balance)
	assert.True(t, errors.Is(err, ErrPostpaidHasNoBalance))
}

func TestExtractBalance_NumericTakesPrecedence(t *testing.T) {
	balance, err := ExtractBalance(prepaidAccount(), floatPtr(320.55), stringPtr("R$ 999,99"))
	require.NoError(t, err)
	require.NotNil(t, balance)

	assert.Equal(t, 320.55, balance.Amount)
	assert.Equal(t, domain.BalanceSourceNumeric, balance.Source)
	assert.Empty(t, balance.RawDescription)
}

func TestExtractBalance_FromDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        float64
	}{
		{
			name:        "Formato pt-BR com prefixo de moeda",
			description: "R$ 1.234,56",
			want:        1234.56,
		},
		{
			name:        "Formato en-US",
			description: "1,234.56",
			want:        1234.56,
		},
		{
			name:        "Valor em texto livre",
			description: "Saldo disponível: 950,00 até o fim do mês",
			want:        950.00,
		},
		{
			name:        "Inteiro com agrupamento de milhar",
			description: "R$ 1.234",
			want:        1234,
		},
		{
			name:        "Valor simples sem separadores",
			description: "87",
			want:        87,
		},
		{
			name:        "Mais de três dígitos sem agrupamento de milhar",
			description: "1234.56",
			want:        1234.56,
		},
		{
			name:        "Inteiro longo sem separadores",
			description: "Saldo de 12345 na conta",
			want:        12345,
		},
		{
			name:        "Cinco dígitos com casa decimal pt-BR",
			description: "10000,50",
			want:        10000.50,
		},
		{
			name:        "Saldo negativo",
			description: "-45,90",
			want:        -45.90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance, err := ExtractBalance(prepaidAccount(), nil, stringPtr(tt.description))
			require.NoError(t, err)
			require.NotNil(t, balance)

			assert.Equal(t, tt.want, balance.Amount)
			assert.Equal(t, domain.BalanceSourceDescription, balance.Source)
			assert.Equal(t, tt.description, balance.RawDescription)
		})
	}
}

func TestExtractBalance_Unavailable(t *testing.T) {
	tests := []struct {
		name        string
		description *string
		wantErr     error
	}{
		{
			name:        "Sem valor numérico nem descrição",
			description: nil,
			wantErr:     ErrBalanceUnavailable,
		},
		{
			name:        "Descrição em branco",
			description: stringPtr("   "),
			wantErr:     ErrBalanceUnavailable,
		},
		{
			name:        "Descrição sem valor monetário",
			description: stringPtr("saldo indisponível no momento"),
			wantErr:     ErrBalanceUnparseable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance, err := ExtractBalance(prepaidAccount(), nil, tt.description)
			require.Error(t, err)
			assert.Nil(t, balance)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}
