package pacing

import (
	"testing"
	"time"

	"github.com/gmendes/agency-ops-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func monthBudget(amount float64) *domain.EffectiveBudget {
	return &domain.EffectiveBudget{
		Amount:      amount,
		PeriodStart: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Source:      domain.BudgetSourceDefault,
	}
}

func TestCalculator_ComputePacing(t *testing.T) {
	calculator := NewCalculator(0.10)

	tests := []struct {
		name               string
		budget             *domain.EffectiveBudget
		amountSpent        float64
		currentDailyBudget float64
		asOfDate           time.Time
		wantRemaining      float64
		wantDays           int
		wantIdeal          float64
		wantDifference     float64
		wantNeeds          bool
	}{
		{
			name:               "Meio do mês com gasto abaixo do ritmo - deve pedir aumento",
			budget:             monthBudget(3000),
			amountSpent:        1200,
			currentDailyBudget: 80,
			asOfDate:           time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			wantRemaining:      1800,
			wantDays:           16,
			wantIdeal:          112.50,
			wantDifference:     32.50,
			wantNeeds:          true,
		},
		{
			name:               "Orçamento estourado - restante zera e ideal cai a zero",
			budget:             monthBudget(3000),
			amountSpent:        3450,
			currentDailyBudget: 100,
			asOfDate:           time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
			wantRemaining:      0,
			wantDays:           11,
			wantIdeal:          0,
			wantDifference:     -100,
			wantNeeds:          true,
		},
		{
			name:               "Diferença exatamente no limiar - não pede ajuste",
			budget:             monthBudget(3000),
			amountSpent:        1240,
			currentDailyBudget: 100,
			asOfDate:           time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			wantRemaining:      1760,
			wantDays:           16,
			wantIdeal:          110,
			wantDifference:     10,
			wantNeeds:          false,
		},
		{
			name:               "Orçamento diário zerado com ideal positivo - sempre pede ajuste",
			budget:             monthBudget(3000),
			amountSpent:        0,
			currentDailyBudget: 0,
			asOfDate:           time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			wantRemaining:      3000,
			wantDays:           30,
			wantIdeal:          100,
			wantDifference:     100,
			wantNeeds:          true,
		},
		{
			name:               "Último dia do período - todo o restante em um dia",
			budget:             monthBudget(3000),
			amountSpent:        2900,
			currentDailyBudget: 100,
			asOfDate:           time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
			wantRemaining:      100,
			wantDays:           1,
			wantIdeal:          100,
			wantDifference:     0,
			wantNeeds:          false,
		},
		{
			name:               "Período já encerrado - zero dias e ideal zero",
			budget:             monthBudget(3000),
			amountSpent:        1500,
			currentDailyBudget: 100,
			asOfDate:           time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
			wantRemaining:      1500,
			wantDays:           0,
			wantIdeal:          0,
			wantDifference:     -100,
			wantNeeds:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := calculator.ComputePacing(tt.budget, tt.amountSpent, tt.currentDailyBudget, tt.asOfDate, nil)

			require.NotNil(t, rec)
			assert.Equal(t, tt.wantRemaining, rec.RemainingBudget)
			assert.Equal(t, tt.wantDays, rec.RemainingDays)
			assert.Equal(t, tt.wantIdeal, rec.IdealDailyBudget)
			assert.Equal(t, tt.wantDifference, rec.Difference)
			assert.Equal(t, tt.wantNeeds, rec.NeedsAdjustment)

			// Sem média móvel o canal secundário fica desligado
			assert.Nil(t, rec.TrailingIdealDailyBudget)
			assert.Nil(t, rec.TrailingDifference)
			assert.Nil(t, rec.TrailingNeedsAdjustment)
		})
	}
}

func TestCalculator_ComputePacing_PeriodInUTCAndReviewDateInAgencyTimezone(t *testing.T) {
	calculator := NewCalculator(0.10)

	location, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// Datas de período vêm do banco em UTC; a data da revisão chega no fuso da
	// agência (UTC-3). A contagem de dias usa componentes de calendário, então
	// o deslocamento de 3 horas não pode engolir um dia
	asOfDate := time.Date(2025, 6, 15, 0, 0, 0, 0, location)

	rec := calculator.ComputePacing(monthBudget(3000), 1200, 80, asOfDate, nil)

	require.NotNil(t, rec)
	assert.Equal(t, 16, rec.RemainingDays)
	assert.Equal(t, 112.50, rec.IdealDailyBudget)
	assert.Equal(t, 32.50, rec.Difference)
}

func TestCalculator_ComputePacing_TrailingChannel(t *testing.T) {
	calculator := NewCalculator(0.10)

	tests := []struct {
		name               string
		amountSpent        float64
		currentDailyBudget float64
		trailingAverage    *float64
		wantTrailingIdeal  float64
		wantTrailingDiff   float64
		wantTrailingNeeds  bool
	}{
		{
			name:               "Ritmo médio esgotaria o orçamento antes do fim - escala para cobrir o período",
			amountSpent:        2000,          // restante 1000 em 10 dias
			currentDailyBudget: 100,
			trailingAverage:    floatPtr(200), // duraria 5 dias
			wantTrailingIdeal:  400,           // 200 * 10 / 5
			wantTrailingDiff:   300,
			wantTrailingNeeds:  true,
		},
		{
			name:               "Ritmo médio dura além do período - mantém a média",
			amountSpent:        2000,
			currentDailyBudget: 50,
			trailingAverage:    floatPtr(50), // duraria 20 dias
			wantTrailingIdeal:  50,
			wantTrailingDiff:   0,
			wantTrailingNeeds:  false,
		},
		{
			name:               "Orçamento esgotado - canal secundário recomenda zero",
			amountSpent:        3200,
			currentDailyBudget: 100,
			trailingAverage:    floatPtr(150),
			wantTrailingIdeal:  0,
			wantTrailingDiff:   -100,
			wantTrailingNeeds:  true,
		},
	}

	// 21 a 30 de junho: 10 dias restantes incluindo o dia corrente
	asOfDate := time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := calculator.ComputePacing(monthBudget(3000), tt.amountSpent, tt.currentDailyBudget, asOfDate, tt.trailingAverage)

			require.NotNil(t, rec.TrailingIdealDailyBudget)
			require.NotNil(t, rec.TrailingDifference)
			require.NotNil(t, rec.TrailingNeedsAdjustment)

			assert.Equal(t, tt.wantTrailingIdeal, *rec.TrailingIdealDailyBudget)
			assert.Equal(t, tt.wantTrailingDiff, *rec.TrailingDifference)
			assert.Equal(t, tt.wantTrailingNeeds, *rec.TrailingNeedsAdjustment)
		})
	}
}

func TestCalculator_ComputePacing_TrailingAverageZeroDisablesChannel(t *testing.T) {
	calculator := NewCalculator(0.10)
	asOfDate := time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC)

	rec := calculator.ComputePacing(monthBudget(3000), 1000, 100, asOfDate, floatPtr(0))

	assert.Nil(t, rec.TrailingIdealDailyBudget)
	assert.Nil(t, rec.TrailingDifference)
	assert.Nil(t, rec.TrailingNeedsAdjustment)
}

func TestNewCalculator_InvalidThresholdFallsBackToDefault(t *testing.T) {
	calculator := NewCalculator(-1)

	assert.Equal(t, DefaultAdjustmentThresholdPct, calculator.thresholdPct)
}
