package pacing

import (
	"math"
	"time"

	"github.com/gmendes/agency-ops-api/internal/domain"
	"github.com/gmendes/agency-ops-api/pkg/utils"
)

// DefaultAdjustmentThresholdPct é a regra de ajuste aplicada uniformemente:
// a recomendação pede ajuste quando a diferença excede 10% do orçamento diário
// configurado. Com orçamento diário zerado, qualquer ideal positivo pede ajuste.
const DefaultAdjustmentThresholdPct = 0.10

// Calculator produz recomendações de pacing por aritmética linear pura:
// orçamento restante dividido pelos dias restantes do período vigente.
// Sem efeitos colaterais; pode ser chamado de qualquer número de goroutines.
type Calculator struct {
	thresholdPct float64
}

func NewCalculator(thresholdPct float64) *Calculator {
	if thresholdPct <= 0 {
		thresholdPct = DefaultAdjustmentThresholdPct
	}

	return &Calculator{thresholdPct: thresholdPct}
}

// ComputePacing calcula a recomendação da conta para a data. O período vem do
// orçamento efetivo (mês de calendário ou vigência do personalizado), então a
// mesma aritmética serve aos dois casos. trailingAverage, quando presente e
// positivo, liga o canal secundário baseado na média móvel de gasto.
func (c *Calculator) ComputePacing(
	effectiveBudget *domain.EffectiveBudget,
	amountSpent float64,
	currentDailyBudget float64,
	asOfDate time.Time,
	trailingAverage *float64,
) *domain.PacingRecommendation {
	remainingBudget := math.Max(0, effectiveBudget.Amount-amountSpent)
	remainingDays := remainingDaysInPeriod(asOfDate, effectiveBudget.PeriodEnd)

	var idealDailyBudget float64
	if remainingDays > 0 {
		idealDailyBudget = utils.RoundWithTwoDecimalPlace(remainingBudget / float64(remainingDays))
	}

	difference := utils.RoundWithTwoDecimalPlace(idealDailyBudget - currentDailyBudget)

	rec := &domain.PacingRecommendation{
		Date:               utils.TruncateToDate(asOfDate),
		BudgetAmount:       effectiveBudget.Amount,
		BudgetSource:       effectiveBudget.Source,
		PeriodStart:        effectiveBudget.PeriodStart,
		PeriodEnd:          effectiveBudget.PeriodEnd,
		AmountSpent:        amountSpent,
		RemainingBudget:    remainingBudget,
		RemainingDays:      remainingDays,
		CurrentDailyBudget: currentDailyBudget,
		IdealDailyBudget:   idealDailyBudget,
		Difference:         difference,
		NeedsAdjustment:    c.needsAdjustment(difference, currentDailyBudget, idealDailyBudget),
	}

	if trailingAverage != nil && *trailingAverage > 0 {
		c.computeTrailingChannel(rec, remainingBudget, remainingDays, currentDailyBudget, *trailingAverage)
	}

	return rec
}

// computeTrailingChannel calcula o canal secundário: estima em quantos dias o
// orçamento restante acabaria no ritmo médio dos últimos dias e escala o ritmo
// para cobrir exatamente os dias restantes do período
func (c *Calculator) computeTrailingChannel(
	rec *domain.PacingRecommendation,
	remainingBudget float64,
	remainingDays int,
	currentDailyBudget float64,
	trailingAverage float64,
) {
	var trailingIdeal float64

	if remainingBudget > 0 && remainingDays > 0 {
		daysWouldLast := remainingBudget / trailingAverage

		if daysWouldLast < float64(remainingDays) {
			trailingIdeal = trailingAverage * float64(remainingDays) / daysWouldLast
		} else {
			trailingIdeal = trailingAverage
		}
	}

	trailingIdeal = utils.RoundWithTwoDecimalPlace(trailingIdeal)
	trailingDifference := utils.RoundWithTwoDecimalPlace(trailingIdeal - currentDailyBudget)
	trailingNeeds := c.needsAdjustment(trailingDifference, currentDailyBudget, trailingIdeal)

	rec.TrailingIdealDailyBudget = &trailingIdeal
	rec.TrailingDifference = &trailingDifference
	rec.TrailingNeedsAdjustment = &trailingNeeds
}

func (c *Calculator) needsAdjustment(difference, currentDailyBudget, idealDailyBudget float64) bool {
	if currentDailyBudget == 0 {
		return idealDailyBudget > 0
	}

	return math.Abs(difference) > c.thresholdPct*currentDailyBudget
}

// remainingDaysInPeriod conta os dias restantes do período incluindo o dia
// corrente. Período já encerrado resulta em zero (e ideal diário zero).
func remainingDaysInPeriod(asOfDate, periodEnd time.Time) int {
	days := utils.DaysBetween(asOfDate, periodEnd) + 1
	if days < 0 {
		return 0
	}

	return days
}
