package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/gmendes/agency-ops-api/infrastructure/database/postgres"
	"github.com/gmendes/agency-ops-api/internal/domain"
)

const (
	pacingRecommendationsTable = "pacing_recommendations pr"

	pacingRecommendationColumns = "pr.account_id, pr.date, pr.budget_amount, pr.budget_source, " +
		"pr.period_start, pr.period_end, pr.amount_spent, pr.remaining_budget, pr.remaining_days, " +
		"pr.current_daily_budget, pr.ideal_daily_budget, pr.difference, pr.needs_adjustment, " +
		"pr.trailing_ideal_daily_budget, pr.trailing_difference, pr.trailing_needs_adjustment, pr.created_at"
)

type PacingRecommendationRepository interface {
	GetByAccountIDAndDate(accountID string, date time.Time) (*domain.PacingRecommendation, error)
	SaveOrUpdateRecommendation(rec *domain.PacingRecommendation) error
}

type pacingRecommendationRepository struct {
	conn *postgres.Connection
}

func NewPacingRecommendationRepository(conn *postgres.Connection) PacingRecommendationRepository {
	return &pacingRecommendationRepository{
		conn: conn,
	}
}

func (r *pacingRecommendationRepository) GetByAccountIDAndDate(accountID string, date time.Time) (*domain.PacingRecommendation, error) {
	query, args, err := squirrel.
		Select(pacingRecommendationColumns).
		From(pacingRecommendationsTable).
		Where(squirrel.Eq{"pr.account_id": accountID, "pr.date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	rec := &domain.PacingRecommendation{}
	err = row.Scan(
		&rec.AccountID,
		&rec.Date,
		&rec.BudgetAmount,
		&rec.BudgetSource,
		&rec.PeriodStart,
		&rec.PeriodEnd,
		&rec.AmountSpent,
		&rec.RemainingBudget,
		&rec.RemainingDays,
		&rec.CurrentDailyBudget,
		&rec.IdealDailyBudget,
		&rec.Difference,
		&rec.NeedsAdjustment,
		&rec.TrailingIdealDailyBudget,
		&rec.TrailingDifference,
		&rec.TrailingNeedsAdjustment,
		&rec.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear recomendação: %w", err)
	}

	return rec, nil
}

// SaveOrUpdateRecommendation substitui a recomendação da conta na data.
// A execução seguinte sobrescreve, nunca mescla.
func (r *pacingRecommendationRepository) SaveOrUpdateRecommendation(rec *domain.PacingRecommendation) error {
	query, args, err := squirrel.
		Insert("pacing_recommendations").
		Columns(
			"account_id",
			"date",
			"budget_amount",
			"budget_source",
			"period_start",
			"period_end",
			"amount_spent",
			"remaining_budget",
			"remaining_days",
			"current_daily_budget",
			"ideal_daily_budget",
			"difference",
			"needs_adjustment",
			"trailing_ideal_daily_budget",
			"trailing_difference",
			"trailing_needs_adjustment",
		).
		Values(
			rec.AccountID,
			rec.Date.Format("2006-01-02"),
			rec.BudgetAmount,
			rec.BudgetSource,
			rec.PeriodStart.Format("2006-01-02"),
			rec.PeriodEnd.Format("2006-01-02"),
			rec.AmountSpent,
			rec.RemainingBudget,
			rec.RemainingDays,
			rec.CurrentDailyBudget,
			rec.IdealDailyBudget,
			rec.Difference,
			rec.NeedsAdjustment,
			rec.TrailingIdealDailyBudget,
			rec.TrailingDifference,
			rec.TrailingNeedsAdjustment,
		).
		Suffix(`
			ON CONFLICT (account_id, date) DO UPDATE SET
				budget_amount = EXCLUDED.budget_amount,
				budget_source = EXCLUDED.budget_source,
				period_start = EXCLUDED.period_start,
				period_end = EXCLUDED.period_end,
				amount_spent = EXCLUDED.amount_spent,
				remaining_budget = EXCLUDED.remaining_budget,
				remaining_days = EXCLUDED.remaining_days,
				current_daily_budget = EXCLUDED.current_daily_budget,
				ideal_daily_budget = EXCLUDED.ideal_daily_budget,
				difference = EXCLUDED.difference,
				needs_adjustment = EXCLUDED.needs_adjustment,
				trailing_ideal_daily_budget = EXCLUDED.trailing_ideal_daily_budget,
				trailing_difference = EXCLUDED.trailing_difference,
				trailing_needs_adjustment = EXCLUDED.trailing_needs_adjustment,
				created_at = CURRENT_TIMESTAMP
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}
