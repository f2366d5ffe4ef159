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
	budgetOverridesTable = "budget_overrides bo"

	budgetOverrideColumns = "bo.id, bo.client_id, bo.platform, bo.account_id, bo.amount, " +
		"bo.start_date, bo.end_date, bo.active, bo.created_at"
)

type BudgetOverrideRepository interface {
	ListActiveByClientAndPlatform(clientID string, platform domain.Platform, date time.Time) ([]*domain.BudgetOverride, error)
	ListByClientID(clientID string) ([]*domain.BudgetOverride, error)
	Create(override *domain.BudgetOverride) error
	Deactivate(overrideID string) (bool, error)
}

type budgetOverrideRepository struct {
	conn *postgres.Connection
}

func NewBudgetOverrideRepository(conn *postgres.Connection) BudgetOverrideRepository {
	return &budgetOverrideRepository{
		conn: conn,
	}
}

// ListActiveByClientAndPlatform retorna os orçamentos personalizados ativos do
// cliente na plataforma cuja vigência [start_date, end_date] contém a data
func (r *budgetOverrideRepository) ListActiveByClientAndPlatform(
	clientID string,
	platform domain.Platform,
	date time.Time,
) ([]*domain.BudgetOverride, error) {
	day := date.Format("2006-01-02")

	query, args, err := squirrel.
		Select(budgetOverrideColumns).
		From(budgetOverridesTable).
		Where(squirrel.Eq{"bo.client_id": clientID, "bo.platform": platform, "bo.active": true}).
		Where(squirrel.LtOrEq{"bo.start_date": day}).
		Where(squirrel.GtOrEq{"bo.end_date": day}).
		OrderBy("bo.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryOverrides(query, args)
}

func (r *budgetOverrideRepository) ListByClientID(clientID string) ([]*domain.BudgetOverride, error) {
	query, args, err := squirrel.
		Select(budgetOverrideColumns).
		From(budgetOverridesTable).
		Where(squirrel.Eq{"bo.client_id": clientID}).
		OrderBy("bo.start_date DESC", "bo.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryOverrides(query, args)
}

func (r *budgetOverrideRepository) Create(override *domain.BudgetOverride) error {
	query, args, err := squirrel.
		Insert("budget_overrides").
		Columns("id", "client_id", "platform", "account_id", "amount", "start_date", "end_date", "active").
		Values(
			override.ID,
			override.ClientID,
			override.Platform,
			override.AccountID,
			override.Amount,
			override.StartDate.Format("2006-01-02"),
			override.EndDate.Format("2006-01-02"),
			override.Active,
		).
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

func (r *budgetOverrideRepository) Deactivate(overrideID string) (bool, error) {
	query, args, err := squirrel.
		Update("budget_overrides").
		Set("active", false).
		Where(squirrel.Eq{"id": overrideID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar query de atualização: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}

	return affected > 0, nil
}

func (r *budgetOverrideRepository) queryOverrides(query string, args []interface{}) ([]*domain.BudgetOverride, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	overrides := make([]*domain.BudgetOverride, 0)
	for rows.Next() {
		override, err := scanBudgetOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear orçamento personalizado: %w", err)
		}

		overrides = append(overrides, override)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return overrides, nil
}

func scanBudgetOverride(rows *sql.Rows) (*domain.BudgetOverride, error) {
	override := &domain.BudgetOverride{}

	err := rows.Scan(
		&override.ID,
		&override.ClientID,
		&override.Platform,
		&override.AccountID,
		&override.Amount,
		&override.StartDate,
		&override.EndDate,
		&override.Active,
		&override.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return override, nil
}
