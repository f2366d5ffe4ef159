package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/gmendes/agency-ops-api/infrastructure/database/postgres"
	"github.com/gmendes/agency-ops-api/internal/domain"
)

const (
	periodSnapshotsTable = "period_snapshots ps"

	// Janela da média móvel de gasto usada pelo canal secundário de pacing
	trailingAverageDays = 5
)

type PeriodSnapshotRepository interface {
	GetByAccountIDAndDate(accountID string, date time.Time) (*domain.PeriodSnapshot, error)
	SaveOrUpdateSnapshot(snapshot *domain.PeriodSnapshot) error
}

type periodSnapshotRepository struct {
	conn *postgres.Connection
}

func NewPeriodSnapshotRepository(conn *postgres.Connection) PeriodSnapshotRepository {
	return &periodSnapshotRepository{
		conn: conn,
	}
}

// GetByAccountIDAndDate retorna o snapshot da conta na data, com a média móvel
// de gasto dos últimos dias calculada sobre os snapshots anteriores
func (r *periodSnapshotRepository) GetByAccountIDAndDate(accountID string, date time.Time) (*domain.PeriodSnapshot, error) {
	day := date.Format("2006-01-02")

	trailingSubquery := fmt.Sprintf(`(
		SELECT AVG(prev.daily_spend)
		FROM period_snapshots prev
		WHERE prev.account_id = ps.account_id
		  AND prev.date < ps.date
		  AND prev.date >= ps.date - INTERVAL '%d days'
	) AS trailing_average_spend`, trailingAverageDays)

	query, args, err := squirrel.
		Select(
			"ps.account_id",
			"ps.date",
			"ps.amount_spent",
			"ps.daily_spend",
			"ps.current_daily_budget",
			"ps.active_campaign_count",
			"ps.unserved_campaign_count",
			"ps.campaigns",
			"ps.fetched_at",
			trailingSubquery,
		).
		From(periodSnapshotsTable).
		Where(squirrel.Eq{"ps.account_id": accountID, "ps.date": day}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	snapshot := &domain.PeriodSnapshot{}
	var campaignsJSON []byte

	err = row.Scan(
		&snapshot.AccountID,
		&snapshot.Date,
		&snapshot.AmountSpent,
		&snapshot.DailySpend,
		&snapshot.CurrentDailyBudget,
		&snapshot.ActiveCampaignCount,
		&snapshot.UnservedCampaignCount,
		&campaignsJSON,
		&snapshot.FetchedAt,
		&snapshot.TrailingAverageSpend,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	if len(campaignsJSON) > 0 {
		if err := json.Unmarshal(campaignsJSON, &snapshot.Campaigns); err != nil {
			return nil, fmt.Errorf("erro ao decodificar campanhas do snapshot: %w", err)
		}
	}

	return snapshot, nil
}

func (r *periodSnapshotRepository) SaveOrUpdateSnapshot(snapshot *domain.PeriodSnapshot) error {
	campaignsJSON, err := json.Marshal(snapshot.Campaigns)
	if err != nil {
		return fmt.Errorf("erro ao codificar campanhas do snapshot: %w", err)
	}

	query, args, err := squirrel.
		Insert("period_snapshots").
		Columns(
			"account_id",
			"date",
			"amount_spent",
			"daily_spend",
			"current_daily_budget",
			"active_campaign_count",
			"unserved_campaign_count",
			"campaigns",
			"fetched_at",
		).
		Values(
			snapshot.AccountID,
			snapshot.Date.Format("2006-01-02"),
			snapshot.AmountSpent,
			snapshot.DailySpend,
			snapshot.CurrentDailyBudget,
			snapshot.ActiveCampaignCount,
			snapshot.UnservedCampaignCount,
			campaignsJSON,
			snapshot.FetchedAt,
		).
		Suffix(`
			ON CONFLICT (account_id, date) DO UPDATE SET
				amount_spent = EXCLUDED.amount_spent,
				daily_spend = EXCLUDED.daily_spend,
				current_daily_budget = EXCLUDED.current_daily_budget,
				active_campaign_count = EXCLUDED.active_campaign_count,
				unserved_campaign_count = EXCLUDED.unserved_campaign_count,
				campaigns = EXCLUDED.campaigns,
				fetched_at = EXCLUDED.fetched_at
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
