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
	deliveryHealthTable = "delivery_health dh"
)

type DeliveryHealthRepository interface {
	GetByAccountIDAndDate(accountID string, date time.Time) (*domain.DeliveryHealth, error)
	SaveOrUpdateHealth(health *domain.DeliveryHealth) error
}

type deliveryHealthRepository struct {
	conn *postgres.Connection
}

func NewDeliveryHealthRepository(conn *postgres.Connection) DeliveryHealthRepository {
	return &deliveryHealthRepository{
		conn: conn,
	}
}

func (r *deliveryHealthRepository) GetByAccountIDAndDate(accountID string, date time.Time) (*domain.DeliveryHealth, error) {
	query, args, err := squirrel.
		Select(
			"dh.account_id",
			"dh.date",
			"dh.status",
			"dh.active_campaign_count",
			"dh.unserved_campaign_count",
			"dh.campaigns",
			"dh.created_at",
		).
		From(deliveryHealthTable).
		Where(squirrel.Eq{"dh.account_id": accountID, "dh.date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	health := &domain.DeliveryHealth{}
	var campaignsJSON []byte

	err = row.Scan(
		&health.AccountID,
		&health.Date,
		&health.Status,
		&health.ActiveCampaignCount,
		&health.UnservedCampaignCount,
		&campaignsJSON,
		&health.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear saúde de entrega: %w", err)
	}

	if len(campaignsJSON) > 0 {
		if err := json.Unmarshal(campaignsJSON, &health.Campaigns); err != nil {
			return nil, fmt.Errorf("erro ao decodificar campanhas: %w", err)
		}
	}

	return health, nil
}

func (r *deliveryHealthRepository) SaveOrUpdateHealth(health *domain.DeliveryHealth) error {
	campaignsJSON, err := json.Marshal(health.Campaigns)
	if err != nil {
		return fmt.Errorf("erro ao codificar campanhas: %w", err)
	}

	query, args, err := squirrel.
		Insert("delivery_health").
		Columns(
			"account_id",
			"date",
			"status",
			"active_campaign_count",
			"unserved_campaign_count",
			"campaigns",
		).
		Values(
			health.AccountID,
			health.Date.Format("2006-01-02"),
			health.Status,
			health.ActiveCampaignCount,
			health.UnservedCampaignCount,
			campaignsJSON,
		).
		Suffix(`
			ON CONFLICT (account_id, date) DO UPDATE SET
				status = EXCLUDED.status,
				active_campaign_count = EXCLUDED.active_campaign_count,
				unserved_campaign_count = EXCLUDED.unserved_campaign_count,
				campaigns = EXCLUDED.campaigns,
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
