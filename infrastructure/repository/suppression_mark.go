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
	suppressionMarksTable = "suppression_marks sm"
)

type SuppressionMarkRepository interface {
	Save(mark *domain.SuppressionMark) error
	Exists(clientID string, platform domain.Platform, date time.Time) (bool, error)
}

type suppressionMarkRepository struct {
	conn *postgres.Connection
}

func NewSuppressionMarkRepository(conn *postgres.Connection) SuppressionMarkRepository {
	return &suppressionMarkRepository{
		conn: conn,
	}
}

// Save grava a marca de supressão do dia. Marcas de dias anteriores nunca são
// removidas; expiram naturalmente pela comparação de data na leitura.
func (r *suppressionMarkRepository) Save(mark *domain.SuppressionMark) error {
	query, args, err := squirrel.
		Insert("suppression_marks").
		Columns("client_id", "platform", "date").
		Values(mark.ClientID, mark.Platform, mark.Date.Format("2006-01-02")).
		Suffix("ON CONFLICT (client_id, platform, date) DO NOTHING").
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

func (r *suppressionMarkRepository) Exists(clientID string, platform domain.Platform, date time.Time) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(suppressionMarksTable).
		Where(squirrel.Eq{
			"sm.client_id": clientID,
			"sm.platform":  platform,
			"sm.date":      date.Format("2006-01-02"),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var exists int
	err = r.conn.QueryRow(query, args...).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("erro ao consultar marca de supressão: %w", err)
	}

	return true, nil
}
