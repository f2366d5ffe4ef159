package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/gmendes/agency-ops-api/infrastructure/database/postgres"
	"github.com/gmendes/agency-ops-api/internal/domain"
)

const (
	batchRunsTable = "batch_runs br"
)

// BatchRunRepository guarda o estado compartilhado de execução em lote por job.
// Uma linha por job_name, sobrescrita a cada progresso; leitores concorrentes
// fazem polling sem coordenação adicional.
type BatchRunRepository interface {
	GetByJobName(jobName string) (*domain.BatchRunState, error)
	SaveOrUpdateRun(state *domain.BatchRunState) error
	UpdateProgress(jobName string, processedCount, failedCount int) error
}

type batchRunRepository struct {
	conn *postgres.Connection
}

func NewBatchRunRepository(conn *postgres.Connection) BatchRunRepository {
	return &batchRunRepository{
		conn: conn,
	}
}

func (r *batchRunRepository) GetByJobName(jobName string) (*domain.BatchRunState, error) {
	query, args, err := squirrel.
		Select(
			"br.job_name",
			"br.run_id",
			"br.status",
			"br.started_at",
			"br.finished_at",
			"br.processed_count",
			"br.total_count",
			"br.failed_count",
			"br.updated_at",
		).
		From(batchRunsTable).
		Where(squirrel.Eq{"br.job_name": jobName}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	state := &domain.BatchRunState{}
	err = row.Scan(
		&state.JobName,
		&state.RunID,
		&state.Status,
		&state.StartedAt,
		&state.FinishedAt,
		&state.ProcessedCount,
		&state.TotalCount,
		&state.FailedCount,
		&state.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear estado de execução: %w", err)
	}

	return state, nil
}

func (r *batchRunRepository) SaveOrUpdateRun(state *domain.BatchRunState) error {
	query, args, err := squirrel.
		Insert("batch_runs").
		Columns("job_name", "run_id", "status", "started_at", "finished_at", "processed_count", "total_count", "failed_count").
		Values(
			state.JobName,
			state.RunID,
			state.Status,
			state.StartedAt,
			state.FinishedAt,
			state.ProcessedCount,
			state.TotalCount,
			state.FailedCount,
		).
		Suffix(`
			ON CONFLICT (job_name) DO UPDATE SET
				run_id = EXCLUDED.run_id,
				status = EXCLUDED.status,
				started_at = EXCLUDED.started_at,
				finished_at = EXCLUDED.finished_at,
				processed_count = EXCLUDED.processed_count,
				total_count = EXCLUDED.total_count,
				failed_count = EXCLUDED.failed_count,
				updated_at = CURRENT_TIMESTAMP
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

// UpdateProgress grava apenas os contadores, preservando o restante do estado.
// Os contadores só crescem dentro de uma execução, então last-writer-wins basta.
func (r *batchRunRepository) UpdateProgress(jobName string, processedCount, failedCount int) error {
	query, args, err := squirrel.
		Update("batch_runs").
		Set("processed_count", processedCount).
		Set("failed_count", failedCount).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"job_name": jobName}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de atualização: %w", err)
	}

	return nil
}
