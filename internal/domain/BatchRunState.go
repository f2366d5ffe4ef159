package domain

import "time"

// BatchRunStatus é o estado de uma execução em lote
type BatchRunStatus string

const (
	BatchRunStatusIdle      BatchRunStatus = "idle"
	BatchRunStatusRunning   BatchRunStatus = "running"
	BatchRunStatusCompleted BatchRunStatus = "completed"
	BatchRunStatusError     BatchRunStatus = "error"
)

// BatchRunState descreve a recomputação em lote em andamento (ou a mais
// recente) de um job nomeado. Instância única por job; sobrescrita conforme a
// execução progride e deixada no estado terminal até a próxima execução.
type BatchRunState struct {
	JobName        string         `json:"job_name"`
	RunID          string         `json:"run_id"`
	Status         BatchRunStatus `json:"status"`
	StartedAt      time.Time      `json:"started_at"`
	FinishedAt     *time.Time     `json:"finished_at,omitempty"`
	ProcessedCount int            `json:"processed_count"`
	TotalCount     int            `json:"total_count"`
	FailedCount    int            `json:"failed_count"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// IsStale informa se uma execução marcada como running já passou da janela de
// abandono e pode ser considerada órfã (recuperação de crash sem heartbeat)
func (s *BatchRunState) IsStale(now time.Time, window time.Duration) bool {
	return s.Status == BatchRunStatusRunning && now.Sub(s.StartedAt) >= window
}
