package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/gmendes/agency-ops-api/infrastructure/repository/mocks"
	"github.com/gmendes/agency-ops-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSnapshotSyncService_GetStatus_ConcurrentWithSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAdAccountRepository(ctrl)

	// Conta sem external_id é pulada: a sincronização percorre o ciclo inteiro
	// (carimbo de início e de término) sem tocar integrador ou repositório
	accountRepo.EXPECT().
		ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
		Return([]*domain.AdAccount{{ID: "ACC001", Status: domain.AdAccountStatusActive}}, nil).
		AnyTimes()

	service := &SnapshotSyncService{
		config: SnapshotSyncConfig{
			LookbackDays:      1,
			MaxConcurrentJobs: 1,
		},
		accountRepo: accountRepo,
	}

	// Os carimbos last_sync_* são escritos pela goroutine de sincronização e
	// lidos pelo endpoint de status; as leituras concorrentes abaixo precisam
	// ser seguras sob o detector de corrida
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			service.syncAllSnapshots()
		}
	}()

	for i := 0; i < 200; i++ {
		status := service.GetStatus()
		require.Contains(t, status, "last_sync_started_at")
		require.Contains(t, status, "last_sync_completed_at")
	}

	wg.Wait()

	status := service.GetStatus()
	startedAt, ok := status["last_sync_started_at"].(time.Time)
	require.True(t, ok)
	assert.False(t, startedAt.IsZero())

	completedAt, ok := status["last_sync_completed_at"].(time.Time)
	require.True(t, ok)
	assert.False(t, completedAt.IsZero())
}
