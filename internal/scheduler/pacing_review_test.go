package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gmendes/agency-ops-api/infrastructure/repository/mocks"
	"github.com/gmendes/agency-ops-api/internal/domain"
	"github.com/gmendes/agency-ops-api/internal/usecases/budgeting"
	budgetingmocks "github.com/gmendes/agency-ops-api/internal/usecases/budgeting/mocks"
	"github.com/gmendes/agency-ops-api/internal/usecases/pacing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func stringPtr(s string) *string {
	return &s
}

func newReviewServiceForTest(
	clientRepo *mocks.MockClientRepository,
	accountRepo *mocks.MockAdAccountRepository,
	snapshotRepo *mocks.MockPeriodSnapshotRepository,
	recommendationRepo *mocks.MockPacingRecommendationRepository,
	healthRepo *mocks.MockDeliveryHealthRepository,
	batchRunRepo *mocks.MockBatchRunRepository,
	budgetResolver budgeting.BudgetResolver,
) *PacingReviewService {
	return &PacingReviewService{
		config: PacingReviewConfig{
			MaxConcurrentJobs: 2,
			StaleWindow:       15 * time.Minute,
			ProgressBatchSize: 1,
			ReviewEnabled:     true,
		},
		clientRepo:         clientRepo,
		accountRepo:        accountRepo,
		snapshotRepo:       snapshotRepo,
		recommendationRepo: recommendationRepo,
		healthRepo:         healthRepo,
		batchRunRepo:       batchRunRepo,
		budgetResolver:     budgetResolver,
		calculator:         pacing.NewCalculator(0.10),
		location:           time.UTC,
		baseCtx:            context.Background(),
	}
}

func TestPacingReviewService_StartRun_RejectsConcurrentRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batchRunRepo := mocks.NewMockBatchRunRepository(ctrl)

	// Execução anterior ainda dentro da janela de abandono
	batchRunRepo.EXPECT().
		GetByJobName(PacingReviewJobName).
		Return(&domain.BatchRunState{
			JobName:   PacingReviewJobName,
			RunID:     "abc123",
			Status:    domain.BatchRunStatusRunning,
			StartedAt: time.Now().Add(-5 * time.Minute),
		}, nil)

	service := newReviewServiceForTest(nil, nil, nil, nil, nil, batchRunRepo, nil)

	state, err := service.StartRun()
	require.Error(t, err)
	assert.Nil(t, state)
	assert.True(t, errors.Is(err, ErrReviewAlreadyRunning))
}

func TestPacingReviewService_StartRun_TakesOverStaleRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientRepo := mocks.NewMockClientRepository(ctrl)
	accountRepo := mocks.NewMockAdAccountRepository(ctrl)
	batchRunRepo := mocks.NewMockBatchRunRepository(ctrl)

	// Execução anterior travada além da janela: considerada órfã
	batchRunRepo.EXPECT().
		GetByJobName(PacingReviewJobName).
		Return(&domain.BatchRunState{
			JobName:   PacingReviewJobName,
			RunID:     "stale1",
			Status:    domain.BatchRunStatusRunning,
			StartedAt: time.Now().Add(-20 * time.Minute),
		}, nil)

	clientRepo.EXPECT().
		ListClients([]domain.ClientStatus{domain.ClientStatusActive}).
		Return(nil, nil)

	accountRepo.EXPECT().
		ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
		Return(nil, nil)

	done := make(chan *domain.BatchRunState, 1)

	batchRunRepo.EXPECT().
		UpdateProgress(PacingReviewJobName, gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	batchRunRepo.EXPECT().
		SaveOrUpdateRun(gomock.Any()).
		DoAndReturn(func(state *domain.BatchRunState) error {
			if state.Status != domain.BatchRunStatusRunning {
				done <- state
			}
			return nil
		}).
		Times(2)

	service := newReviewServiceForTest(clientRepo, accountRepo, nil, nil, nil, batchRunRepo, nil)

	state, err := service.StartRun()
	require.NoError(t, err)
	require.NotNil(t, state)

	assert.Equal(t, domain.BatchRunStatusRunning, state.Status)
	assert.NotEqual(t, "stale1", state.RunID)
	assert.Zero(t, state.TotalCount)

	select {
	case terminal := <-done:
		assert.Equal(t, domain.BatchRunStatusCompleted, terminal.Status)
	case <-time.After(5 * time.Second):
		t.Fatal("execução em background não terminou")
	}
}

func TestPacingReviewService_StartRun_CountsFailuresWithoutAborting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientRepo := mocks.NewMockClientRepository(ctrl)
	accountRepo := mocks.NewMockAdAccountRepository(ctrl)
	snapshotRepo := mocks.NewMockPeriodSnapshotRepository(ctrl)
	recommendationRepo := mocks.NewMockPacingRecommendationRepository(ctrl)
	healthRepo := mocks.NewMockDeliveryHealthRepository(ctrl)
	batchRunRepo := mocks.NewMockBatchRunRepository(ctrl)
	budgetResolver := budgetingmocks.NewMockBudgetResolver(ctrl)

	accounts := []*domain.AdAccount{
		{ID: "ACC001", ClientID: "CLI001", Platform: domain.PlatformMeta, Status: domain.AdAccountStatusActive},
		{ID: "ACC002", ClientID: "CLI001", Platform: domain.PlatformMeta, Status: domain.AdAccountStatusActive},
	}

	batchRunRepo.EXPECT().
		GetByJobName(PacingReviewJobName).
		Return(nil, nil)

	clientRepo.EXPECT().
		ListClients([]domain.ClientStatus{domain.ClientStatusActive}).
		Return([]*domain.Client{{ID: "CLI001", Status: domain.ClientStatusActive}}, nil)

	accountRepo.EXPECT().
		ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
		Return(accounts, nil)

	// ACC001 segue o caminho feliz; ACC002 falha na busca do snapshot
	snapshotRepo.EXPECT().
		GetByAccountIDAndDate("ACC001", gomock.Any()).
		Return(&domain.PeriodSnapshot{
			AccountID:             "ACC001",
			AmountSpent:           1200,
			CurrentDailyBudget:    80,
			ActiveCampaignCount:   intPtr(2),
			UnservedCampaignCount: intPtr(0),
		}, nil)

	snapshotRepo.EXPECT().
		GetByAccountIDAndDate("ACC002", gomock.Any()).
		Return(nil, errors.New("timeout na consulta"))

	healthRepo.EXPECT().
		SaveOrUpdateHealth(gomock.Any()).
		Return(nil)

	budgetResolver.EXPECT().
		Resolve("CLI001", domain.PlatformMeta, stringPtr("ACC001"), gomock.Any()).
		DoAndReturn(func(_ string, _ domain.Platform, _ *string, date time.Time) (*domain.EffectiveBudget, error) {
			return &domain.EffectiveBudget{
				Amount:      3000,
				PeriodStart: time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC),
				PeriodEnd:   date.AddDate(0, 0, 10),
				Source:      domain.BudgetSourceDefault,
			}, nil
		})

	recommendationRepo.EXPECT().
		SaveOrUpdateRecommendation(gomock.Any()).
		DoAndReturn(func(rec *domain.PacingRecommendation) error {
			assert.Equal(t, "ACC001", rec.AccountID)
			assert.Equal(t, 3000.0, rec.BudgetAmount)
			return nil
		})

	batchRunRepo.EXPECT().
		UpdateProgress(PacingReviewJobName, gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	done := make(chan *domain.BatchRunState, 1)

	batchRunRepo.EXPECT().
		SaveOrUpdateRun(gomock.Any()).
		DoAndReturn(func(state *domain.BatchRunState) error {
			if state.Status != domain.BatchRunStatusRunning {
				done <- state
			}
			return nil
		}).
		Times(2)

	service := newReviewServiceForTest(clientRepo, accountRepo, snapshotRepo, recommendationRepo, healthRepo, batchRunRepo, budgetResolver)

	state, err := service.StartRun()
	require.NoError(t, err)
	assert.Equal(t, 2, state.TotalCount)

	select {
	case terminal := <-done:
		// Falha individual conta como falha mas não interrompe o lote
		assert.Equal(t, domain.BatchRunStatusCompleted, terminal.Status)
		assert.Equal(t, 2, terminal.ProcessedCount)
		assert.Equal(t, 1, terminal.FailedCount)
		require.NotNil(t, terminal.FinishedAt)
	case <-time.After(5 * time.Second):
		t.Fatal("execução em background não terminou")
	}
}

func TestPacingReviewService_TriggerManualReview_CompletesAfterCallerReturns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientRepo := mocks.NewMockClientRepository(ctrl)
	accountRepo := mocks.NewMockAdAccountRepository(ctrl)
	batchRunRepo := mocks.NewMockBatchRunRepository(ctrl)

	batchRunRepo.EXPECT().
		GetByJobName(PacingReviewJobName).
		Return(nil, nil)

	clientRepo.EXPECT().
		ListClients([]domain.ClientStatus{domain.ClientStatusActive}).
		Return(nil, nil)

	accountRepo.EXPECT().
		ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
		Return(nil, nil)

	batchRunRepo.EXPECT().
		UpdateProgress(PacingReviewJobName, gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	done := make(chan *domain.BatchRunState, 1)

	batchRunRepo.EXPECT().
		SaveOrUpdateRun(gomock.Any()).
		DoAndReturn(func(state *domain.BatchRunState) error {
			if state.Status != domain.BatchRunStatusRunning {
				done <- state
			}
			return nil
		}).
		Times(2)

	service := newReviewServiceForTest(clientRepo, accountRepo, nil, nil, nil, batchRunRepo, nil)

	// O disparo manual devolve o controle imediatamente (o handler já
	// respondeu 202); a execução segue no contexto base e precisa terminar
	// no estado completed, não cancelada junto com o request
	state, err := service.TriggerManualReview()
	require.NoError(t, err)
	assert.Equal(t, domain.BatchRunStatusRunning, state.Status)

	select {
	case terminal := <-done:
		assert.Equal(t, domain.BatchRunStatusCompleted, terminal.Status)
	case <-time.After(5 * time.Second):
		t.Fatal("execução em background não terminou")
	}
}

func TestPacingReviewService_StartRun_ShutdownLeavesRunInErrorState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientRepo := mocks.NewMockClientRepository(ctrl)
	accountRepo := mocks.NewMockAdAccountRepository(ctrl)
	batchRunRepo := mocks.NewMockBatchRunRepository(ctrl)

	batchRunRepo.EXPECT().
		GetByJobName(PacingReviewJobName).
		Return(nil, nil)

	clientRepo.EXPECT().
		ListClients([]domain.ClientStatus{domain.ClientStatusActive}).
		Return([]*domain.Client{{ID: "CLI001", Status: domain.ClientStatusActive}}, nil)

	accountRepo.EXPECT().
		ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
		Return([]*domain.AdAccount{
			{ID: "ACC001", ClientID: "CLI001", Platform: domain.PlatformMeta, Status: domain.AdAccountStatusActive},
		}, nil)

	batchRunRepo.EXPECT().
		UpdateProgress(PacingReviewJobName, gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	done := make(chan *domain.BatchRunState, 1)

	batchRunRepo.EXPECT().
		SaveOrUpdateRun(gomock.Any()).
		DoAndReturn(func(state *domain.BatchRunState) error {
			if state.Status != domain.BatchRunStatusRunning {
				done <- state
			}
			return nil
		}).
		Times(2)

	service := newReviewServiceForTest(clientRepo, accountRepo, nil, nil, nil, batchRunRepo, nil)

	// Desligamento da aplicação: o contexto base já cancelado interrompe o
	// despacho antes da primeira conta
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	service.baseCtx = ctx

	_, err := service.StartRun()
	require.NoError(t, err)

	select {
	case terminal := <-done:
		assert.Equal(t, domain.BatchRunStatusError, terminal.Status)
		assert.Zero(t, terminal.ProcessedCount)
	case <-time.After(5 * time.Second):
		t.Fatal("execução em background não terminou")
	}
}

func TestPacingReviewService_ReviewAccount_SkipsRecommendationWithoutBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshotRepo := mocks.NewMockPeriodSnapshotRepository(ctrl)
	healthRepo := mocks.NewMockDeliveryHealthRepository(ctrl)
	budgetResolver := budgetingmocks.NewMockBudgetResolver(ctrl)

	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	account := &domain.AdAccount{ID: "ACC001", ClientID: "CLI001", Platform: domain.PlatformMeta}

	snapshotRepo.EXPECT().
		GetByAccountIDAndDate("ACC001", date).
		Return(&domain.PeriodSnapshot{
			AccountID:             "ACC001",
			Date:                  date,
			ActiveCampaignCount:   intPtr(3),
			UnservedCampaignCount: intPtr(1),
		}, nil)

	// A saúde de entrega é gravada mesmo sem orçamento configurado
	healthRepo.EXPECT().
		SaveOrUpdateHealth(gomock.Any()).
		DoAndReturn(func(health *domain.DeliveryHealth) error {
			assert.Equal(t, domain.DeliveryStatusPartialRunning, health.Status)
			return nil
		})

	budgetResolver.EXPECT().
		Resolve("CLI001", domain.PlatformMeta, stringPtr("ACC001"), date).
		Return(nil, budgeting.ErrBudgetNotConfigured)

	service := newReviewServiceForTest(nil, nil, snapshotRepo, nil, healthRepo, nil, budgetResolver)

	err := service.reviewAccount(account, date)
	assert.NoError(t, err)
}

func TestPacingReviewService_ReviewAccount_SkipsRecommendationWithoutSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshotRepo := mocks.NewMockPeriodSnapshotRepository(ctrl)
	healthRepo := mocks.NewMockDeliveryHealthRepository(ctrl)
	budgetResolver := budgetingmocks.NewMockBudgetResolver(ctrl)

	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	account := &domain.AdAccount{ID: "ACC001", ClientID: "CLI001", Platform: domain.PlatformMeta}

	snapshotRepo.EXPECT().
		GetByAccountIDAndDate("ACC001", date).
		Return(nil, nil)

	healthRepo.EXPECT().
		SaveOrUpdateHealth(gomock.Any()).
		DoAndReturn(func(health *domain.DeliveryHealth) error {
			assert.Equal(t, domain.DeliveryStatusNoData, health.Status)
			return nil
		})

	budgetResolver.EXPECT().
		Resolve("CLI001", domain.PlatformMeta, stringPtr("ACC001"), date).
		Return(&domain.EffectiveBudget{
			Amount:      3000,
			PeriodStart: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			PeriodEnd:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
			Source:      domain.BudgetSourceDefault,
		}, nil)

	service := newReviewServiceForTest(nil, nil, snapshotRepo, nil, healthRepo, nil, budgetResolver)

	err := service.reviewAccount(account, date)
	assert.NoError(t, err)
}

func TestPacingReviewService_ReviewAccount_GoogleUsesTrailingAverage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshotRepo := mocks.NewMockPeriodSnapshotRepository(ctrl)
	recommendationRepo := mocks.NewMockPacingRecommendationRepository(ctrl)
	healthRepo := mocks.NewMockDeliveryHealthRepository(ctrl)
	budgetResolver := budgetingmocks.NewMockBudgetResolver(ctrl)

	date := time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC)
	account := &domain.AdAccount{ID: "ACC001", ClientID: "CLI001", Platform: domain.PlatformGoogle}

	snapshotRepo.EXPECT().
		GetByAccountIDAndDate("ACC001", date).
		Return(&domain.PeriodSnapshot{
			AccountID:            "ACC001",
			Date:                 date,
			AmountSpent:          2000,
			CurrentDailyBudget:   100,
			TrailingAverageSpend: floatPtr(200),
		}, nil)

	healthRepo.EXPECT().
		SaveOrUpdateHealth(gomock.Any()).
		Return(nil)

	budgetResolver.EXPECT().
		Resolve("CLI001", domain.PlatformGoogle, stringPtr("ACC001"), date).
		Return(&domain.EffectiveBudget{
			Amount:      3000,
			PeriodStart: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			PeriodEnd:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
			Source:      domain.BudgetSourceDefault,
		}, nil)

	recommendationRepo.EXPECT().
		SaveOrUpdateRecommendation(gomock.Any()).
		DoAndReturn(func(rec *domain.PacingRecommendation) error {
			assert.Equal(t, "ACC001", rec.AccountID)
			assert.Equal(t, date, rec.Date)
			require.NotNil(t, rec.TrailingIdealDailyBudget)
			// Restante 1000 em 10 dias, média de 200 duraria 5: escala para 400
			assert.Equal(t, 400.0, *rec.TrailingIdealDailyBudget)
			return nil
		})

	service := newReviewServiceForTest(nil, nil, snapshotRepo, recommendationRepo, healthRepo, nil, budgetResolver)

	err := service.reviewAccount(account, date)
	assert.NoError(t, err)
}
