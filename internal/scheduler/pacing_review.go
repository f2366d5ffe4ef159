package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gmendes/agency-ops-api/infrastructure/repository"
	"github.com/gmendes/agency-ops-api/internal/config"
	"github.com/gmendes/agency-ops-api/internal/domain"
	"github.com/gmendes/agency-ops-api/internal/usecases/budgeting"
	"github.com/gmendes/agency-ops-api/internal/usecases/delivering"
	"github.com/gmendes/agency-ops-api/internal/usecases/pacing"
	"github.com/gmendes/agency-ops-api/pkg/utils"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// PacingReviewJobName identifica a execução em lote da revisão diária de pacing
const PacingReviewJobName = "daily-pacing-review"

// ErrReviewAlreadyRunning indica que já existe uma revisão em andamento dentro
// da janela de abandono
var ErrReviewAlreadyRunning = errors.New("revisão de pacing já em execução")

// PacingReviewConfig representa a configuração do agendador de revisão de pacing
type PacingReviewConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	StaleWindow       time.Duration
	ProgressBatchSize int
	ReviewEnabled     bool
}

// PacingReviewService recomputa diariamente as recomendações de pacing e a
// saúde de entrega de todas as contas ativas. Uma execução por vez: execuções
// concorrentes são rejeitadas, exceto quando a anterior passou da janela de
// abandono sem atualizar o progresso (crash sem estado terminal).
type PacingReviewService struct {
	scheduler          *gocron.Scheduler
	config             PacingReviewConfig
	appConfig          *config.Config
	clientRepo         repository.ClientRepository
	accountRepo        repository.AdAccountRepository
	snapshotRepo       repository.PeriodSnapshotRepository
	recommendationRepo repository.PacingRecommendationRepository
	healthRepo         repository.DeliveryHealthRepository
	batchRunRepo       repository.BatchRunRepository
	budgetResolver     budgeting.BudgetResolver
	calculator         *pacing.Calculator
	location           *time.Location
	baseCtx            context.Context
	runMutex           sync.Mutex
	runActive          bool
}

// NewPacingReviewService cria uma nova instância do serviço de revisão de pacing
func NewPacingReviewService(
	clientRepo repository.ClientRepository,
	accountRepo repository.AdAccountRepository,
	snapshotRepo repository.PeriodSnapshotRepository,
	recommendationRepo repository.PacingRecommendationRepository,
	healthRepo repository.DeliveryHealthRepository,
	batchRunRepo repository.BatchRunRepository,
	budgetResolver budgeting.BudgetResolver,
	calculator *pacing.Calculator,
	location *time.Location,
	appConfig *config.Config,
) *PacingReviewService {
	reviewConfig := PacingReviewConfig{
		CronSchedule:      appConfig.PacingReview.CronSchedule,
		MaxConcurrentJobs: appConfig.PacingReview.MaxConcurrentJobs,
		StaleWindow:       time.Duration(appConfig.PacingReview.StaleWindowMinutes) * time.Minute,
		ProgressBatchSize: appConfig.PacingReview.ProgressBatchSize,
		ReviewEnabled:     appConfig.PacingReview.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       reviewConfig.CronSchedule,
		"max_concurrent_jobs": reviewConfig.MaxConcurrentJobs,
		"stale_window":        reviewConfig.StaleWindow.String(),
		"review_enabled":      reviewConfig.ReviewEnabled,
	}).Info("Configuração do agendador de revisão de pacing carregada")

	return &PacingReviewService{
		scheduler:          scheduler,
		config:             reviewConfig,
		appConfig:          appConfig,
		clientRepo:         clientRepo,
		accountRepo:        accountRepo,
		snapshotRepo:       snapshotRepo,
		recommendationRepo: recommendationRepo,
		healthRepo:         healthRepo,
		batchRunRepo:       batchRunRepo,
		budgetResolver:     budgetResolver,
		calculator:         calculator,
		location:           location,
		baseCtx:            context.Background(),
	}
}

// Start inicia o agendador. O contexto recebido passa a ser o contexto base
// das execuções em background, agendadas ou manuais: só o desligamento da
// aplicação as interrompe.
func (s *PacingReviewService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.ReviewEnabled {
		logrus.Info("Revisão diária de pacing desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de revisão de pacing")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.StartRun(); err != nil {
			logrus.WithError(err).Warn("Revisão agendada de pacing não iniciada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar revisão de pacing: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de revisão de pacing")
		s.scheduler.Stop()
	}()

	return nil
}

// StartRun inicia uma nova execução da revisão, rejeitando com
// ErrReviewAlreadyRunning quando já existe uma em andamento. Uma execução
// persistida como running mas sem progresso além da janela de abandono é
// tratada como órfã e substituída. O processamento segue em background sob o
// contexto base capturado em Start, desacoplado do request que o disparou; o
// estado retornado reflete o início da execução.
func (s *PacingReviewService) StartRun() (*domain.BatchRunState, error) {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	if s.runActive {
		return nil, ErrReviewAlreadyRunning
	}

	now := time.Now()

	previous, err := s.batchRunRepo.GetByJobName(PacingReviewJobName)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar estado da revisão de pacing: %w", err)
	}

	if previous != nil && previous.Status == domain.BatchRunStatusRunning {
		if !previous.IsStale(now, s.config.StaleWindow) {
			return nil, ErrReviewAlreadyRunning
		}

		logrus.WithFields(logrus.Fields{
			"run_id":     previous.RunID,
			"started_at": previous.StartedAt,
		}).Warn("Revisão de pacing anterior abandonada, iniciando nova execução")
	}

	accounts, err := s.listReviewableAccounts()
	if err != nil {
		return nil, err
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador da revisão: %w", err)
	}

	state := &domain.BatchRunState{
		JobName:    PacingReviewJobName,
		RunID:      runID,
		Status:     domain.BatchRunStatusRunning,
		StartedAt:  now,
		TotalCount: len(accounts),
		UpdatedAt:  now,
	}

	if err := s.batchRunRepo.SaveOrUpdateRun(state); err != nil {
		return nil, fmt.Errorf("erro ao registrar início da revisão de pacing: %w", err)
	}

	s.runActive = true

	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"accounts": len(accounts),
	}).Info("Revisão de pacing iniciada")

	go s.executeReview(s.baseCtx, state, accounts)

	stateCopy := *state
	return &stateCopy, nil
}

// TriggerManualReview inicia manualmente uma revisão de pacing
func (s *PacingReviewService) TriggerManualReview() (*domain.BatchRunState, error) {
	logrus.Info("Iniciando revisão manual de pacing")
	return s.StartRun()
}

// GetProgress retorna o estado persistido da execução mais recente
func (s *PacingReviewService) GetProgress() (*domain.BatchRunState, error) {
	return s.batchRunRepo.GetByJobName(PacingReviewJobName)
}

// listReviewableAccounts enumera as contas ativas de clientes ativos
func (s *PacingReviewService) listReviewableAccounts() ([]*domain.AdAccount, error) {
	clients, err := s.clientRepo.ListClients([]domain.ClientStatus{domain.ClientStatusActive})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes para revisão de pacing: %w", err)
	}

	activeClients := make(map[string]bool, len(clients))
	for _, client := range clients {
		activeClients[client.ID] = true
	}

	accounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas para revisão de pacing: %w", err)
	}

	reviewable := make([]*domain.AdAccount, 0, len(accounts))
	for _, account := range accounts {
		if activeClients[account.ClientID] {
			reviewable = append(reviewable, account)
		}
	}

	return reviewable, nil
}

// executeReview processa todas as contas com um pool de workers limitado.
// Falhas individuais são contadas e não interrompem o lote; o cancelamento do
// contexto interrompe entre contas e deixa a execução no estado error.
func (s *PacingReviewService) executeReview(ctx context.Context, state *domain.BatchRunState, accounts []*domain.AdAccount) {
	defer func() {
		s.runMutex.Lock()
		s.runActive = false
		s.runMutex.Unlock()
	}()

	startTime := time.Now()
	reviewDate := utils.TruncateToDate(time.Now().In(s.location))

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	var progressMutex sync.Mutex
	processed := 0
	failed := 0
	sinceFlush := 0

	flushProgress := func() {
		if err := s.batchRunRepo.UpdateProgress(PacingReviewJobName, processed, failed); err != nil {
			logrus.WithError(err).Error("Erro ao atualizar progresso da revisão de pacing")
		}
	}

	cancelled := false

	for _, account := range accounts {
		if ctx.Err() != nil {
			cancelled = true
			break
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *domain.AdAccount) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			err := s.reviewAccount(acc, reviewDate)

			progressMutex.Lock()
			processed++
			if err != nil {
				failed++
				logrus.WithFields(logrus.Fields{
					"account_id": acc.ID,
					"client_id":  acc.ClientID,
					"error":      err.Error(),
				}).Error("Erro ao revisar pacing da conta")
			}
			sinceFlush++
			if sinceFlush >= s.config.ProgressBatchSize {
				sinceFlush = 0
				flushProgress()
			}
			progressMutex.Unlock()
		}(account)
	}

	wg.Wait()

	progressMutex.Lock()
	flushProgress()
	progressMutex.Unlock()

	finishedAt := time.Now()
	state.ProcessedCount = processed
	state.FailedCount = failed
	state.FinishedAt = &finishedAt
	state.UpdatedAt = finishedAt

	if cancelled {
		state.Status = domain.BatchRunStatusError
	} else {
		state.Status = domain.BatchRunStatusCompleted
	}

	if err := s.batchRunRepo.SaveOrUpdateRun(state); err != nil {
		logrus.WithError(err).Error("Erro ao registrar término da revisão de pacing")
	}

	logrus.WithFields(logrus.Fields{
		"run_id":    state.RunID,
		"status":    state.Status,
		"processed": processed,
		"failed":    failed,
		"duration":  time.Since(startTime).String(),
	}).Info("Revisão de pacing concluída")
}

// reviewAccount recomputa a recomendação e a saúde de entrega de uma conta
// para a data da revisão. A saúde é gravada mesmo quando não há orçamento ou
// snapshot; a recomendação só existe quando os dois estão disponíveis.
func (s *PacingReviewService) reviewAccount(account *domain.AdAccount, date time.Time) error {
	snapshot, err := s.snapshotRepo.GetByAccountIDAndDate(account.ID, date)
	if err != nil {
		return fmt.Errorf("erro ao buscar snapshot da conta: %w", err)
	}

	health := delivering.BuildHealth(account.ID, date, snapshot)
	if err := s.healthRepo.SaveOrUpdateHealth(health); err != nil {
		return fmt.Errorf("erro ao salvar saúde de entrega da conta: %w", err)
	}

	effectiveBudget, err := s.budgetResolver.Resolve(account.ClientID, account.Platform, &account.ID, date)
	if err != nil {
		if errors.Is(err, budgeting.ErrBudgetNotConfigured) {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"client_id":  account.ClientID,
				"platform":   account.Platform,
			}).Warn("Conta sem orçamento configurado, recomendação não calculada")
			return nil
		}
		return fmt.Errorf("erro ao resolver orçamento da conta: %w", err)
	}

	if snapshot == nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"date":       date.Format(time.DateOnly),
		}).Warn("Conta sem snapshot de gastos, recomendação não calculada")
		return nil
	}

	var trailingAverage *float64
	if account.Platform == domain.PlatformGoogle {
		trailingAverage = snapshot.TrailingAverageSpend
	}

	recommendation := s.calculator.ComputePacing(
		effectiveBudget,
		snapshot.AmountSpent,
		snapshot.CurrentDailyBudget,
		date,
		trailingAverage,
	)
	recommendation.AccountID = account.ID
	recommendation.Date = date

	if err := s.recommendationRepo.SaveOrUpdateRecommendation(recommendation); err != nil {
		return fmt.Errorf("erro ao salvar recomendação da conta: %w", err)
	}

	return nil
}

// GetStatus retorna o status atual do agendador e da execução mais recente
func (s *PacingReviewService) GetStatus() map[string]any {
	status := map[string]any{
		"review_enabled":        s.config.ReviewEnabled,
		"review_cron":           s.config.CronSchedule,
		"review_max_concurrent": s.config.MaxConcurrentJobs,
		"review_stale_window":   s.config.StaleWindow.String(),
	}

	state, err := s.batchRunRepo.GetByJobName(PacingReviewJobName)
	if err != nil {
		status["last_run_error"] = err.Error()
		return status
	}

	if state != nil {
		status["last_run_id"] = state.RunID
		status["last_run_status"] = state.Status
		status["last_run_started_at"] = state.StartedAt
		status["last_run_processed"] = state.ProcessedCount
		status["last_run_total"] = state.TotalCount
		status["last_run_failed"] = state.FailedCount
		if state.FinishedAt != nil {
			status["last_run_finished_at"] = *state.FinishedAt
		}
	}

	return status
}
