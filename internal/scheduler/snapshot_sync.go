package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gmendes/agency-ops-api/infrastructure/integrator/adplatform"
	"github.com/gmendes/agency-ops-api/infrastructure/repository"
	"github.com/gmendes/agency-ops-api/internal/config"
	"github.com/gmendes/agency-ops-api/internal/domain"
	"github.com/gmendes/agency-ops-api/internal/usecases/billing"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// SnapshotSyncConfig representa a configuração do agendador de snapshots de gastos
type SnapshotSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// SnapshotSyncService gerencia o agendamento e execução da sincronização de
// snapshots de gastos das contas ativas junto ao serviço de métricas
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotSyncConfig
	appConfig           *config.Config
	accountRepo         repository.AdAccountRepository
	snapshotRepo        repository.PeriodSnapshotRepository
	integrator          adplatform.SnapshotIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSnapshotSyncService cria uma nova instância do serviço de sincronização de snapshots
func NewSnapshotSyncService(
	accountRepo repository.AdAccountRepository,
	snapshotRepo repository.PeriodSnapshotRepository,
	integrator adplatform.SnapshotIntegrator,
	appConfig *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule:        appConfig.SnapshotSync.CronSchedule,
		LookbackDays:        appConfig.SnapshotSync.LookbackDays,
		RequestDelaySeconds: appConfig.SnapshotSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.SnapshotSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.SnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de gastos carregada")

	return &SnapshotSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		appConfig:    appConfig,
		accountRepo:  accountRepo,
		snapshotRepo: snapshotRepo,
		integrator:   integrator,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots de gastos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de snapshots")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllSnapshots sincroniza os snapshots de gastos de todas as contas ativas
func (s *SnapshotSyncService) syncAllSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de snapshots para todas as contas ativas")

	activeAccounts, err := s.getActiveAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização de snapshots")
		return
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização de snapshots")
		return
	}

	dates := s.getDatesToProcess()
	logrus.WithFields(logrus.Fields{
		"days":       s.config.LookbackDays,
		"start_date": dates[len(dates)-1].Format(time.DateOnly),
		"end_date":   dates[0].Format(time.DateOnly),
	}).Info("Período para sincronização de snapshots")

	s.processSnapshotsForDates(activeAccounts, dates)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(activeAccounts),
		"days":     s.config.LookbackDays,
	}).Info("Sincronização de snapshots concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// getActiveAccounts busca e filtra contas ativas
func (s *SnapshotSyncService) getActiveAccounts() ([]*domain.AdAccount, error) {
	activeAccounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		return nil, err
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta encontrada para sincronização de snapshots")
		return []*domain.AdAccount{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"active_accounts": len(activeAccounts),
	}).Info("Contas encontradas para sincronização de snapshots")

	return activeAccounts, nil
}

// getDatesToProcess cria um conjunto de datas para processar, começando em hoje
func (s *SnapshotSyncService) getDatesToProcess() []time.Time {
	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[i] = time.Now().AddDate(0, 0, -i)
	}
	return dates
}

// processSnapshotsForDates processa snapshots para cada conta e todas as suas datas
func (s *SnapshotSyncService) processSnapshotsForDates(accounts []*domain.AdAccount, dates []time.Time) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, account := range accounts {
		if account.ExternalID == nil || *account.ExternalID == "" {
			logrus.WithField("account_id", account.ID).Warn("Conta sem external_id. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *domain.AdAccount) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"account_id":   acc.ID,
				"external_id":  *acc.ExternalID,
				"account_name": acc.Name,
				"total_dates":  len(dates),
			}).Info("Processando snapshots de gastos para conta")

			s.processAccountForAllDates(acc, dates)
		}(account)
	}

	wg.Wait()
}

// processAccountForAllDates processa os snapshots de uma conta em todas as datas
func (s *SnapshotSyncService) processAccountForAllDates(acc *domain.AdAccount, dates []time.Time) {
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	for _, date := range dates {
		s.processAccountSnapshot(acc, date)

		// Aguardar antes da próxima requisição para evitar sobrecarga na API
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	s.checkAccountBalance(acc)
}

// processAccountSnapshot busca e persiste o snapshot de uma conta e data específicas
func (s *SnapshotSyncService) processAccountSnapshot(acc *domain.AdAccount, date time.Time) {
	logrus.WithFields(logrus.Fields{
		"account_id":   acc.ID,
		"external_id":  *acc.ExternalID,
		"account_name": acc.Name,
		"date":         date.Format(time.DateOnly),
	}).Info("Obtendo snapshot de gastos para conta e data")

	snapshot, err := s.integrator.FetchAccountSnapshot(acc, date)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  acc.ID,
			"external_id": *acc.ExternalID,
			"date":        date.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("Erro ao obter snapshot de gastos para conta e data")
		return
	}

	if snapshot == nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  acc.ID,
			"external_id": *acc.ExternalID,
			"date":        date.Format(time.DateOnly),
		}).Warn("Nenhum snapshot de gastos obtido para conta e data")
		return
	}

	if err := s.snapshotRepo.SaveOrUpdateSnapshot(snapshot); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  acc.ID,
			"external_id": *acc.ExternalID,
			"date":        date.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("Erro ao salvar snapshot de gastos no banco de dados")
		return
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  acc.ID,
		"external_id": *acc.ExternalID,
		"date":        date.Format(time.DateOnly),
	}).Info("Snapshot de gastos salvo com sucesso para conta e data")
}

// checkAccountBalance extrai e registra o saldo de contas pré-pagas, para que
// saldos baixos apareçam no log da sincronização diária
func (s *SnapshotSyncService) checkAccountBalance(acc *domain.AdAccount) {
	if acc.BillingModel != domain.BillingModelPrepaid {
		return
	}

	numeric, description, err := s.integrator.FetchAccountBalance(acc, time.Now())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": acc.ID,
			"error":      err.Error(),
		}).Warn("Erro ao obter saldo da conta pré-paga")
		return
	}

	balance, err := billing.ExtractBalance(acc, numeric, description)
	if err != nil {
		if errors.Is(err, billing.ErrBalanceUnavailable) {
			return
		}
		logrus.WithFields(logrus.Fields{
			"account_id": acc.ID,
			"error":      err.Error(),
		}).Warn("Saldo da conta pré-paga não pôde ser interpretado")
		return
	}

	entry := logrus.WithFields(logrus.Fields{
		"account_id": acc.ID,
		"amount":     balance.Amount,
		"source":     balance.Source,
	})

	if balance.Amount <= 0 {
		entry.Warn("Conta pré-paga sem saldo disponível")
		return
	}

	entry.Info("Saldo da conta pré-paga")
}

// TriggerManualSync inicia manualmente uma sincronização de snapshots
func (s *SnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots")
	go s.syncAllSnapshots()
}

// GetStatus retorna o status atual do agendador. Os carimbos de execução são
// lidos sob o mutex: a sincronização escreve neles em goroutine própria
func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	startedAt := s.lastSyncStartedAt
	completedAt := s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}
