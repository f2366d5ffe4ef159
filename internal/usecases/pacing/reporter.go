package pacing

import (
	"errors"
	"time"

	"github.com/gmendes/agency-ops-api/infrastructure/repository"
	"github.com/gmendes/agency-ops-api/internal/domain"
	"github.com/gmendes/agency-ops-api/internal/usecases/budgeting"
	"github.com/gmendes/agency-ops-api/internal/usecases/suppressing"
	"github.com/sirupsen/logrus"
)

// Erros de consulta de pacing
var (
	ErrAccountNotFound = errors.New("conta não encontrada")
)

// Motivos de indisponibilidade expostos no relatório
const (
	UnavailableBudgetNotConfigured = "orçamento não configurado"
	UnavailableSnapshotMissing     = "snapshot de gastos indisponível"
)

// Reporter monta a visão diária de pacing consumida pelo dashboard: a
// recomendação persistida pela última revisão, a saúde de entrega e a marca de
// supressão do dia. Contas sem recomendação entram marcadas como
// indisponíveis com o motivo, nunca derrubam o relatório inteiro.
type Reporter interface {
	AccountPacing(accountID string, date time.Time) (*domain.PacingReportEntry, error)
	Report(date time.Time) ([]*domain.PacingReportEntry, error)
}

type ReportService struct {
	clientRepo         repository.ClientRepository
	accountRepo        repository.AdAccountRepository
	recommendationRepo repository.PacingRecommendationRepository
	healthRepo         repository.DeliveryHealthRepository
	budgetResolver     budgeting.BudgetResolver
	suppressionTracker suppressing.SuppressionTracker
}

func NewReportService(
	clientRepo repository.ClientRepository,
	accountRepo repository.AdAccountRepository,
	recommendationRepo repository.PacingRecommendationRepository,
	healthRepo repository.DeliveryHealthRepository,
	budgetResolver budgeting.BudgetResolver,
	suppressionTracker suppressing.SuppressionTracker,
) Reporter {
	return &ReportService{
		clientRepo:         clientRepo,
		accountRepo:        accountRepo,
		recommendationRepo: recommendationRepo,
		healthRepo:         healthRepo,
		budgetResolver:     budgetResolver,
		suppressionTracker: suppressionTracker,
	}
}

func (s *ReportService) AccountPacing(accountID string, date time.Time) (*domain.PacingReportEntry, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	return s.buildEntry(account, date)
}

func (s *ReportService) Report(date time.Time) ([]*domain.PacingReportEntry, error) {
	clients, err := s.clientRepo.ListClients([]domain.ClientStatus{domain.ClientStatusActive})
	if err != nil {
		return nil, err
	}

	activeClients := make(map[string]bool, len(clients))
	for _, client := range clients {
		activeClients[client.ID] = true
	}

	accounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.PacingReportEntry, 0, len(accounts))
	for _, account := range accounts {
		if !activeClients[account.ClientID] {
			continue
		}

		entry, err := s.buildEntry(account, date)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"date":       date.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("Erro ao montar entrada do relatório de pacing para a conta")

			entries = append(entries, &domain.PacingReportEntry{
				Account:        *account,
				Unavailable:    true,
				UnavailableFor: err.Error(),
			})
			continue
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *ReportService) buildEntry(account *domain.AdAccount, date time.Time) (*domain.PacingReportEntry, error) {
	entry := &domain.PacingReportEntry{Account: *account}

	recommendation, err := s.recommendationRepo.GetByAccountIDAndDate(account.ID, date)
	if err != nil {
		return nil, err
	}

	health, err := s.healthRepo.GetByAccountIDAndDate(account.ID, date)
	if err != nil {
		return nil, err
	}
	entry.Health = health

	suppressed, err := s.suppressionTracker.IsSuppressedOn(account.ClientID, account.Platform, date)
	if err != nil {
		return nil, err
	}
	entry.Suppressed = suppressed

	if recommendation == nil {
		entry.Unavailable = true
		entry.UnavailableFor = s.unavailableReason(account, date)
		return entry, nil
	}

	entry.Recommendation = recommendation
	return entry, nil
}

// unavailableReason distingue ausência de orçamento de ausência de snapshot,
// na mesma ordem em que a revisão desiste da conta
func (s *ReportService) unavailableReason(account *domain.AdAccount, date time.Time) string {
	_, err := s.budgetResolver.Resolve(account.ClientID, account.Platform, &account.ID, date)
	if err != nil && errors.Is(err, budgeting.ErrBudgetNotConfigured) {
		return UnavailableBudgetNotConfigured
	}
	return UnavailableSnapshotMissing
}
