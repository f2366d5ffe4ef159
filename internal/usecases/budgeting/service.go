package budgeting

import (
	"time"

	"github.com/gmendes/agency-ops-api/infrastructure/repository"
	"github.com/gmendes/agency-ops-api/internal/domain"
	"github.com/gmendes/agency-ops-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// BudgetResolver resolve qual definição de orçamento vale para uma conta de um
// cliente em uma data, e expõe as operações de CRUD dos orçamentos
// personalizados usadas pelos operadores.
type BudgetResolver interface {
	Resolve(clientID string, platform domain.Platform, accountID *string, date time.Time) (*domain.EffectiveBudget, error)
	ListOverrides(clientID string) ([]*domain.BudgetOverride, error)
	CreateOverride(override *domain.BudgetOverride) (*domain.BudgetOverride, error)
	DeactivateOverride(overrideID string) error
}

type Service struct {
	clientRepo   repository.ClientRepository
	overrideRepo repository.BudgetOverrideRepository
}

func NewService(
	clientRepo repository.ClientRepository,
	overrideRepo repository.BudgetOverrideRepository,
) BudgetResolver {
	return &Service{
		clientRepo:   clientRepo,
		overrideRepo: overrideRepo,
	}
}

// Resolve aplica a precedência de orçamentos: personalizado com escopo de
// conta > personalizado com escopo de cliente > orçamento mensal padrão.
// Entre personalizados sobrepostos do mesmo escopo vence o criado por último
// (configuração mais recente). Sem nada configurado, falha com
// ErrBudgetNotConfigured em vez de assumir zero.
func (s *Service) Resolve(
	clientID string,
	platform domain.Platform,
	accountID *string,
	date time.Time,
) (*domain.EffectiveBudget, error) {
	overrides, err := s.overrideRepo.ListActiveByClientAndPlatform(clientID, platform, date)
	if err != nil {
		return nil, err
	}

	// O repositório já ordena por created_at DESC, então o primeiro match de
	// cada escopo é o desempate correto
	var clientScoped *domain.BudgetOverride
	for _, override := range overrides {
		if !override.Covers(date) {
			continue
		}

		switch override.Scope() {
		case domain.OverrideScopeAccount:
			if accountID != nil && *override.AccountID == *accountID {
				return effectiveFromOverride(override), nil
			}
		case domain.OverrideScopeClient:
			if clientScoped == nil {
				clientScoped = override
			}
		}
	}

	if clientScoped != nil {
		return effectiveFromOverride(clientScoped), nil
	}

	return s.resolveDefault(clientID, platform, date)
}

func (s *Service) resolveDefault(clientID string, platform domain.Platform, date time.Time) (*domain.EffectiveBudget, error) {
	client, err := s.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}

	if client == nil {
		return nil, NewBudgetError(ErrClientNotFound, clientID, string(platform), "")
	}

	amount := client.DefaultMonthlyBudget(platform)
	if amount == nil {
		logrus.WithFields(logrus.Fields{
			"client_id": clientID,
			"platform":  platform,
		}).Warn("budgeting: cliente sem orçamento padrão para a plataforma")

		return nil, NewBudgetError(ErrBudgetNotConfigured, clientID, string(platform), "")
	}

	// Orçamento padrão vale para o mês de calendário da data consultada
	return &domain.EffectiveBudget{
		Amount:      *amount,
		PeriodStart: utils.FirstDayOfMonth(date),
		PeriodEnd:   utils.LastDayOfMonth(date),
		Source:      domain.BudgetSourceDefault,
	}, nil
}

func (s *Service) ListOverrides(clientID string) ([]*domain.BudgetOverride, error) {
	return s.overrideRepo.ListByClientID(clientID)
}

func (s *Service) CreateOverride(override *domain.BudgetOverride) (*domain.BudgetOverride, error) {
	if !override.Platform.Valid() {
		return nil, NewBudgetError(ErrInvalidPlatform, override.ClientID, string(override.Platform), "")
	}

	if override.Amount <= 0 {
		return nil, NewBudgetError(ErrInvalidAmount, override.ClientID, string(override.Platform), "valor deve ser maior que zero")
	}

	if override.EndDate.Before(override.StartDate) {
		return nil, NewBudgetError(ErrInvalidPeriod, override.ClientID, string(override.Platform), "data final anterior à inicial")
	}

	client, err := s.clientRepo.GetByID(override.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, NewBudgetError(ErrClientNotFound, override.ClientID, string(override.Platform), "")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	override.ID = id
	override.Active = true

	if err := s.overrideRepo.Create(override); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"override_id": override.ID,
		"client_id":   override.ClientID,
		"platform":    override.Platform,
		"start_date":  override.StartDate.Format(time.DateOnly),
		"end_date":    override.EndDate.Format(time.DateOnly),
	}).Info("budgeting: orçamento personalizado criado")

	return override, nil
}

func (s *Service) DeactivateOverride(overrideID string) error {
	found, err := s.overrideRepo.Deactivate(overrideID)
	if err != nil {
		return err
	}

	if !found {
		return ErrOverrideNotFound
	}

	return nil
}

func effectiveFromOverride(override *domain.BudgetOverride) *domain.EffectiveBudget {
	id := override.ID
	return &domain.EffectiveBudget{
		Amount:      override.Amount,
		PeriodStart: override.StartDate,
		PeriodEnd:   override.EndDate,
		Source:      domain.BudgetSourceOverride,
		OverrideID:  &id,
	}
}
