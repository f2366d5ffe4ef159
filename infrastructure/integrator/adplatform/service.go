package adplatform

import (
	"time"

	bridgedomain "github.com/gmendes/agency-ops-api/infrastructure/integrator/adplatform/domain"
	"github.com/gmendes/agency-ops-api/infrastructure/integrator/adplatform/bridgeclient"
	"github.com/gmendes/agency-ops-api/internal/config"
	"github.com/gmendes/agency-ops-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// SnapshotIntegrator é a fonte de dados de gasto/campanha já normalizados.
// Os clientes reais das plataformas de anúncio vivem atrás do metrics bridge.
type SnapshotIntegrator interface {
	FetchAccountSnapshot(account *domain.AdAccount, date time.Time) (*domain.PeriodSnapshot, error)
	FetchAccountBalance(account *domain.AdAccount, date time.Time) (balance *float64, description *string, err error)
}

type Integrator struct {
	cfg    *config.Config
	Client bridgeclient.Client
}

func New(cfg *config.Config, client bridgeclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchAccountSnapshot busca o snapshot da conta no bridge e converte para o
// formato de domínio. Retorna nil sem erro quando não há dados para a data.
func (s *Integrator) FetchAccountSnapshot(account *domain.AdAccount, date time.Time) (*domain.PeriodSnapshot, error) {
	if account.ExternalID == nil || *account.ExternalID == "" {
		logrus.WithField("account_id", account.ID).Warn("adplatform: conta sem external_id, snapshot indisponível")
		return nil, nil
	}

	resp, err := s.Client.GetAccountSnapshot(*account.ExternalID, string(account.Platform), date)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  account.ID,
			"external_id": *account.ExternalID,
			"date":        date.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("adplatform: falha ao buscar snapshot no metrics bridge")
		return nil, err
	}

	if resp == nil {
		return nil, nil
	}

	return factoryPeriodSnapshot(account.ID, date, resp), nil
}

// FetchAccountBalance retorna o saldo bruto informado pelo bridge para contas
// pré-pagas: valor numérico quando disponível e/ou descrição em texto livre
func (s *Integrator) FetchAccountBalance(account *domain.AdAccount, date time.Time) (*float64, *string, error) {
	if account.ExternalID == nil || *account.ExternalID == "" {
		return nil, nil, nil
	}

	resp, err := s.Client.GetAccountSnapshot(*account.ExternalID, string(account.Platform), date)
	if err != nil {
		return nil, nil, err
	}

	if resp == nil {
		return nil, nil, nil
	}

	return resp.Balance, resp.BalanceDescription, nil
}

func factoryPeriodSnapshot(accountID string, date time.Time, resp *bridgedomain.AccountSnapshot) *domain.PeriodSnapshot {
	snapshot := &domain.PeriodSnapshot{
		AccountID:          accountID,
		Date:               date,
		AmountSpent:        resp.PeriodSpend,
		DailySpend:         resp.DaySpend,
		CurrentDailyBudget: resp.DailyBudget,
		FetchedAt:          time.Now(),
	}

	// Contadores de campanha só existem quando o bridge conseguiu listar as
	// campanhas; a ausência degrada a saúde de entrega para no_data
	if resp.Campaigns != nil {
		active := 0
		unserved := 0
		campaigns := make([]domain.CampaignDelivery, 0, len(resp.Campaigns))

		for _, c := range resp.Campaigns {
			campaigns = append(campaigns, domain.CampaignDelivery{
				CampaignID: c.ID,
				Name:       c.Name,
				Status:     c.Status,
				Delivering: c.Delivering,
				Spend:      c.Spend,
			})

			active++
			if !c.Delivering {
				unserved++
			}
		}

		snapshot.ActiveCampaignCount = &active
		snapshot.UnservedCampaignCount = &unserved
		snapshot.Campaigns = campaigns
	}

	return snapshot
}
