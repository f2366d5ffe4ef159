package delivering

import (
	"time"

	"github.com/gmendes/agency-ops-api/internal/domain"
	"github.com/gmendes/agency-ops-api/pkg/utils"
)

// Classify deriva o estado de entrega a partir dos contadores de campanhas do
// dia. Os estados são exaustivos e a primeira condição satisfeita vence.
// Contadores ausentes significam que a coleta falhou ou não há snapshot hoje.
func Classify(activeCampaignCount, unservedCampaignCount *int) domain.DeliveryStatus {
	switch {
	case activeCampaignCount == nil || unservedCampaignCount == nil:
		return domain.DeliveryStatusNoData
	case *activeCampaignCount == 0:
		return domain.DeliveryStatusNoCampaigns
	case *unservedCampaignCount == 0:
		return domain.DeliveryStatusAllRunning
	case *unservedCampaignCount == *activeCampaignCount:
		return domain.DeliveryStatusNoneRunning
	default:
		return domain.DeliveryStatusPartialRunning
	}
}

// BuildHealth monta a classificação diária da conta a partir do snapshot,
// carregando os detalhes de campanha usados na derivação
func BuildHealth(accountID string, date time.Time, snapshot *domain.PeriodSnapshot) *domain.DeliveryHealth {
	health := &domain.DeliveryHealth{
		AccountID: accountID,
		Date:      utils.TruncateToDate(date),
	}

	if snapshot == nil {
		health.Status = domain.DeliveryStatusNoData
		return health
	}

	health.Status = Classify(snapshot.ActiveCampaignCount, snapshot.UnservedCampaignCount)
	health.Campaigns = snapshot.Campaigns

	if snapshot.ActiveCampaignCount != nil {
		health.ActiveCampaignCount = *snapshot.ActiveCampaignCount
	}
	if snapshot.UnservedCampaignCount != nil {
		health.UnservedCampaignCount = *snapshot.UnservedCampaignCount
	}

	return health
}
