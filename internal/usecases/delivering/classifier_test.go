package delivering

import (
	"testing"
	"time"

	"github.com/gmendes/agency-ops-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		active   *int
		unserved *int
		want     domain.DeliveryStatus
	}{
		{
			name:     "Contadores ausentes - sem dados",
			active:   nil,
			unserved: nil,
			want:     domain.DeliveryStatusNoData,
		},
		{
			name:     "Apenas um contador ausente - sem dados",
			active:   intPtr(3),
			unserved: nil,
			want:     domain.DeliveryStatusNoData,
		},
		{
			name:     "Nenhuma campanha ativa",
			active:   intPtr(0),
			unserved: intPtr(0),
			want:     domain.DeliveryStatusNoCampaigns,
		},
		{
			name:     "Todas entregando",
			active:   intPtr(4),
			unserved: intPtr(0),
			want:     domain.DeliveryStatusAllRunning,
		},
		{
			name:     "Nenhuma entregando",
			active:   intPtr(4),
			unserved: intPtr(4),
			want:     domain.DeliveryStatusNoneRunning,
		},
		{
			name:     "Entrega parcial",
			active:   intPtr(4),
			unserved: intPtr(2),
			want:     domain.DeliveryStatusPartialRunning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.active, tt.unserved))
		})
	}
}

func TestDeliveryStatus_Severity(t *testing.T) {
	// Ordem de gravidade usada para ordenar o relatório: pior primeiro
	assert.Greater(t, domain.DeliveryStatusNoneRunning.Severity(), domain.DeliveryStatusPartialRunning.Severity())
	assert.Greater(t, domain.DeliveryStatusPartialRunning.Severity(), domain.DeliveryStatusNoCampaigns.Severity())
	assert.Greater(t, domain.DeliveryStatusNoCampaigns.Severity(), domain.DeliveryStatusNoData.Severity())
	assert.Greater(t, domain.DeliveryStatusNoData.Severity(), domain.DeliveryStatusAllRunning.Severity())
}

func TestBuildHealth(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Sem snapshot - saúde sem dados", func(t *testing.T) {
		health := BuildHealth("ACC001", date, nil)

		require.NotNil(t, health)
		assert.Equal(t, "ACC001", health.AccountID)
		assert.Equal(t, domain.DeliveryStatusNoData, health.Status)
		assert.Zero(t, health.ActiveCampaignCount)
	})

	t.Run("Snapshot com campanhas - carrega contadores e detalhes", func(t *testing.T) {
		snapshot := &domain.PeriodSnapshot{
			AccountID:             "ACC001",
			Date:                  date,
			ActiveCampaignCount:   intPtr(3),
			UnservedCampaignCount: intPtr(1),
			Campaigns: []domain.CampaignDelivery{
				{CampaignID: "CMP001", Name: "Conversão", Status: "ACTIVE", Delivering: true, Spend: 45.10},
				{CampaignID: "CMP002", Name: "Remarketing", Status: "ACTIVE", Delivering: true, Spend: 30.00},
				{CampaignID: "CMP003", Name: "Institucional", Status: "ACTIVE", Delivering: false, Spend: 0},
			},
		}

		health := BuildHealth("ACC001", date, snapshot)

		require.NotNil(t, health)
		assert.Equal(t, domain.DeliveryStatusPartialRunning, health.Status)
		assert.Equal(t, 3, health.ActiveCampaignCount)
		assert.Equal(t, 1, health.UnservedCampaignCount)
		assert.Len(t, health.Campaigns, 3)
	})
}
