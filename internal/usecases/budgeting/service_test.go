package budgeting

import (
	"errors"
	"testing"
	"time"

	"github.com/gmendes/agency-ops-api/infrastructure/repository/mocks"
	"github.com/gmendes/agency-ops-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func floatPtr(v float64) *float64 {
	return &v
}

func override(id, clientID string, accountID *string, amount float64, createdAt time.Time) *domain.BudgetOverride {
	return &domain.BudgetOverride{
		ID:        id,
		ClientID:  clientID,
		Platform:  domain.PlatformMeta,
		AccountID: accountID,
		Amount:    amount,
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Active:    true,
		CreatedAt: createdAt,
	}
}

func TestService_Resolve_Precedence(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	accountID := stringPtr("ACC001")

	tests := []struct {
		name           string
		overrides      []*domain.BudgetOverride
		client         *domain.Client
		wantAmount     float64
		wantSource     domain.BudgetSource
		wantOverrideID *string
	}{
		{
			name: "Escopo de conta vence escopo de cliente",
			overrides: []*domain.BudgetOverride{
				override("OVR002", "CLI001", nil, 5000, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)),
				override("OVR001", "CLI001", accountID, 2000, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)),
			},
			wantAmount:     2000,
			wantSource:     domain.BudgetSourceOverride,
			wantOverrideID: stringPtr("OVR001"),
		},
		{
			name: "Sobrepostos do mesmo escopo - vence o criado por último",
			overrides: []*domain.BudgetOverride{
				// Repositório devolve ordenado por created_at DESC
				override("OVR003", "CLI001", nil, 4000, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)),
				override("OVR002", "CLI001", nil, 3500, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)),
			},
			wantAmount:     4000,
			wantSource:     domain.BudgetSourceOverride,
			wantOverrideID: stringPtr("OVR003"),
		},
		{
			name: "Personalizado de outra conta não se aplica - cai no escopo de cliente",
			overrides: []*domain.BudgetOverride{
				override("OVR001", "CLI001", stringPtr("ACC999"), 9000, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)),
				override("OVR002", "CLI001", nil, 3000, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)),
			},
			wantAmount:     3000,
			wantSource:     domain.BudgetSourceOverride,
			wantOverrideID: stringPtr("OVR002"),
		},
		{
			name:      "Sem personalizado vigente - orçamento padrão do mês de calendário",
			overrides: nil,
			client: &domain.Client{
				ID:                "CLI001",
				Status:            domain.ClientStatusActive,
				MetaMonthlyBudget: floatPtr(3000),
			},
			wantAmount: 3000,
			wantSource: domain.BudgetSourceDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClientRepo := mocks.NewMockClientRepository(ctrl)
			mockOverrideRepo := mocks.NewMockBudgetOverrideRepository(ctrl)

			mockOverrideRepo.EXPECT().
				ListActiveByClientAndPlatform("CLI001", domain.PlatformMeta, date).
				Return(tt.overrides, nil)

			if tt.client != nil {
				mockClientRepo.EXPECT().
					GetByID("CLI001").
					Return(tt.client, nil)
			}

			service := NewService(mockClientRepo, mockOverrideRepo)

			budget, err := service.Resolve("CLI001", domain.PlatformMeta, accountID, date)
			require.NoError(t, err)
			require.NotNil(t, budget)

			assert.Equal(t, tt.wantAmount, budget.Amount)
			assert.Equal(t, tt.wantSource, budget.Source)

			if tt.wantOverrideID != nil {
				require.NotNil(t, budget.OverrideID)
				assert.Equal(t, *tt.wantOverrideID, *budget.OverrideID)
			} else {
				assert.Nil(t, budget.OverrideID)
				// Período padrão é o mês de calendário da data consultada
				assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), budget.PeriodStart)
				assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), budget.PeriodEnd)
			}
		})
	}
}

func TestService_Resolve_BudgetNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClientRepo := mocks.NewMockClientRepository(ctrl)
	mockOverrideRepo := mocks.NewMockBudgetOverrideRepository(ctrl)

	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	mockOverrideRepo.EXPECT().
		ListActiveByClientAndPlatform("CLI001", domain.PlatformGoogle, date).
		Return(nil, nil)

	// Cliente existe mas não tem orçamento padrão para o Google
	mockClientRepo.EXPECT().
		GetByID("CLI001").
		Return(&domain.Client{
			ID:                "CLI001",
			Status:            domain.ClientStatusActive,
			MetaMonthlyBudget: floatPtr(3000),
		}, nil)

	service := NewService(mockClientRepo, mockOverrideRepo)

	budget, err := service.Resolve("CLI001", domain.PlatformGoogle, nil, date)
	require.Error(t, err)
	assert.Nil(t, budget)
	assert.True(t, errors.Is(err, ErrBudgetNotConfigured))
}

func TestService_Resolve_ClientNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClientRepo := mocks.NewMockClientRepository(ctrl)
	mockOverrideRepo := mocks.NewMockBudgetOverrideRepository(ctrl)

	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	mockOverrideRepo.EXPECT().
		ListActiveByClientAndPlatform("CLI404", domain.PlatformMeta, date).
		Return(nil, nil)

	mockClientRepo.EXPECT().
		GetByID("CLI404").
		Return(nil, nil)

	service := NewService(mockClientRepo, mockOverrideRepo)

	_, err := service.Resolve("CLI404", domain.PlatformMeta, nil, date)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrClientNotFound))
}

func TestService_CreateOverride_Validation(t *testing.T) {
	tests := []struct {
		name     string
		override *domain.BudgetOverride
		wantErr  error
	}{
		{
			name: "Plataforma inválida",
			override: &domain.BudgetOverride{
				ClientID: "CLI001",
				Platform: "tiktok",
				Amount:   1000,
			},
			wantErr: ErrInvalidPlatform,
		},
		{
			name: "Valor não positivo",
			override: &domain.BudgetOverride{
				ClientID: "CLI001",
				Platform: domain.PlatformMeta,
				Amount:   0,
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "Data final anterior à inicial",
			override: &domain.BudgetOverride{
				ClientID:  "CLI001",
				Platform:  domain.PlatformMeta,
				Amount:    1000,
				StartDate: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			},
			wantErr: ErrInvalidPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClientRepo := mocks.NewMockClientRepository(ctrl)
			mockOverrideRepo := mocks.NewMockBudgetOverrideRepository(ctrl)

			service := NewService(mockClientRepo, mockOverrideRepo)

			created, err := service.CreateOverride(tt.override)
			require.Error(t, err)
			assert.Nil(t, created)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestService_CreateOverride_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClientRepo := mocks.NewMockClientRepository(ctrl)
	mockOverrideRepo := mocks.NewMockBudgetOverrideRepository(ctrl)

	mockClientRepo.EXPECT().
		GetByID("CLI001").
		Return(&domain.Client{ID: "CLI001", Status: domain.ClientStatusActive}, nil)

	mockOverrideRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil)

	service := NewService(mockClientRepo, mockOverrideRepo)

	created, err := service.CreateOverride(&domain.BudgetOverride{
		ClientID:  "CLI001",
		Platform:  domain.PlatformMeta,
		Amount:    1500,
		StartDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Active)
}

func TestService_DeactivateOverride_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClientRepo := mocks.NewMockClientRepository(ctrl)
	mockOverrideRepo := mocks.NewMockBudgetOverrideRepository(ctrl)

	mockOverrideRepo.EXPECT().
		Deactivate("OVR404").
		Return(false, nil)

	service := NewService(mockClientRepo, mockOverrideRepo)

	err := service.DeactivateOverride("OVR404")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOverrideNotFound))
}
