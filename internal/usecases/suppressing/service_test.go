package suppressing

import (
	"testing"
	"time"

	"github.com/gmendes/agency-ops-api/infrastructure/repository/mocks"
	"github.com/gmendes/agency-ops-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_MarkSuppressed_UsesAgencyCalendarDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMarkRepo := mocks.NewMockSuppressionMarkRepository(ctrl)

	location, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// 01:30 UTC de 16 de junho ainda é 15 de junho em São Paulo (UTC-3)
	now := time.Date(2025, 6, 16, 1, 30, 0, 0, time.UTC)
	service := &Service{
		markRepo: mockMarkRepo,
		location: location,
		now:      func() time.Time { return now },
	}

	expectedDate := time.Date(2025, 6, 15, 0, 0, 0, 0, location)

	mockMarkRepo.EXPECT().
		Save(&domain.SuppressionMark{
			ClientID: "CLI001",
			Platform: domain.PlatformMeta,
			Date:     expectedDate,
		}).
		Return(nil)

	err = service.MarkSuppressed("CLI001", domain.PlatformMeta)
	assert.NoError(t, err)
}

func TestService_IsSuppressed_ExpiresAtDayBoundary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMarkRepo := mocks.NewMockSuppressionMarkRepository(ctrl)

	location, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	markDay := time.Date(2025, 6, 15, 0, 0, 0, 0, location)
	nextDay := time.Date(2025, 6, 16, 0, 0, 0, 0, location)

	current := time.Date(2025, 6, 15, 10, 0, 0, 0, location)
	service := &Service{
		markRepo: mockMarkRepo,
		location: location,
		now:      func() time.Time { return current },
	}

	// No dia da marca a supressão vale
	mockMarkRepo.EXPECT().
		Exists("CLI001", domain.PlatformMeta, markDay).
		Return(true, nil)

	suppressed, err := service.IsSuppressed("CLI001", domain.PlatformMeta)
	require.NoError(t, err)
	assert.True(t, suppressed)

	// No dia seguinte a marca de ontem é inerte: a consulta usa a data nova
	current = time.Date(2025, 6, 16, 8, 0, 0, 0, location)

	mockMarkRepo.EXPECT().
		Exists("CLI001", domain.PlatformMeta, nextDay).
		Return(false, nil)

	suppressed, err = service.IsSuppressed("CLI001", domain.PlatformMeta)
	require.NoError(t, err)
	assert.False(t, suppressed)
}

func TestService_IsSuppressedOn_NormalizesToAgencyTimezone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMarkRepo := mocks.NewMockSuppressionMarkRepository(ctrl)

	location, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	service := &Service{
		markRepo: mockMarkRepo,
		location: location,
		now:      time.Now,
	}

	queried := time.Date(2025, 6, 16, 1, 30, 0, 0, time.UTC)
	expectedDate := time.Date(2025, 6, 15, 0, 0, 0, 0, location)

	mockMarkRepo.EXPECT().
		Exists("CLI001", domain.PlatformGoogle, expectedDate).
		Return(true, nil)

	suppressed, err := service.IsSuppressedOn("CLI001", domain.PlatformGoogle, queried)
	require.NoError(t, err)
	assert.True(t, suppressed)
}
