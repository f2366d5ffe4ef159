package handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryDate_ExplicitDateUsesAgencyTimezone(t *testing.T) {
	location, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/v1/pacing/report?date=2025-06-15", nil)

	date, err := queryDate(r, location)
	require.NoError(t, err)

	// "2025-06-15" é o dia 15 no calendário da agência: meia-noite no fuso da
	// agência, não em UTC. Convertida para o fuso, a data não pode recuar um dia
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, location), date)

	y, m, d := date.In(location).Date()
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.June, m)
	assert.Equal(t, 15, d)
}

func TestQueryDate_MissingDateDefaultsToTodayInAgencyTimezone(t *testing.T) {
	location, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/v1/pacing/report", nil)

	date, err := queryDate(r, location)
	require.NoError(t, err)

	assert.Equal(t, location, date.Location())
	assert.Zero(t, date.Hour())
	assert.Zero(t, date.Minute())
}

func TestQueryDate_InvalidDate(t *testing.T) {
	location, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/v1/pacing/report?date=15/06/2025", nil)

	_, err = queryDate(r, location)
	assert.Error(t, err)
}
