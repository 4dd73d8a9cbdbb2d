package services

import (
	"context"
	"errors"
	"testing"
	"trip-route-cli/internal/adapters/routing"
	"trip-route-cli/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock() *routing.MockProvider {
	return routing.NewMockProvider(
		[]routing.MockPlace{
			{Name: "Santiago, Chile", Lon: -70.6483, Lat: -33.4569},
			{Name: "Valparaiso, Chile", Lon: -71.6197, Lat: -33.0472},
		},
		domain.RouteSummary{
			DistanceMeters:  116543.2,
			DurationSeconds: 5025.7,
			Steps: []domain.RouteStep{
				{Instruction: "Head west on Alameda"},
				{Instruction: "Arrive at Valparaiso"},
			},
		},
	)
}

func TestTripEvaluatorEvaluate(t *testing.T) {
	mock := newMock()
	var stages []Stage
	ev := &TripEvaluator{
		Geocoder: mock,
		Router:   mock,
		FuelRate: domain.DefaultFuelRate,
		Progress: func(s Stage) { stages = append(stages, s) },
	}

	report, err := ev.Evaluate(context.Background(), " Santiago, Chile ", "Valparaiso, Chile")
	require.NoError(t, err)

	assert.Equal(t, 2, mock.GeocodeCalls)
	assert.Equal(t, 1, mock.RouteCalls)
	assert.Equal(t, []Stage{StageGeocoding, StageRouting}, stages)

	assert.InDelta(t, 116.5432, report.Metrics.DistanceKm, 1e-9)
	assert.InDelta(t, 9.323456, report.Metrics.FuelLiters, 1e-9)
	assert.Equal(t, "01:23:45", report.Metrics.DurationHMS)
	assert.InDelta(t, 100, report.Metrics.StraightLineKm, 10)
	assert.Len(t, report.Route.Steps, 2)
}

func TestTripEvaluatorUnknownPlaceSkipsRouting(t *testing.T) {
	mock := newMock()
	ev := &TripEvaluator{Geocoder: mock, Router: mock}

	_, err := ev.Evaluate(context.Background(), "Santiago, Chile", "Atlantis")

	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf), "got %v", err)
	assert.Equal(t, "Atlantis", nf.Query)
	assert.Zero(t, mock.RouteCalls)
}

func TestTripEvaluatorPropagatesTransportError(t *testing.T) {
	mock := newMock()
	mock.RouteErr = &domain.TransportError{Op: "directions", StatusCode: 503}
	ev := &TripEvaluator{Geocoder: mock, Router: mock}

	_, err := ev.Evaluate(context.Background(), "Santiago, Chile", "Valparaiso, Chile")

	var te *domain.TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, 503, te.StatusCode)
}

func TestTripEvaluatorRejectsBlankInput(t *testing.T) {
	mock := newMock()
	ev := &TripEvaluator{Geocoder: mock, Router: mock}

	_, err := ev.Evaluate(context.Background(), "  ", "Valparaiso, Chile")
	assert.Error(t, err)
	assert.Zero(t, mock.GeocodeCalls)
}
