package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{name: "zero", seconds: 0, want: "00:00:00"},
		{name: "one hour one minute one second", seconds: 3661, want: "01:01:01"},
		{name: "last second of a day", seconds: 86399, want: "23:59:59"},
		{name: "fraction is dropped", seconds: 59.99, want: "00:00:59"},
		{name: "hours do not wrap", seconds: 360000, want: "100:00:00"},
		{name: "negative clamps to zero", seconds: -5, want: "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHMS(tt.seconds))
		})
	}
}

func TestDeriveMetrics(t *testing.T) {
	for _, meters := range []float64{0, 1, 999.5, 1000, 123456.789, 4.2e6} {
		m := DeriveMetrics(RouteSummary{DistanceMeters: meters, DurationSeconds: 3661}, DefaultFuelRate)

		wantKm := meters / 1000
		assert.Equal(t, wantKm, m.DistanceKm, "distance for %v m", meters)
		assert.Equal(t, wantKm*0.08, m.FuelLiters, "fuel for %v m", meters)
		assert.Equal(t, "01:01:01", m.DurationHMS)
	}
}

func TestDeriveMetricsCustomFuelRate(t *testing.T) {
	m := DeriveMetrics(RouteSummary{DistanceMeters: 250000}, 0.1)
	assert.InDelta(t, 25.0, m.FuelLiters, 1e-9)

	fallback := DeriveMetrics(RouteSummary{DistanceMeters: 250000}, 0)
	assert.InDelta(t, 20.0, fallback.FuelLiters, 1e-9)
}
