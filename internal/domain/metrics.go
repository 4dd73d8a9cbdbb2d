package domain

import (
	"fmt"
	"math"
)

// DefaultFuelRate is the fuel consumption in liters per kilometer (8 L / 100 km).
const DefaultFuelRate = 0.08

// Display values derived from a RouteSummary.
type TripMetrics struct {
	DistanceKm     float64
	DurationHMS    string
	FuelLiters     float64
	StraightLineKm float64
}

// DeriveMetrics converts a route summary into display metrics.
// A non-positive fuelRate falls back to DefaultFuelRate.
func DeriveMetrics(summary RouteSummary, fuelRate float64) TripMetrics {
	if fuelRate <= 0 || math.IsNaN(fuelRate) {
		fuelRate = DefaultFuelRate
	}

	km := summary.DistanceMeters / 1000
	return TripMetrics{
		DistanceKm:  km,
		DurationHMS: FormatHMS(summary.DurationSeconds),
		FuelLiters:  km * fuelRate,
	}
}

// FormatHMS renders seconds as zero-padded HH:MM:SS, dropping fractions.
// Hours are not wrapped at 24.
func FormatHMS(seconds float64) string {
	if seconds <= 0 || math.IsNaN(seconds) {
		seconds = 0
	}

	total := int64(math.Floor(seconds))
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
