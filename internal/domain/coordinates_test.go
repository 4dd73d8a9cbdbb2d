package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinatesValidate(t *testing.T) {
	valid := []Coordinates{
		{Lon: -70.6483, Lat: -33.4569},
		{Lon: 180, Lat: 90},
		{Lon: -180, Lat: -90},
	}
	for _, c := range valid {
		assert.NoError(t, c.Validate(), "%v", c)
	}

	invalid := []Coordinates{
		{Lon: 0, Lat: 90.5},
		{Lon: 181, Lat: 0},
		{Lon: math.NaN(), Lat: 0},
		{Lon: 0, Lat: math.Inf(1)},
	}
	for _, c := range invalid {
		assert.Error(t, c.Validate(), "%v", c)
	}
}

func TestCoordsToListIsLonLat(t *testing.T) {
	c := Coordinates{Lon: -70.6, Lat: -33.4}
	assert.Equal(t, []float64{-70.6, -33.4}, c.CoordsToList())
}

func TestStraightLineKm(t *testing.T) {
	santiago := Coordinates{Lon: -70.66, Lat: -33.45}
	valparaiso := Coordinates{Lon: -71.62, Lat: -33.05}

	assert.InDelta(t, 0, santiago.StraightLineKm(santiago), 1e-9)
	assert.InDelta(t, 100, santiago.StraightLineKm(valparaiso), 5)
	assert.InDelta(t, santiago.StraightLineKm(valparaiso), valparaiso.StraightLineKm(santiago), 1e-9)
}
