package domain

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

// Mean Earth radius used for straight-line distances.
const earthRadiusKm = 6371.0088

// Immutable geographic coordinates (longitude, latitude).
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

func (c Coordinates) latLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.Lat, c.Lon)
}

// Validate rejects coordinates outside lat [-90, 90] / lon [-180, 180].
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lon, 0) {
		return fmt.Errorf("coordinates (%v, %v) are not finite", c.Lat, c.Lon)
	}
	if !c.latLng().IsValid() {
		return fmt.Errorf("coordinates out of range: lat=%v lon=%v", c.Lat, c.Lon)
	}
	return nil
}

// StraightLineKm returns the great-circle distance between c and other.
func (c Coordinates) StraightLineKm(other Coordinates) float64 {
	return c.latLng().Distance(other.latLng()).Radians() * earthRadiusKm
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lon)
}

// A geocoded place: the text that was searched and where it resolved to.
type Place struct {
	Query       string
	Label       string
	Coordinates Coordinates
}
