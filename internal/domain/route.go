package domain

// A single maneuver of a driving route.
type RouteStep struct {
	Instruction     string
	Name            string
	DistanceMeters  float64
	DurationSeconds float64
}

// Represents the route returned by the directions provider for one trip.
// Steps are in driving order. Geometry holds the route line as returned by
// the provider and may be empty.
type RouteSummary struct {
	DistanceMeters  float64
	DurationSeconds float64
	Steps           []RouteStep
	Geometry        []Coordinates
}

// Everything the presenter needs for one evaluated trip.
type TripReport struct {
	Origin      Place
	Destination Place
	Route       RouteSummary
	Metrics     TripMetrics
}
