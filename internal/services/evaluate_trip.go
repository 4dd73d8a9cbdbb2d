package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"trip-route-cli/internal/domain"
	"trip-route-cli/internal/platform/obs"
	"trip-route-cli/internal/ports"

	"go.uber.org/zap"
)

// Stage identifies a step of a trip evaluation for progress reporting.
type Stage int

const (
	StageGeocoding Stage = iota
	StageRouting
)

func (s Stage) String() string {
	switch s {
	case StageGeocoding:
		return "Geocoding…"
	case StageRouting:
		return "Requesting route…"
	default:
		return "Working…"
	}
}

// TripEvaluator turns two place names into a TripReport:
// geocode both ends, fetch the route, derive metrics.
type TripEvaluator struct {
	Geocoder ports.Geocoder
	Router   ports.RouteProvider
	FuelRate float64
	Log      *zap.Logger
	// Progress, when set, is called before each stage.
	Progress func(Stage)
}

func (e *TripEvaluator) Evaluate(
	ctx context.Context,
	origin string,
	destination string,
) (_ *domain.TripReport, err error) {
	if e.Geocoder == nil || e.Router == nil {
		return nil, errors.New("evaluate trip: geocoder and router are required")
	}

	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)
	if origin == "" || destination == "" {
		return nil, errors.New("evaluate trip: origin and destination must be non-empty")
	}

	ctx = obs.WithRequestID(ctx)
	defer obs.Time(ctx, e.Log, "trip.Evaluate")(&err)

	e.progress(StageGeocoding)
	from, err := e.Geocoder.Geocode(ctx, origin)
	if err != nil {
		return nil, fmt.Errorf("geocode origin %q: %w", origin, err)
	}

	to, err := e.Geocoder.Geocode(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("geocode destination %q: %w", destination, err)
	}

	e.progress(StageRouting)
	route, err := e.Router.Route(ctx, from.Coordinates, to.Coordinates)
	if err != nil {
		return nil, fmt.Errorf("route %q -> %q: %w", origin, destination, err)
	}

	metrics := domain.DeriveMetrics(route, e.FuelRate)
	metrics.StraightLineKm = from.Coordinates.StraightLineKm(to.Coordinates)

	return &domain.TripReport{
		Origin:      from,
		Destination: to,
		Route:       route,
		Metrics:     metrics,
	}, nil
}

func (e *TripEvaluator) progress(s Stage) {
	if e.Progress != nil {
		e.Progress(s)
	}
}
