package ports

import (
	"context"
	"trip-route-cli/internal/domain"
)

// Contract for retrieving a driving route between two coordinates.
type RouteProvider interface {
	Route(ctx context.Context, from, to domain.Coordinates) (domain.RouteSummary, error)
}
