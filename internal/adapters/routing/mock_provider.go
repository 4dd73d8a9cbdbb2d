package routing

import (
	"context"
	"strings"
	"trip-route-cli/internal/domain"
)

type MockPlace struct {
	Name     string
	Lon, Lat float64
}

// MockProvider serves fixed geocode and route answers. Unknown place names
// produce *domain.NotFoundError. GeocodeErr and RouteErr, when set, are
// returned instead of the fixed answers. Calls are counted so tests can assert
// that no request was made.
type MockProvider struct {
	places map[string]domain.Coordinates
	route  domain.RouteSummary

	GeocodeErr   error
	RouteErr     error
	GeocodeCalls int
	RouteCalls   int
}

func NewMockProvider(places []MockPlace, route domain.RouteSummary) *MockProvider {
	m := make(map[string]domain.Coordinates, len(places))
	for _, p := range places {
		m[strings.ToLower(p.Name)] = domain.Coordinates{Lon: p.Lon, Lat: p.Lat}
	}
	return &MockProvider{places: m, route: route}
}

func (p *MockProvider) Geocode(ctx context.Context, text string) (domain.Place, error) {
	p.GeocodeCalls++
	if p.GeocodeErr != nil {
		return domain.Place{}, p.GeocodeErr
	}

	c, ok := p.places[strings.ToLower(strings.TrimSpace(text))]
	if !ok {
		return domain.Place{}, &domain.NotFoundError{Query: text}
	}
	return domain.Place{Query: text, Label: text, Coordinates: c}, nil
}

func (p *MockProvider) Route(ctx context.Context, from, to domain.Coordinates) (domain.RouteSummary, error) {
	p.RouteCalls++
	if p.RouteErr != nil {
		return domain.RouteSummary{}, p.RouteErr
	}
	return p.route, nil
}
