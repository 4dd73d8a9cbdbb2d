package ports

import (
	"context"
	"trip-route-cli/internal/domain"
)

// Contract for resolving a free-text place name to coordinates.
type Geocoder interface {
	// Return the best match for text. Implementations return
	// *domain.NotFoundError when nothing matches.
	Geocode(ctx context.Context, text string) (domain.Place, error)
}
