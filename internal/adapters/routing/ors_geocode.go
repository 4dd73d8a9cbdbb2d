package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"trip-route-cli/internal/domain"
	"trip-route-cli/internal/platform/obs"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Label string `json:"label"`
		} `json:"properties"`
	} `json:"features"`
}

// Geocode resolves a place name using OpenRouteService (/geocode/search),
// keeping only the first match.
func (o *ORSProvider) Geocode(ctx context.Context, text string) (_ domain.Place, err error) {
	defer obs.Time(ctx, o.log, "ors.Geocode")(&err)

	norm := o.normalize(text)
	if norm == "" {
		return domain.Place{}, errors.New("geocode: place name must be non-empty")
	}

	ctx, cancel := context.WithTimeout(ctx, o.geocodeTimeout)
	defer cancel()

	req, err := o.newRequest(ctx, http.MethodGet, o.baseURL+"/geocode/search", nil)
	if err != nil {
		return domain.Place{}, fmt.Errorf("geocode request: %w", err)
	}

	q := req.URL.Query()
	q.Set("text", norm)
	q.Set("size", "1")
	if o.language != "" {
		q.Set("language", o.language)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := o.do("geocode", req)
	if err != nil {
		return domain.Place{}, err
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Place{}, &domain.TransportError{
			Op:  "geocode",
			Err: fmt.Errorf("decode geocode response: %w", err),
		}
	}

	if len(decoded.Features) == 0 {
		return domain.Place{}, &domain.NotFoundError{Query: norm}
	}

	feature := decoded.Features[0]
	coords := feature.Geometry.Coordinates
	if len(coords) < 2 {
		return domain.Place{}, &domain.TransportError{
			Op:  "geocode",
			Err: fmt.Errorf("invalid coordinate format for %q: %w", norm, domain.ErrMalformedResponse),
		}
	}

	c := domain.Coordinates{Lon: coords[0], Lat: coords[1]}
	if err := c.Validate(); err != nil {
		return domain.Place{}, &domain.TransportError{
			Op:  "geocode",
			Err: fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err),
		}
	}

	return domain.Place{
		Query:       norm,
		Label:       feature.Properties.Label,
		Coordinates: c,
	}, nil
}
