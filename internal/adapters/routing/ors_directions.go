package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"trip-route-cli/internal/domain"
	"trip-route-cli/internal/platform/obs"
)

type directionsRequest struct {
	Coordinates  [][]float64 `json:"coordinates"`
	Instructions bool        `json:"instructions"`
	Language     string      `json:"language,omitempty"`
}

type directionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
			Segments []struct {
				Steps []struct {
					Distance    float64 `json:"distance"`
					Duration    float64 `json:"duration"`
					Instruction string  `json:"instruction"`
					Name        string  `json:"name"`
				} `json:"steps"`
			} `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}

// Route requests a route between two points from the OpenRouteService
// directions endpoint (GeoJSON flavour). Only the first route feature and its
// first segment are read.
func (o *ORSProvider) Route(
	ctx context.Context,
	from domain.Coordinates,
	to domain.Coordinates,
) (_ domain.RouteSummary, err error) {
	defer obs.Time(ctx, o.log, "ors.Route")(&err)

	if err := from.Validate(); err != nil {
		return domain.RouteSummary{}, fmt.Errorf("route origin: %w", err)
	}
	if err := to.Validate(); err != nil {
		return domain.RouteSummary{}, fmt.Errorf("route destination: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, o.directionsTimeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", o.baseURL, o.profile)

	// ORS expects [lon, lat] pairs.
	payload, err := json.Marshal(directionsRequest{
		Coordinates:  [][]float64{from.CoordsToList(), to.CoordsToList()},
		Instructions: true,
		Language:     o.language,
	})
	if err != nil {
		return domain.RouteSummary{}, fmt.Errorf("marshal directions request: %w", err)
	}

	req, err := o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.RouteSummary{}, fmt.Errorf("directions request: %w", err)
	}

	resp, err := o.do("directions", req)
	if err != nil {
		return domain.RouteSummary{}, err
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return domain.RouteSummary{}, &domain.TransportError{
			Op:  "directions",
			Err: fmt.Errorf("decode directions response: %w", err),
		}
	}

	if len(dr.Features) == 0 {
		return domain.RouteSummary{}, &domain.TransportError{
			Op:  "directions",
			Err: fmt.Errorf("no route feature returned: %w", domain.ErrMalformedResponse),
		}
	}

	feature := dr.Features[0]
	summary := domain.RouteSummary{
		DistanceMeters:  feature.Properties.Summary.Distance,
		DurationSeconds: feature.Properties.Summary.Duration,
		Steps:           []domain.RouteStep{},
	}

	if len(feature.Properties.Segments) > 0 {
		steps := feature.Properties.Segments[0].Steps
		summary.Steps = make([]domain.RouteStep, 0, len(steps))
		for _, s := range steps {
			summary.Steps = append(summary.Steps, domain.RouteStep{
				Instruction:     s.Instruction,
				Name:            s.Name,
				DistanceMeters:  s.Distance,
				DurationSeconds: s.Duration,
			})
		}
	}

	summary.Geometry = make([]domain.Coordinates, 0, len(feature.Geometry.Coordinates))
	for _, p := range feature.Geometry.Coordinates {
		if len(p) < 2 {
			continue
		}
		summary.Geometry = append(summary.Geometry, domain.Coordinates{Lon: p[0], Lat: p[1]})
	}

	return summary, nil
}
