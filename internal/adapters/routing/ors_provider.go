package routing

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ORSOptions configures an ORSProvider. Zero values fall back to the
// OpenRouteService defaults.
type ORSOptions struct {
	BaseURL           string
	Profile           string
	Language          string
	GeocodeTimeout    time.Duration
	DirectionsTimeout time.Duration
	HTTPClient        *http.Client
	Logger            *zap.Logger
}

// ORSProvider implements ports.Geocoder and ports.RouteProvider using
// OpenRouteService. Every call is a single request: there is no retry and no
// caching.
type ORSProvider struct {
	session           *http.Client
	apiKey            string
	baseURL           string
	profile           string
	language          string
	geocodeTimeout    time.Duration
	directionsTimeout time.Duration
	log               *zap.Logger
}

func NewORSProvider(apiKey string, opts ORSOptions) (*ORSProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ORS api key is empty")
	}

	provider := &ORSProvider{
		session:           opts.HTTPClient,
		apiKey:            apiKey,
		baseURL:           strings.TrimRight(opts.BaseURL, "/"),
		profile:           opts.Profile,
		language:          opts.Language,
		geocodeTimeout:    opts.GeocodeTimeout,
		directionsTimeout: opts.DirectionsTimeout,
		log:               opts.Logger,
	}

	if provider.session == nil {
		provider.session = &http.Client{}
	}
	if provider.baseURL == "" {
		provider.baseURL = "https://api.openrouteservice.org"
	}
	if provider.profile == "" {
		provider.profile = "driving-car"
	}
	if provider.geocodeTimeout <= 0 {
		provider.geocodeTimeout = 10 * time.Second
	}
	if provider.directionsTimeout <= 0 {
		provider.directionsTimeout = 20 * time.Second
	}
	if provider.log == nil {
		provider.log = zap.NewNop()
	}

	return provider, nil
}

// normalize collapses whitespace in free-text queries.
func (o *ORSProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
