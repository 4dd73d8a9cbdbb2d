package issnow

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
	"trip-route-cli/internal/domain"
	"trip-route-cli/internal/platform/obs"
	"trip-route-cli/internal/ports"

	"go.uber.org/zap"
)

const DefaultURL = "http://api.open-notify.org/iss-now.json"

type issNowResponse struct {
	Message     string `json:"message"`
	Timestamp   int64  `json:"timestamp"`
	ISSPosition struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"iss_position"`
}

// Client reads the current position of the International Space Station from
// the Open Notify API.
type Client struct {
	session *http.Client
	url     string
	log     *zap.Logger
}

func NewClient(url string, timeout time.Duration, log *zap.Logger) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		session: &http.Client{Timeout: timeout},
		url:     url,
		log:     log,
	}
}

func (c *Client) Position(ctx context.Context) (_ ports.PositionReport, err error) {
	defer obs.Time(ctx, c.log, "issnow.Position")(&err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return ports.PositionReport{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return ports.PositionReport{}, &domain.TransportError{Op: "iss position", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return ports.PositionReport{}, &domain.TransportError{
			Op:         "iss position",
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(b)),
		}
	}

	var decoded issNowResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.PositionReport{}, &domain.TransportError{
			Op:  "iss position",
			Err: fmt.Errorf("decode response: %w", err),
		}
	}

	lat, err := strconv.ParseFloat(decoded.ISSPosition.Latitude, 64)
	if err != nil {
		return ports.PositionReport{}, &domain.TransportError{
			Op:  "iss position",
			Err: fmt.Errorf("parse latitude %q: %w", decoded.ISSPosition.Latitude, domain.ErrMalformedResponse),
		}
	}
	lon, err := strconv.ParseFloat(decoded.ISSPosition.Longitude, 64)
	if err != nil {
		return ports.PositionReport{}, &domain.TransportError{
			Op:  "iss position",
			Err: fmt.Errorf("parse longitude %q: %w", decoded.ISSPosition.Longitude, domain.ErrMalformedResponse),
		}
	}

	pos := domain.Coordinates{Lon: lon, Lat: lat}
	if err := pos.Validate(); err != nil {
		return ports.PositionReport{}, &domain.TransportError{
			Op:  "iss position",
			Err: fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err),
		}
	}

	return ports.PositionReport{
		Position:  pos,
		Timestamp: time.Unix(decoded.Timestamp, 0).UTC(),
	}, nil
}
