package issnow

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"trip-route-cli/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"success","timestamp":1748563200,"iss_position":{"latitude":"-12.3456","longitude":"45.6789"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	report, err := c.Position(context.Background())
	require.NoError(t, err)

	assert.Equal(t, -12.3456, report.Position.Lat)
	assert.Equal(t, 45.6789, report.Position.Lon)
	assert.Equal(t, time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC), report.Timestamp)
}

func TestPositionErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusBadGateway, body: "bad gateway"},
		{name: "not json", status: http.StatusOK, body: "<html></html>"},
		{name: "latitude not a number", status: http.StatusOK, body: `{"iss_position":{"latitude":"north","longitude":"1"}}`},
		{name: "out of range", status: http.StatusOK, body: `{"iss_position":{"latitude":"95","longitude":"1"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, time.Second, nil).Position(context.Background())

			var te *domain.TransportError
			assert.True(t, errors.As(err, &te), "got %v", err)
		})
	}
}
