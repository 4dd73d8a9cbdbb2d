package ports

import (
	"context"
	"time"
	"trip-route-cli/internal/domain"
)

// A timestamped position report for a tracked object.
type PositionReport struct {
	Position  domain.Coordinates
	Timestamp time.Time
}

// Contract for fetching the current position of a tracked object.
type PositionProvider interface {
	Position(ctx context.Context) (PositionReport, error)
}
