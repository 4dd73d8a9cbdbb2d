package services

import (
	"context"
	"errors"
	"time"
	"trip-route-cli/internal/ports"

	"go.uber.org/zap"
)

// ISSPoller samples a PositionProvider a fixed number of times.
type ISSPoller struct {
	Provider ports.PositionProvider
	Cycles   int
	Interval time.Duration
	Log      *zap.Logger
}

// Run polls Cycles times, waiting Interval between polls (not after the last).
// A failed poll is handed to report with a nil position and polling continues.
// Run returns early with ctx.Err() when ctx is cancelled.
func (p *ISSPoller) Run(
	ctx context.Context,
	report func(cycle int, pos *ports.PositionReport, err error),
) error {
	if p.Provider == nil {
		return errors.New("iss poller: provider is required")
	}
	if p.Cycles < 1 {
		return errors.New("iss poller: cycles must be at least 1")
	}

	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}

	for cycle := 1; cycle <= p.Cycles; cycle++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		pos, err := p.Provider.Position(ctx)
		if err != nil {
			log.Warn("iss poll failed", zap.Int("cycle", cycle), zap.Error(err))
			report(cycle, nil, err)
		} else {
			report(cycle, &pos, nil)
		}

		if cycle == p.Cycles || p.Interval <= 0 {
			continue
		}

		timer := time.NewTimer(p.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return nil
}
