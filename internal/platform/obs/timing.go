package obs

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID tags ctx with a fresh request id so that every timed
// operation of one trip evaluation can be correlated in the logs.
func WithRequestID(ctx context.Context) context.Context {
	return context.WithValue(ctx, RequestIDKey, uuid.NewString())
}

func RequestID(ctx context.Context) string {
	reqID, _ := ctx.Value(RequestIDKey).(string)
	return reqID
}

// Time logs the duration of an operation at debug level, or at warn level
// when the operation failed. Use as: defer obs.Time(ctx, log, "op")(&err).
func Time(ctx context.Context, log *zap.Logger, name string) func(errp *error) {
	start := time.Now()

	if log == nil {
		log = zap.NewNop()
	}
	reqID := RequestID(ctx)

	return func(errp *error) {
		fields := []zap.Field{
			zap.String("req_id", reqID),
			zap.String("op", name),
			zap.Int64("dur_ms", time.Since(start).Milliseconds()),
		}

		if errp != nil && *errp != nil {
			log.Warn("operation failed", append(fields, zap.Error(*errp))...)
			return
		}
		log.Debug("operation finished", fields...)
	}
}
