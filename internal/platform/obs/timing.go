package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// RequestID returns the request ID carried by ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// WithRequestID attaches a request ID to ctx for downstream log correlation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Time logs the duration of the named operation when the returned func runs.
// Pass a pointer to the operation's named error so failures are recorded:
//
//	defer obs.Time(ctx, logger, "distance.compute")(&err)
func Time(ctx context.Context, logger zerolog.Logger, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		evt := logger.Info()
		if errp != nil && *errp != nil {
			evt = logger.Warn().Err(*errp)
		}
		evt.Str("req_id", reqID).Str("op", name).Dur("dur", time.Since(start)).Msg("operation timed")
	}
}
