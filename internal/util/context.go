package util

import "context"

type contextKey string

const (
	CTXKeyRequestID     contextKey = "request_id"
	CTXKeyDisableLogger contextKey = "disable_logger"
)

// RequestIDFromContext returns the ID of the (HTTP) request, returning an error if it is not present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(CTXKeyRequestID)
	if val == nil {
		return "", false
	}

	id, ok := val.(string)
	return id, ok
}

// DisableLogger toggles the indication whether `LogFromContext` should return a disabled logger.
func DisableLogger(ctx context.Context, shouldDisable bool) context.Context {
	return context.WithValue(ctx, CTXKeyDisableLogger, shouldDisable)
}

// ShouldDisableLogger checks whether a logger instance should be disabled for the provided context.
func ShouldDisableLogger(ctx context.Context) bool {
	s, ok := ctx.Value(CTXKeyDisableLogger).(bool)
	return ok && s
}
