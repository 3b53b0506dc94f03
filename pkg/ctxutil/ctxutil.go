package ctxutil

import (
	"context"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
)

type ctxKey string

const (
	sessionIDKey ctxKey = "session_id"
	requestIDKey ctxKey = "request_id"
)

// WithSessionID stores the caller's session in the context.
func WithSessionID(ctx context.Context, id domain.SessionID) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromCtx extracts the caller's session from the context.
// Returns the zero SessionID and false if the value is missing, zero, or wrong type.
func SessionIDFromCtx(ctx context.Context) (domain.SessionID, bool) {
	id, ok := ctx.Value(sessionIDKey).(domain.SessionID)
	if !ok || id.IsZero() {
		return domain.SessionID{}, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
