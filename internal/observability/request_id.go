package observability

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

// RequestIDKey stores the per-request correlation ID in a context.
const RequestIDKey contextKey = "request_id"

func NewRequestID() string {
	return uuid.NewString()
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestIDFromContext returns "" when ctx carries no request ID, such as
// for calls arriving over MCP or the CLI.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
