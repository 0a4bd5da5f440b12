package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const updateIDKey ctxKey = "update_id"

// WithUpdateID tags the context with the correlation ID of one inbound
// chat event. Every log line produced while handling it carries the ID.
func WithUpdateID(ctx context.Context, updateID string) context.Context {
	return context.WithValue(ctx, updateIDKey, updateID)
}

func UpdateIDFrom(ctx context.Context) string {
	if v := ctx.Value(updateIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// FromCtx returns logger with update_id automatically added
func FromCtx(ctx context.Context) *zap.Logger {
	updID := UpdateIDFrom(ctx)
	if updID == "" {
		return L()
	}
	return L().With(zap.String("update_id", updID))
}
