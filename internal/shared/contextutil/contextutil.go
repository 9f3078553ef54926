package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// contextKey is private so keys never collide with other packages.
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	callerIDKey  contextKey = "caller_id"
	roleKey      contextKey = "caller_role"
	loggerKey    contextKey = "logger"
)

// --- Request ID Helpers ---

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// --- Caller Helpers ---

// Caller is the authenticated identity for the current request.
type Caller struct {
	ID   string
	Role string
}

func WithCaller(ctx context.Context, caller Caller) context.Context {
	ctx = context.WithValue(ctx, callerIDKey, caller.ID)
	return context.WithValue(ctx, roleKey, caller.Role)
}

func GetCaller(ctx context.Context) Caller {
	var c Caller
	if id, ok := ctx.Value(callerIDKey).(string); ok {
		c.ID = id
	}
	if role, ok := ctx.Value(roleKey).(string); ok {
		c.Role = role
	}
	return c
}

// --- Logger Helpers ---

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the logger attached to the context, the supplied
// fallback, or a nop logger so callers never hit a nil.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	if defaultLogger != nil {
		return defaultLogger
	}

	return zap.NewNop()
}
