// Package ctxutil carries the caller, the request and the reason for a
// matching run through a context.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	requestIDKey ctxKey = "request_id"
	triggerKey   ctxKey = "trigger"
)

// Trigger names what started a matching run.
type Trigger string

const (
	// TriggerManual is an explicit request by the report owner. It is the
	// default when no trigger is set.
	TriggerManual        Trigger = "manual"
	TriggerReportCreated Trigger = "report_created"
	TriggerRescore       Trigger = "rescore"
)

// WithUserID stores the authenticated reporter in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx returns the authenticated reporter.
// A missing value, a nil UUID or a value of another type all yield false.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns the request ID, or "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithTrigger records what started the matching run executed under ctx.
func WithTrigger(ctx context.Context, t Trigger) context.Context {
	return context.WithValue(ctx, triggerKey, t)
}

// TriggerFromCtx returns the trigger of the current matching run.
func TriggerFromCtx(ctx context.Context) Trigger {
	if t, ok := ctx.Value(triggerKey).(Trigger); ok && t != "" {
		return t
	}
	return TriggerManual
}

// LogAttrs returns the request_id, user_id and trigger attributes present
// in ctx, for log lines that must be correlated with a request or a run.
func LogAttrs(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr
	if id := RequestIDFromCtx(ctx); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	if id, ok := UserIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("user_id", id.String()))
	}
	if t, ok := ctx.Value(triggerKey).(Trigger); ok && t != "" {
		attrs = append(attrs, slog.String("trigger", string(t)))
	}
	return attrs
}
