// Package utils holds small helpers shared by the handlers, adapters and
// workers: context keys, JSON responses, trace identifiers and the resty
// client wrapper.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so values set here never
// collide with string keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey carries the trace identifier of the update or request being
// processed.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext reports the trace identifier stored by WithTraceID.
// ok is false when the value is missing, empty or not a string.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
