package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered UUIDv7 string. It falls back to a random
// UUIDv4 when the v7 generator fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// TraceIDFrom returns the trace id carried by the context getter result, or a
// fresh one.
func TraceIDFrom(traceID string, ok bool) string {
	if ok {
		return traceID
	}
	return NewTraceID()
}
