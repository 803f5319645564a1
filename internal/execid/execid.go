// Package execid attaches a per-dispatch execution ID to a context, so log
// lines emitted while a job callback runs can be correlated across the
// worker pool.
package execid

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// New generates a random UUID v4 execution ID.
func New() string {
	return uuid.NewString()
}

// WithExecID returns a copy of ctx with the execution ID attached.
func WithExecID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext extracts the execution ID from ctx. Returns "" if absent.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
