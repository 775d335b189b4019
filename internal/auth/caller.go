// Package auth carries the authenticated caller identity and the bearer
// token machinery behind it. The identity travels as an explicit context
// value so that everything downstream of the HTTP gate can be exercised
// in tests without a running platform.
package auth

import (
	"context"

	"propapi/internal/model"
)

// Caller is the authenticated identity attached to a request.
type Caller struct {
	UID   string
	Email string
	Role  model.Role
}

type callerKey struct{}

// WithCaller returns a context carrying the caller identity.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// CallerFrom extracts the caller identity from the context. The second
// return is false when no authentication gate ran for this context.
func CallerFrom(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(Caller)
	return c, ok
}
