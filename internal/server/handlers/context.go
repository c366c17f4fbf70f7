package handlers

import "context"

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller attached to the request context by
// the session guard middleware.
type Identity struct {
	ID    int64
	Email string
}

// WithIdentity returns a context carrying the authenticated identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom extracts the authenticated identity from the context.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
