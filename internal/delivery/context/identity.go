package context

import (
	"context"

	"pitstop/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// KeyIdentity is the key for storing the acting account in context.
	KeyIdentity ContextKey = "identity"

	// HeaderXAccountUsername carries the authenticated username, set by the gateway.
	HeaderXAccountUsername = "X-Account-Username"

	// HeaderXAccountRole carries the authenticated role, set by the gateway.
	HeaderXAccountRole = "X-Account-Role"
)

// Identity is the account a request acts for.
type Identity struct {
	Username string
	Role     entity.Role
}

// SetIdentity stores the identity in echo.Context.
func SetIdentity(c echo.Context, identity Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity extracts the identity from echo.Context.
func GetIdentity(c echo.Context) (Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(Identity)

	return identity, ok && identity.Username != ""
}

// WithIdentity returns a new context with the identity.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentityFromContext extracts the identity from standard context.Context.
func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(KeyIdentity).(Identity)

	return identity, ok
}
