package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"pitstop/internal/delivery/api/response"
	deliverycontext "pitstop/internal/delivery/context"
	"pitstop/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// IdentityMiddleware trusts the identity headers set by the upstream gateway.
type IdentityMiddleware struct {
	logger *slog.Logger
}

// NewIdentityMiddleware is the constructor for IdentityMiddleware.
func NewIdentityMiddleware(logger *slog.Logger) *IdentityMiddleware {
	return &IdentityMiddleware{logger: logger}
}

// Authenticate requires a username and a known role. The request-scoped logger
// is extended with the username.
func (m *IdentityMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		username := strings.TrimSpace(req.Header.Get(deliverycontext.HeaderXAccountUsername))
		if username == "" {
			return response.Unauthorized(c, "MISSING_IDENTITY", "Account username header is missing")
		}

		role, ok := entity.ParseRole(req.Header.Get(deliverycontext.HeaderXAccountRole))
		if !ok {
			return response.Unauthorized(c, "INVALID_ROLE", "Account role header is missing or unknown")
		}

		identity := deliverycontext.Identity{Username: username, Role: role}
		deliverycontext.SetIdentity(c, identity)

		ctx := deliverycontext.WithIdentity(req.Context(), identity)
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("username", username))
		ctx = deliverycontext.WithLogger(ctx, logger)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// RequireRole allows the request only for the listed roles. It must run after Authenticate.
func (m *IdentityMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return response.Unauthorized(c, "MISSING_IDENTITY", "Account identity not found")
			}

			if !slices.Contains(roles, identity.Role) {
				return response.Forbidden(c, "FORBIDDEN", "Insufficient permissions")
			}

			return next(c)
		}
	}
}

// Username returns the acting username set by Authenticate.
func Username(c echo.Context) string {
	identity, _ := deliverycontext.GetIdentity(c)

	return identity.Username
}
