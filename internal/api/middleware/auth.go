package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/indocart/pos-payments/internal/core/domain"
	"github.com/indocart/pos-payments/internal/core/ports"
)

const (
	identityKey = "identity"
	roleKey     = "role"
)

// Authenticate extracts the bearer credential, verifies it, and injects the
// caller identity into the request context. It runs before any role lookup
// or state mutation; a failure short-circuits the rest of the pipeline.
func Authenticate(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return fmt.Errorf("%w: missing authorization header", domain.ErrUnauthenticated)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return fmt.Errorf("%w: invalid authorization header", domain.ErrUnauthenticated)
			}

			identity, err := verifier.Verify(c.Request().Context(), parts[1])
			if err != nil {
				return err
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// Identity returns the caller identity injected by Authenticate.
func Identity(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(identityKey).(domain.Identity)
	return id, ok
}

// Role returns the resolved role injected by RequireRole.
func Role(c echo.Context) string {
	role, _ := c.Get(roleKey).(string)
	return role
}
