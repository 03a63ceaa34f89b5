package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/indocart/pos-payments/internal/core/domain"
	"github.com/indocart/pos-payments/internal/core/ports"
)

// RequireRole looks up the caller's role in the role store and enforces
// membership in the allow-set, case-insensitively. This is a capability
// check, distinct from authentication: a valid identity with the wrong role
// is rejected 403, never 401.
func RequireRole(roles ports.RoleStore, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := Identity(c)
			if !ok {
				return fmt.Errorf("%w: missing authentication claims", domain.ErrUnauthenticated)
			}

			role, err := roles.RoleOf(c.Request().Context(), id.SubjectID)
			if err != nil {
				return err
			}
			if _, ok := allowed[strings.ToLower(role)]; !ok {
				return fmt.Errorf("%w: role %q not permitted", domain.ErrForbidden, role)
			}

			c.Set(roleKey, strings.ToLower(role))
			return next(c)
		}
	}
}
