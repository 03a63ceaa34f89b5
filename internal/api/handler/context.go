package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/indocart/pos-payments/internal/api/middleware"
	"github.com/indocart/pos-payments/internal/core/domain"
)

// ctxIdentity extracts the caller identity injected by the Authenticate
// middleware. Its presence proves authentication ran; a handler reaching
// this without it is a wiring bug surfaced as 401 rather than a panic.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := middleware.Identity(c)
	if !ok {
		return domain.Identity{}, fmt.Errorf("%w: missing authentication claims", domain.ErrUnauthenticated)
	}
	return id, nil
}
