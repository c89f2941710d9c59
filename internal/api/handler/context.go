package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/app2/products-catalog/internal/api/middleware"
	"github.com/app2/products-catalog/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a present role proves
// the gate actually ran on this route.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, _ := c.Get(middleware.IdentityKey).(domain.Identity)
	if identity.Role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
