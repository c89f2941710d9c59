package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/app2/products-catalog/internal/api/metrics"
	"github.com/app2/products-catalog/internal/core/ports"
)

// IdentityKey is the echo context key under which Auth stores the caller's
// decoded domain.Identity.
const IdentityKey = "identity"

// Auth is the authorization gate. It extracts the bearer token, validates it
// through the token service, and attaches the decoded identity to the
// request context. Any validation failure ends the request with 401 —
// routes registered without this middleware are the declared-public ones.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenValidationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenValidationsTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := tokens.Validate(parts[1])
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues("rejected").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			metrics.TokenValidationsTotal.WithLabelValues("ok").Inc()
			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}
