package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/app2/products-catalog/internal/core/domain"
)

// RBAC enforces role-based access control. It assumes Auth already ran;
// a missing identity is treated as insufficient role.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, _ := c.Get(IdentityKey).(domain.Identity)
			if _, ok := allowed[identity.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
