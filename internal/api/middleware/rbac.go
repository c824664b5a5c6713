package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC restricts a route to the given role ids. It relies on Auth having
// stored role_id in the context; a request without it is forbidden.
func RBAC(allowedRoles ...int64) echo.MiddlewareFunc {
	allowed := make(map[int64]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roleID, _ := c.Get("role_id").(int64)
			if _, ok := allowed[roleID]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
