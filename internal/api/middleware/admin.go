package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hcharper/portfolio-api/internal/api/metrics"
	"github.com/hcharper/portfolio-api/internal/core/domain"
)

// RequireAdmin gates a route to admin callers. It composes after Auth: no
// attached identity means the chain was miswired (or Auth was skipped) and
// is treated as unauthenticated rather than forbidden.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role == "" {
				return c.JSON(http.StatusUnauthorized, failureResponse{Message: "Authentication required"})
			}
			if role != domain.RoleAdmin {
				metrics.AuthzDenialsTotal.WithLabelValues("admin_gate").Inc()
				return c.JSON(http.StatusForbidden, failureResponse{Message: "Admin access required"})
			}
			return next(c)
		}
	}
}
