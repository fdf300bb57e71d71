package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hcharper/portfolio-api/internal/core/ports"
)

// ctxCaller extracts the identity injected by the Auth middleware. Both
// claims must be present: an empty role or user id means the middleware
// never ran on this route, which is a wiring bug surfaced as 401.
func ctxCaller(c echo.Context) (ports.Caller, error) {
	role, _ := c.Get("role").(string)
	userID, _ := c.Get("user_id").(string)
	if role == "" || userID == "" {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Caller{UserID: userID, Role: role}, nil
}
