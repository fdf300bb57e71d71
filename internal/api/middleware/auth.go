package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hcharper/portfolio-api/internal/api/metrics"
	"github.com/hcharper/portfolio-api/internal/core/domain"
	"github.com/hcharper/portfolio-api/internal/core/ports"
)

type failureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Auth verifies the bearer token and injects the decoded claims into the
// request context. A missing credential is 401; a credential that fails
// verification (malformed, tampered, or expired) is 403.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			token := ""
			if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				token = parts[1]
			}
			if token == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return c.JSON(http.StatusUnauthorized, failureResponse{Message: "Access token required"})
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				if err == domain.ErrTokenExpired {
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
				} else {
					metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				}
				return c.JSON(http.StatusForbidden, failureResponse{Message: "Invalid or expired token"})
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Username)
			c.Set("email", claims.Email)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
