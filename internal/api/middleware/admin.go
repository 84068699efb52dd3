package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/admin-console/internal/api/metrics"
	"github.com/jobportal/admin-console/internal/core/table"
)

const loginPath = "/auth/login"

// guardResponse carries the redirect hint the dashboard follows on denial.
type guardResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

// AdminGuard enforces the session guard on every management route: the token
// must verify as an administrator before any data is fetched. A verification
// error denies access exactly like a negative answer (fail closed).
func AdminGuard(verifier table.RoleVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, _ := c.Get("token").(string)
			if token == "" {
				metrics.GuardDeniedTotal.WithLabelValues("unauthenticated").Inc()
				return c.JSON(http.StatusUnauthorized, guardResponse{
					Error:    "please log in again",
					Redirect: loginPath,
				})
			}

			isAdmin, err := verifier.VerifyAdmin(c.Request().Context(), token)
			if err != nil || !isAdmin {
				metrics.GuardDeniedTotal.WithLabelValues("forbidden").Inc()
				return c.JSON(http.StatusForbidden, guardResponse{
					Error:    "an error occurred while verifying admin access",
					Redirect: loginPath,
				})
			}

			return next(c)
		}
	}
}
