package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/tradeco/marketplace-api/internal/core/domain"
)

// RBAC enforces role-based access control. It must be chained after Auth:
// the role it reads only exists once the token has been verified, which is
// what guarantees an expired admin token yields 401, never 403.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(domain.Role)
			if _, ok := allowed[role]; !ok {
				return domain.ErrInsufficientRole
			}
			return next(c)
		}
	}
}
