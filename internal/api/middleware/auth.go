package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tradeco/marketplace-api/internal/core/domain"
	"github.com/tradeco/marketplace-api/internal/core/service"
)

// Context keys for the claims injected by Auth.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// Auth verifies the bearer token and injects the verified identity into the
// request context. Each failure mode keeps its own message: missing header,
// malformed header, expired token, invalid token — all 401 via the central
// error handler. Role and ownership checks come later in the chain; identity
// always goes first.
func Auth(tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return domain.ErrTokenMissing
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrMalformedAuthHeader
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return err
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextRole, claims.Role)

			return next(c)
		}
	}
}
