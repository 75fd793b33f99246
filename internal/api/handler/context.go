package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tradeco/marketplace-api/internal/api/middleware"
	"github.com/tradeco/marketplace-api/internal/core/domain"
	"github.com/tradeco/marketplace-api/internal/core/ports"
)

// ctxIdentity extracts the claims injected by the Auth middleware. A missing
// identity on a protected route means the middleware did not run; fail
// closed with 401 before any service call.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	userID, _ := c.Get(middleware.ContextUserID).(string)
	role, _ := c.Get(middleware.ContextRole).(domain.Role)
	if userID == "" || role == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Identity{UserID: userID, Role: role}, nil
}

// pageParams reads ?page and ?limit with the API defaults.
func pageParams(c echo.Context) (page, limit int) {
	page = 1
	limit = 20
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}
