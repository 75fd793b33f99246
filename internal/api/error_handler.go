package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tradeco/marketplace-api/internal/core/domain"
)

// envelope is the canonical response body for every API outcome.
type envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the standard envelope: {"success": false, "message": ...}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, envelope) {
	// Field-level validation failures carry their reason list.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, envelope{
			Success: false,
			Message: "invalid input",
			Errors:  ve.Reasons,
		}
	}

	// Echo's own errors (bind failures, 404 from router, body limit, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, envelope{Success: false, Message: fmt.Sprintf("%v", he.Message)}
	}

	// Known domain errors map to deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrTokenMissing),
		errors.Is(err, domain.ErrMalformedAuthHeader),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUserInactive):
		return http.StatusUnauthorized, envelope{Success: false, Message: err.Error()}

	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrInsufficientRole):
		return http.StatusForbidden, envelope{Success: false, Message: err.Error()}

	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, envelope{Success: false, Message: err.Error()}

	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrUserExists):
		// Conflicts surface as 400 in this API's contract.
		return http.StatusBadRequest, envelope{Success: false, Message: err.Error()}

	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, envelope{Success: false, Message: err.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, envelope{Success: false, Message: "internal server error"}
}
