package handler

import "github.com/labstack/echo/v4"

// response is the standard envelope for successful outcomes; failures take
// the same shape through the central error handler.
type response struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, response{Success: true, Message: message, Data: data})
}

// paginationResponse accompanies every paginated list.
type paginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}
