package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradeco/marketplace-api/internal/core/domain"
	"github.com/tradeco/marketplace-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	Nombre    string `json:"nombre" validate:"required"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authData struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Register creates a new user account and returns a token for it.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  response
// @Failure      400   {object}  response
// @Failure      500   {object}  response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidationError(err.Error())
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Nombre:    req.Nombre,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "user registered successfully", authData{
		Token: result.Token,
		User:  result.User,
	})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  response
// @Failure      400   {object}  response
// @Failure      401   {object}  response
// @Failure      429   {object}  response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidationError(err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "login successful", authData{
		Token: result.Token,
		User:  result.User,
	})
}
