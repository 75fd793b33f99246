package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tradeco/marketplace-api/internal/core/domain"
	"github.com/tradeco/marketplace-api/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// profileUpdateRequest distinguishes absent from empty: a null or missing
// field stays untouched, an empty string clears it.
type profileUpdateRequest struct {
	Nombre    *string `json:"nombre"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

type publicUserData struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
}

type userListData struct {
	Users      []*domain.User     `json:"users"`
	Pagination paginationResponse `json:"pagination"`
}

// Profile handles GET /users/profile.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response
// @Failure      401  {object}  response
// @Router       /users/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.service.Profile(c.Request().Context(), actor.UserID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", user)
}

// UpdateProfile handles PUT /users/profile. The update always targets the
// token bearer's own account; there is no admin override on this route.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileUpdateRequest  true  "Editable fields"
// @Success      200   {object}  response
// @Failure      400   {object}  response
// @Failure      401   {object}  response
// @Router       /users/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), actor.UserID, ports.ProfileUpdate{
		Nombre:    req.Nombre,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "profile updated successfully", user)
}

// Get handles GET /users/:id — the public subset of a profile.
//
// @Summary      Get a user's public profile
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  response
// @Failure      404  {object}  response
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	pub, err := h.service.PublicProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", publicUserData{
		ID:        pub.ID,
		Username:  pub.Username,
		Nombre:    pub.Nombre,
		CreatedAt: pub.CreatedAt,
	})
}

// List handles GET /users — admin-only account listing.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  response
// @Failure      401    {object}  response
// @Failure      403    {object}  response
// @Router       /users/ [get]
func (h *UserHandler) List(c echo.Context) error {
	page, limit := pageParams(c)

	result, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	users := result.Users
	if users == nil {
		users = []*domain.User{}
	}

	return respond(c, http.StatusOK, "", userListData{
		Users: users,
		Pagination: paginationResponse{
			Page:  result.Page,
			Limit: result.Limit,
			Total: result.Total,
			Pages: result.TotalPages,
		},
	})
}
