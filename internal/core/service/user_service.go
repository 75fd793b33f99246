package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tradeco/marketplace-api/internal/core/domain"
	"github.com/tradeco/marketplace-api/internal/core/ports"
	"github.com/tradeco/marketplace-api/internal/core/validate"
)

// UserService implements profile and account-listing use cases.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// UpdateProfile applies a partial update to the caller's own profile. Only
// nombre, telefono and direccion are editable.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd ports.ProfileUpdate) (*domain.User, error) {
	if upd.Telefono != nil && !validate.Phone(*upd.Telefono) {
		return nil, domain.NewValidationError("invalid phone number")
	}
	if upd.Empty() {
		return nil, domain.NewValidationError("no editable fields provided")
	}

	if err := s.users.UpdateProfile(ctx, userID, upd); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return s.users.FindByID(ctx, userID)
}

// PublicProfile returns the subset of a profile anyone may see.
func (s *UserService) PublicProfile(ctx context.Context, id string) (*ports.PublicUser, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.PublicUser{
		ID:        user.ID,
		Username:  user.Username,
		Nombre:    user.Nombre,
		CreatedAt: user.CreatedAt,
	}, nil
}

// List returns a page of all accounts. Admin-only; enforced by the routing
// middleware chain.
func (s *UserService) List(ctx context.Context, page, limit int) (*ports.UserList, error) {
	page, limit = normalizePage(page, limit)

	users, total, err := s.users.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &ports.UserList{
		Users:      users,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}
