package ports

import (
	"context"

	"github.com/tradeco/marketplace-api/internal/core/domain"
)

// ProfileUpdate is a partial update of the editable profile fields. A nil
// pointer means "leave unchanged"; a pointer to the empty string clears the
// field. Username, email, password and role are not editable through this
// path.
type ProfileUpdate struct {
	Nombre    *string
	Telefono  *string
	Direccion *string
}

// Empty reports whether the update carries no changes.
func (u ProfileUpdate) Empty() bool {
	return u.Nombre == nil && u.Telefono == nil && u.Direccion == nil
}

// UserRepository defines persistence operations for user documents.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) error
	// List returns a page of users (newest first) and the total count.
	List(ctx context.Context, page, limit int) ([]*domain.User, int64, error)
}
