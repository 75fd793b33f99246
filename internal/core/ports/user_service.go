package ports

import (
	"context"
	"time"

	"github.com/tradeco/marketplace-api/internal/core/domain"
)

// PublicUser is the subset of a profile anyone may see.
type PublicUser struct {
	ID        string
	Username  string
	Nombre    string
	CreatedAt time.Time
}

// UserList is one page of the admin user listing.
type UserList struct {
	Users      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserService defines profile and account-listing use cases. Profile and
// UpdateProfile always operate on the token bearer's own account; there is
// deliberately no admin override for profile edits.
type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*domain.User, error)
	PublicProfile(ctx context.Context, id string) (*PublicUser, error)
	List(ctx context.Context, page, limit int) (*UserList, error)
}
