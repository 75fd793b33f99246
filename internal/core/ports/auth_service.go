package ports

import (
	"context"

	"github.com/tradeco/marketplace-api/internal/core/domain"
)

// RegisterInput carries the registration form. Telefono and Direccion are
// optional.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Nombre    string
	Telefono  string
	Direccion string
}

// AuthResult pairs a freshly issued token with the account it asserts.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService defines registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
