package domain

import "time"

// Role is the closed set of account roles. Anything else coming out of a
// token or a stored document is rejected at parse time rather than treated
// as a plain string.
type Role string

const (
	RoleUser  Role = "usuario"
	RoleAdmin Role = "admin"
)

// ParseRole validates a raw role value against the closed enum.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// User models a registered account. PasswordHash never leaves the process:
// it is excluded from JSON and only compared through bcrypt.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password"`
	Nombre       string    `json:"nombre" bson:"nombre"`
	Telefono     string    `json:"telefono" bson:"telefono"`
	Direccion    string    `json:"direccion" bson:"direccion"`
	Role         Role      `json:"role" bson:"role"`
	Active       bool      `json:"active" bson:"active"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// TokenClaims is the verified identity carried by a bearer token.
// Ephemeral: reconstructed per request, never persisted.
type TokenClaims struct {
	UserID string
	Role   Role
}

// IsAdmin reports whether the claims carry the admin role.
func (c TokenClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
