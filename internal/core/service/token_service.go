package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tradeco/marketplace-api/internal/core/domain"
)

// TokenService issues and verifies the bearer tokens used as identity
// assertions. Validity is purely a function of signature and expiry; there
// is no revocation list, so a leaked token stays valid until it expires.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token asserting (userID, role) for the configured TTL.
func (s *TokenService) Issue(userID string, role domain.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and checks a token. Expired tokens map to ErrTokenExpired;
// every other failure, including a role value outside the closed enum, maps
// to ErrTokenInvalid.
func (s *TokenService) Verify(token string) (*domain.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, domain.ErrTokenInvalid
	}

	rawRole, _ := claims["role"].(string)
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.TokenClaims{UserID: userID, Role: role}, nil
}
