package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tradeco/marketplace-api/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("user-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("unexpected user id: %s", claims.UserID)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
	if !claims.IsAdmin() {
		t.Fatalf("expected admin claims")
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-1",
		"role":    string(domain.RoleUser),
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})
	token, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := svc.Verify(token); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("user-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Tampered(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("user-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.Verify(tampered); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_UnknownRole(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-1",
		"role":    "superadmin",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	token, err := forged.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := svc.Verify(token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for unknown role, got %v", err)
	}
}

func TestTokenService_WrongAlgorithm(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "user-1",
		"role":    string(domain.RoleAdmin),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := svc.Verify(token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for none alg, got %v", err)
	}
}
