package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tradeco/marketplace-api/internal/core/domain"
	"github.com/tradeco/marketplace-api/internal/core/service"
)

func newAuthContext(t *testing.T, header string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	signed, err := tokens.Issue("user-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c := newAuthContext(t, "Bearer "+signed)

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		if c.Get(ContextUserID) != "user-1" {
			t.Fatalf("user id not set")
		}
		if c.Get(ContextRole) != domain.RoleUser {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	c := newAuthContext(t, "")

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != domain.ErrTokenMissing {
		t.Fatalf("expected ErrTokenMissing, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)

	for _, header := range []string{"Token abc", "Bearer", "abc"} {
		c := newAuthContext(t, header)
		handler := Auth(tokens)(func(c echo.Context) error {
			t.Fatalf("should not reach next")
			return nil
		})
		if err := handler(c); err != domain.ErrMalformedAuthHeader {
			t.Fatalf("header %q: expected ErrMalformedAuthHeader, got %v", header, err)
		}
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	c := newAuthContext(t, "Bearer not-a-token")

	handler := Auth(tokens)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	issuer := service.NewTokenService("secret", time.Nanosecond)
	verifier := service.NewTokenService("secret", time.Hour)

	signed, err := issuer.Issue("user-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	c := newAuthContext(t, "Bearer "+signed)
	handler := Auth(verifier)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	// An expired admin token never reaches the role check: 401, not 403.
	if err := handler(c); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}
