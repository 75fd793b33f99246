package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tradeco/marketplace-api/internal/core/domain"
	"github.com/tradeco/marketplace-api/internal/core/ports"
)

func TestUserService_UpdateProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	u := seedUser(t, repo, "ana_99", domain.RoleUser)

	nombre := "Ana María"
	telefono := "+541123456789"
	updated, err := svc.UpdateProfile(context.Background(), u.ID, ports.ProfileUpdate{
		Nombre:   &nombre,
		Telefono: &telefono,
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Nombre != nombre || updated.Telefono != telefono {
		t.Fatalf("unexpected profile: %+v", updated)
	}
	// Untouched fields survive a partial update.
	if updated.Username != "ana_99" || updated.Email != u.Email {
		t.Fatalf("partial update clobbered identity fields: %+v", updated)
	}
}

func TestUserService_UpdateProfile_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	u := seedUser(t, repo, "ana_99", domain.RoleUser)

	bad := "abc"
	_, err := svc.UpdateProfile(context.Background(), u.ID, ports.ProfileUpdate{Telefono: &bad})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for bad phone, got %v", err)
	}

	_, err = svc.UpdateProfile(context.Background(), u.ID, ports.ProfileUpdate{})
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for empty update, got %v", err)
	}
}

func TestUserService_UpdateProfile_UnknownUser(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	nombre := "Ana"
	if _, err := svc.UpdateProfile(context.Background(), "ghost", ports.ProfileUpdate{Nombre: &nombre}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_PublicProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	u := seedUser(t, repo, "ana_99", domain.RoleUser)

	pub, err := svc.PublicProfile(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("PublicProfile returned error: %v", err)
	}
	if pub.ID != u.ID || pub.Username != "ana_99" {
		t.Fatalf("unexpected public profile: %+v", pub)
	}

	if _, err := svc.PublicProfile(context.Background(), "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_List(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	for _, name := range []string{"ana", "berta", "carla", "diana", "eva"} {
		seedUser(t, repo, name, domain.RoleUser)
	}

	page, err := svc.List(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Total != 5 {
		t.Fatalf("expected total 5, got %d", page.Total)
	}
	if page.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", page.TotalPages)
	}
	if len(page.Users) != 2 {
		t.Fatalf("expected 2 users on page 1, got %d", len(page.Users))
	}
}
