package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tradeco/marketplace-api/internal/core/domain"
	"github.com/tradeco/marketplace-api/internal/core/ports"
)

// stubUserRepo is an in-memory ports.UserRepository shared by the service
// tests in this package.
type stubUserRepo struct {
	users  map[string]*domain.User // keyed by ID
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, upd ports.ProfileUpdate) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	if upd.Nombre != nil {
		u.Nombre = *upd.Nombre
	}
	if upd.Telefono != nil {
		u.Telefono = *upd.Telefono
	}
	if upd.Direccion != nil {
		u.Direccion = *upd.Direccion
	}
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *stubUserRepo) List(_ context.Context, page, limit int) ([]*domain.User, int64, error) {
	all := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, cloneUser(u))
	}
	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

// stubThrottle counts calls and can be primed to deny attempts.
type stubThrottle struct {
	denied bool
	failed int
	resets int
	err    error
}

func (t *stubThrottle) Allow(context.Context, string) (bool, error) {
	return !t.denied, t.err
}

func (t *stubThrottle) Fail(context.Context, string) error {
	t.failed++
	return nil
}

func (t *stubThrottle) Reset(context.Context, string) error {
	t.resets++
	return nil
}

func newAuthService(repo *stubUserRepo, throttle LoginThrottle) *AuthService {
	if throttle == nil {
		throttle = &stubThrottle{}
	}
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, tokens, throttle, zerolog.Nop())
}

func validRegistration() ports.RegisterInput {
	return ports.RegisterInput{
		Username: "ana_99",
		Email:    "ana@example.com",
		Password: "Sup3rSecreto",
		Nombre:   "Ana García",
		Telefono: "+541123456789",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	res, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if res.User.Role != domain.RoleUser {
		t.Fatalf("expected role usuario, got %s", res.User.Role)
	}
	if !res.User.Active {
		t.Fatalf("expected new account to be active")
	}
	if res.User.PasswordHash == "Sup3rSecreto" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("Sup3rSecreto")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	cases := []struct {
		name   string
		mutate func(*ports.RegisterInput)
	}{
		{"missing fields", func(in *ports.RegisterInput) { in.Username, in.Nombre = "", "" }},
		{"bad email", func(in *ports.RegisterInput) { in.Email = "not-an-email" }},
		{"weak password", func(in *ports.RegisterInput) { in.Password = "abc" }},
		{"bad username", func(in *ports.RegisterInput) { in.Username = "a b" }},
		{"bad phone", func(in *ports.RegisterInput) { in.Telefono = "abc" }},
	}

	for _, tc := range cases {
		in := validRegistration()
		tc.mutate(&in)

		_, err := svc.Register(context.Background(), in)
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: expected ValidationError, got %v", tc.name, err)
		}
	}
}

func TestAuthService_Register_Duplicates(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	dup := validRegistration()
	dup.Username = "otra_ana"
	if _, err := svc.Register(context.Background(), dup); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	dup = validRegistration()
	dup.Email = "otra@example.com"
	if _, err := svc.Register(context.Background(), dup); err != domain.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	throttle := &stubThrottle{}
	svc := newAuthService(repo, throttle)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	res, err := svc.Login(context.Background(), "ana@example.com", "Sup3rSecreto")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if res.User.Username != "ana_99" {
		t.Fatalf("unexpected user: %+v", res.User)
	}
	if throttle.resets != 1 {
		t.Fatalf("expected throttle reset after success, got %d", throttle.resets)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	throttle := &stubThrottle{}
	svc := newAuthService(repo, throttle)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), "ana@example.com", "Wr0ngPassword"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.failed != 1 {
		t.Fatalf("expected 1 recorded failure, got %d", throttle.failed)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	throttle := &stubThrottle{}
	svc := newAuthService(repo, throttle)

	// Unknown accounts produce the same error as a wrong password so the
	// endpoint cannot be used to enumerate emails.
	if _, err := svc.Login(context.Background(), "nadie@example.com", "Whatever1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.failed != 1 {
		t.Fatalf("expected 1 recorded failure, got %d", throttle.failed)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubThrottle{denied: true})

	if _, err := svc.Login(context.Background(), "ana@example.com", "Sup3rSecreto"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_ThrottleFailsOpen(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubThrottle{err: fmt.Errorf("redis down")})

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// A broken throttle must not lock valid users out.
	if _, err := svc.Login(context.Background(), "ana@example.com", "Sup3rSecreto"); err != nil {
		t.Fatalf("expected login to succeed despite throttle error, got %v", err)
	}
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	res, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	repo.users[res.User.ID].Active = false

	if _, err := svc.Login(context.Background(), "ana@example.com", "Sup3rSecreto"); err != domain.ErrUserInactive {
		t.Fatalf("expected ErrUserInactive, got %v", err)
	}
}
