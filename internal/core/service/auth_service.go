package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tradeco/marketplace-api/internal/api/metrics"
	"github.com/tradeco/marketplace-api/internal/core/domain"
	"github.com/tradeco/marketplace-api/internal/core/ports"
	"github.com/tradeco/marketplace-api/internal/core/validate"
)

// LoginThrottle abstracts the brute-force guard (Redis). Allow reports
// whether another attempt for this email may proceed, Fail records a failed
// attempt, Reset clears the counter after a successful login.
type LoginThrottle interface {
	Allow(ctx context.Context, email string) (bool, error)
	Fail(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration and login.
type AuthService struct {
	users    ports.UserRepository
	tokens   *TokenService
	throttle LoginThrottle
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *TokenService, throttle LoginThrottle, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, throttle: throttle, log: log}
}

// Register validates the input, checks uniqueness, stores the account with a
// bcrypt hash, and issues a token for the new user.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	// Uniqueness checks. The unique indexes on email and username are the
	// real guarantee; the lookups exist to give a field-specific message.
	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}
	if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Nombre:       in.Nombre,
		Telefono:     in.Telefono,
		Direccion:    in.Direccion,
		Role:         domain.RoleUser,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID, created.Role)
	if err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.Inc()
	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")

	return &ports.AuthResult{Token: token, User: created}, nil
}

// Login verifies credentials and issues a token. Failed attempts are counted
// per email; past the threshold the account is throttled until the window
// expires. Throttle errors fail open: a Redis outage must not lock everyone
// out.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.NewValidationError("email and password are required")
	}

	allowed, err := s.throttle.Allow(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Msg("login throttle check failed, allowing attempt")
	} else if !allowed {
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			s.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if !user.Active {
		return nil, domain.ErrUserInactive
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	if err := s.throttle.Reset(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login throttle reset failed")
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("user logged in")

	return &ports.AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	if err := s.throttle.Fail(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login throttle record failed")
	}
}

func validateRegistration(in ports.RegisterInput) error {
	var reasons []string

	if in.Username == "" || in.Email == "" || in.Password == "" || in.Nombre == "" {
		reasons = append(reasons, "username, email, password and nombre are required")
	}
	if in.Email != "" && !validate.Email(in.Email) {
		reasons = append(reasons, "invalid email")
	}
	if in.Username != "" {
		if ok, reason := validate.Username(in.Username); !ok {
			reasons = append(reasons, reason)
		}
	}
	if in.Password != "" {
		if ok, reason := validate.Password(in.Password); !ok {
			reasons = append(reasons, reason)
		}
	}
	if !validate.Phone(in.Telefono) {
		reasons = append(reasons, "invalid phone number")
	}

	if len(reasons) > 0 {
		return domain.NewValidationError(reasons...)
	}
	return nil
}
