package login

import (
	"context"
	"errors"
	"log/slog"

	"github.com/WassimBlilita7/ULMA/pkg/logger"
	"github.com/WassimBlilita7/ULMA/pkg/securestore"
)

const (
	TokenKey = "authToken"
	UserKey  = "user"
)

// User is the profile kept after login. It holds no secrets.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Result is what an Authenticator returns for valid credentials.
type Result struct {
	Token string
	User  User
}

// Authenticator verifies credentials against the backend API. It must return
// an error matching ErrInvalidCredentials when the credentials are wrong;
// any other error is treated as the service being unavailable and does not
// count as a failed attempt.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*Result, error)
}

type Service struct {
	store  *securestore.Store
	auth   Authenticator
	guard  *Guard
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithGuard replaces the default guard built over the same store.
func WithGuard(g *Guard) Option {
	return func(s *Service) {
		if g != nil {
			s.guard = g
		}
	}
}

func NewService(store *securestore.Store, auth Authenticator, opts ...Option) *Service {
	s := &Service{
		store:  store,
		auth:   auth,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.guard == nil {
		s.guard = NewGuard(store, WithGuardLogger(s.logger))
	}
	s.logger = s.logger.With(logger.Component("login"))
	return s
}

// Guard exposes the attempt guard, for example to display remaining attempts.
func (s *Service) Guard() *Guard {
	return s.guard
}

// Login runs the full flow and returns the stored user on success.
//
// Errors: *LockoutError (matches ErrLockedOut), validator.ValidationErrors,
// ErrInvalidCredentials, ErrUnavailable, or a securestore error.
func (s *Service) Login(ctx context.Context, creds Credentials) (*User, error) {
	if err := s.guard.Check(ctx); err != nil {
		return nil, err
	}

	if res := creds.Validate(); !res.Valid {
		return nil, res.Err()
	}
	creds = creds.Normalize()

	result, err := s.auth.Authenticate(ctx, creds.Email, creds.Password)
	if err != nil && !errors.Is(err, ErrInvalidCredentials) {
		s.logger.ErrorContext(ctx, "authentication request failed", logger.Error(err))
		return nil, errors.Join(ErrUnavailable, err)
	}
	if err != nil || result == nil || result.Token == "" {
		if lockErr := s.guard.Fail(ctx); lockErr != nil {
			return nil, lockErr
		}
		return nil, ErrInvalidCredentials
	}

	user := User{ID: result.User.ID, Email: creds.Email, Role: result.User.Role}
	if err := s.store.Set(ctx, TokenKey, result.Token); err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, UserKey, user); err != nil {
		return nil, err
	}
	if err := s.guard.Reset(ctx); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user logged in", logger.UserID(user.ID), logger.Role(user.Role))
	return &user, nil
}

// CurrentUser returns the stored profile or ErrNotLoggedIn.
func (s *Service) CurrentUser(ctx context.Context) (*User, error) {
	var u User
	if err := s.store.GetInto(ctx, UserKey, &u); err != nil {
		if errors.Is(err, securestore.ErrNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}
	return &u, nil
}

// Token returns the stored session token or ErrNotLoggedIn.
func (s *Service) Token(ctx context.Context) (string, error) {
	tok, err := s.store.GetString(ctx, TokenKey)
	if errors.Is(err, securestore.ErrNotFound) {
		return "", ErrNotLoggedIn
	}
	return tok, err
}

// Logout removes the token and the profile.
func (s *Service) Logout(ctx context.Context) error {
	return errors.Join(
		s.store.Remove(ctx, TokenKey),
		s.store.Remove(ctx, UserKey),
	)
}
