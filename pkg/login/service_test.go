package login_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/WassimBlilita7/ULMA/pkg/logger"
	"github.com/WassimBlilita7/ULMA/pkg/login"
	"github.com/WassimBlilita7/ULMA/pkg/securestore"
	"github.com/WassimBlilita7/ULMA/pkg/validator"
)

const validPassword = "Secret123"

func newService(t *testing.T, auth login.Authenticator, opts ...login.Option) (*login.Service, *securestore.MemoryBackend) {
	t.Helper()
	backend := securestore.NewMemoryBackend()
	return login.NewService(securestore.New(backend), auth, opts...), backend
}

func TestLoginSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	auth := &MockAuthenticator{}
	auth.On("Authenticate", ctx, "john.doe@example.com", validPassword).Return(&login.Result{
		Token: "tok-abc",
		User:  login.User{ID: "42", Email: "ignored@example.com", Role: "student"},
	}, nil)

	buf := &bytes.Buffer{}
	svc, backend := newService(t, auth, login.WithLogger(logger.New(logger.WithOutput(buf))))

	user, err := svc.Login(ctx, login.Credentials{Email: "John.Doe@Example.com", Password: validPassword})
	require.NoError(t, err)
	assert.Equal(t, &login.User{ID: "42", Email: "john.doe@example.com", Role: "student"}, user)

	tok, err := svc.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", tok)

	current, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, current)

	for key, raw := range backend.Snapshot() {
		assert.NotContains(t, raw, "tok-abc", key)
		assert.NotContains(t, raw, "john.doe", key)
	}
	assert.Contains(t, buf.String(), `"user_id":"42"`)
	auth.AssertExpectations(t)
}

func TestLoginValidationFailure(t *testing.T) {
	t.Parallel()

	auth := &MockAuthenticator{}
	svc, _ := newService(t, auth)

	_, err := svc.Login(context.Background(), login.Credentials{Email: "bad", Password: "weak"})
	require.ErrorIs(t, err, validator.ErrValidationFailed)

	errs := validator.ExtractValidationErrors(err)
	assert.True(t, errs.Has("email"))
	assert.True(t, errs.Has("password"))

	assert.Equal(t, 0, svc.Guard().Attempts())
	auth.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginInvalidCredentialsLeadToLockout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	auth := &MockAuthenticator{}
	auth.On("Authenticate", ctx, "a@b.fr", validPassword).Return(nil, login.ErrInvalidCredentials)

	svc, _ := newService(t, auth)
	creds := login.Credentials{Email: "a@b.fr", Password: validPassword}

	for i := 1; i < login.DefaultMaxAttempts; i++ {
		_, err := svc.Login(ctx, creds)
		require.ErrorIs(t, err, login.ErrInvalidCredentials)
		assert.Equal(t, login.DefaultMaxAttempts-i, svc.Guard().Remaining())
	}

	_, err := svc.Login(ctx, creds)
	var locked *login.LockoutError
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, 5, locked.Minutes())

	_, err = svc.Login(ctx, creds)
	require.ErrorIs(t, err, login.ErrLockedOut)

	auth.AssertNumberOfCalls(t, "Authenticate", login.DefaultMaxAttempts)
}

func TestLoginEmptyTokenCountsAsFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	auth := &MockAuthenticator{}
	auth.On("Authenticate", ctx, "a@b.fr", validPassword).Return(&login.Result{}, nil)

	svc, _ := newService(t, auth)
	_, err := svc.Login(ctx, login.Credentials{Email: "a@b.fr", Password: validPassword})
	require.ErrorIs(t, err, login.ErrInvalidCredentials)
	assert.Equal(t, 1, svc.Guard().Attempts())
}

func TestLoginUnavailableDoesNotCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	auth := &MockAuthenticator{}
	netErr := errors.New("connection refused")
	auth.On("Authenticate", ctx, "a@b.fr", validPassword).Return(nil, netErr)

	svc, _ := newService(t, auth)
	_, err := svc.Login(ctx, login.Credentials{Email: "a@b.fr", Password: validPassword})
	require.ErrorIs(t, err, login.ErrUnavailable)
	require.ErrorIs(t, err, netErr)
	assert.Equal(t, 0, svc.Guard().Attempts())
}

func TestLoginSuccessResetsAttempts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	auth := &MockAuthenticator{}
	auth.On("Authenticate", ctx, "a@b.fr", "Wrong1234").Return(nil, login.ErrInvalidCredentials)
	auth.On("Authenticate", ctx, "a@b.fr", validPassword).Return(&login.Result{Token: "t", User: login.User{ID: "1"}}, nil)

	svc, _ := newService(t, auth)
	_, err := svc.Login(ctx, login.Credentials{Email: "a@b.fr", Password: "Wrong1234"})
	require.ErrorIs(t, err, login.ErrInvalidCredentials)
	assert.Equal(t, 1, svc.Guard().Attempts())

	_, err = svc.Login(ctx, login.Credentials{Email: "a@b.fr", Password: validPassword})
	require.NoError(t, err)
	assert.Equal(t, 0, svc.Guard().Attempts())
}

func TestLogout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	auth := &MockAuthenticator{}
	auth.On("Authenticate", ctx, "a@b.fr", validPassword).Return(&login.Result{Token: "t", User: login.User{ID: "1", Role: "admin"}}, nil)

	svc, backend := newService(t, auth)

	_, err := svc.CurrentUser(ctx)
	require.ErrorIs(t, err, login.ErrNotLoggedIn)
	_, err = svc.Token(ctx)
	require.ErrorIs(t, err, login.ErrNotLoggedIn)

	_, err = svc.Login(ctx, login.Credentials{Email: "a@b.fr", Password: validPassword})
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	_, err = svc.CurrentUser(ctx)
	require.ErrorIs(t, err, login.ErrNotLoggedIn)
	assert.Empty(t, backend.Snapshot())
}
