package login_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/WassimBlilita7/ULMA/pkg/login"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, email, password string) (*login.Result, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*login.Result), args.Error(1)
}
