package mocks

import (
	context "context"

	model "github.com/nicodelloro-arg/Employees/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// AuthService is a mock type for the AuthService type
type AuthService struct {
	mock.Mock
}

// Login provides a mock function with given fields: ctx, username, password
func (_m *AuthService) Login(ctx context.Context, username string, password string) (model.LoginResponse, error) {
	ret := _m.Called(ctx, username, password)

	return ret.Get(0).(model.LoginResponse), ret.Error(1)
}

// NewAuthService creates a new instance of AuthService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthService {
	m := &AuthService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
