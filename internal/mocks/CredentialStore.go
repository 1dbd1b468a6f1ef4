package mocks

import (
	context "context"

	model "github.com/nicodelloro-arg/Employees/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// CredentialStore is a mock type for the CredentialStore type
type CredentialStore struct {
	mock.Mock
}

// Validate provides a mock function with given fields: ctx, username, password
func (_m *CredentialStore) Validate(ctx context.Context, username string, password string) (model.Credential, error) {
	ret := _m.Called(ctx, username, password)

	return ret.Get(0).(model.Credential), ret.Error(1)
}

// NewCredentialStore creates a new instance of CredentialStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewCredentialStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *CredentialStore {
	m := &CredentialStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
