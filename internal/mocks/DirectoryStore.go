package mocks

import (
	context "context"

	model "github.com/nicodelloro-arg/Employees/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// DirectoryStore is a mock type for the DirectoryStore type
type DirectoryStore struct {
	mock.Mock
}

// Load provides a mock function with given fields: ctx
func (_m *DirectoryStore) Load(ctx context.Context) (model.Directory, error) {
	ret := _m.Called(ctx)

	return ret.Get(0).(model.Directory), ret.Error(1)
}

// Save provides a mock function with given fields: ctx, directory
func (_m *DirectoryStore) Save(ctx context.Context, directory model.Directory) error {
	ret := _m.Called(ctx, directory)

	return ret.Error(0)
}

// NewDirectoryStore creates a new instance of DirectoryStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewDirectoryStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *DirectoryStore {
	m := &DirectoryStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
