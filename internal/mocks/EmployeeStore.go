package mocks

import (
	context "context"

	model "github.com/nicodelloro-arg/Employees/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// EmployeeStore is a mock type for the EmployeeStore type
type EmployeeStore struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, req
func (_m *EmployeeStore) Create(ctx context.Context, req model.EmployeeRequest) (model.Employee, error) {
	ret := _m.Called(ctx, req)

	return ret.Get(0).(model.Employee), ret.Error(1)
}

// Exists provides a mock function with given fields: ctx, id
func (_m *EmployeeStore) Exists(ctx context.Context, id int) (bool, error) {
	ret := _m.Called(ctx, id)

	return ret.Bool(0), ret.Error(1)
}

// GetAll provides a mock function with given fields: ctx
func (_m *EmployeeStore) GetAll(ctx context.Context) ([]model.Employee, error) {
	ret := _m.Called(ctx)

	var r0 []model.Employee
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Employee)
	}

	return r0, ret.Error(1)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *EmployeeStore) GetByID(ctx context.Context, id int) (model.Employee, error) {
	ret := _m.Called(ctx, id)

	return ret.Get(0).(model.Employee), ret.Error(1)
}

// GetDirectReports provides a mock function with given fields: ctx, supervisorID
func (_m *EmployeeStore) GetDirectReports(ctx context.Context, supervisorID int) ([]model.Employee, error) {
	ret := _m.Called(ctx, supervisorID)

	var r0 []model.Employee
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Employee)
	}

	return r0, ret.Error(1)
}

// GetSupervisorChain provides a mock function with given fields: ctx, id
func (_m *EmployeeStore) GetSupervisorChain(ctx context.Context, id int) ([]int, error) {
	ret := _m.Called(ctx, id)

	var r0 []int
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]int)
	}

	return r0, ret.Error(1)
}

// GetTotalReportsCount provides a mock function with given fields: ctx, supervisorID
func (_m *EmployeeStore) GetTotalReportsCount(ctx context.Context, supervisorID int) (int, error) {
	ret := _m.Called(ctx, supervisorID)

	return ret.Int(0), ret.Error(1)
}

// Update provides a mock function with given fields: ctx, id, req
func (_m *EmployeeStore) Update(ctx context.Context, id int, req model.EmployeeRequest) (model.Employee, error) {
	ret := _m.Called(ctx, id, req)

	return ret.Get(0).(model.Employee), ret.Error(1)
}

// NewEmployeeStore creates a new instance of EmployeeStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewEmployeeStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *EmployeeStore {
	m := &EmployeeStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
