package mocks

import (
	context "context"

	model "github.com/nicodelloro-arg/Employees/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// EmployeeService is a mock type for the EmployeeService type
type EmployeeService struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, req
func (_m *EmployeeService) Create(ctx context.Context, req model.EmployeeRequest) (model.Employee, error) {
	ret := _m.Called(ctx, req)

	return ret.Get(0).(model.Employee), ret.Error(1)
}

// GetAll provides a mock function with given fields: ctx
func (_m *EmployeeService) GetAll(ctx context.Context) ([]model.Employee, error) {
	ret := _m.Called(ctx)

	var r0 []model.Employee
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Employee)
	}

	return r0, ret.Error(1)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *EmployeeService) GetByID(ctx context.Context, id int) (model.Employee, error) {
	ret := _m.Called(ctx, id)

	return ret.Get(0).(model.Employee), ret.Error(1)
}

// GetDetailByID provides a mock function with given fields: ctx, id
func (_m *EmployeeService) GetDetailByID(ctx context.Context, id int) (model.EmployeeDetail, error) {
	ret := _m.Called(ctx, id)

	return ret.Get(0).(model.EmployeeDetail), ret.Error(1)
}

// Update provides a mock function with given fields: ctx, id, req
func (_m *EmployeeService) Update(ctx context.Context, id int, req model.EmployeeRequest) (model.Employee, error) {
	ret := _m.Called(ctx, id, req)

	return ret.Get(0).(model.Employee), ret.Error(1)
}

// NewEmployeeService creates a new instance of EmployeeService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewEmployeeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *EmployeeService {
	m := &EmployeeService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
