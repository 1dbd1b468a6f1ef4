package model

import (
	"context"
	"time"
)

// EmployeeStore defines persistence and hierarchy queries for employees.
type EmployeeStore interface {
	GetByID(ctx context.Context, id int) (Employee, error)
	GetAll(ctx context.Context) ([]Employee, error)
	Exists(ctx context.Context, id int) (bool, error)
	GetDirectReports(ctx context.Context, supervisorID int) ([]Employee, error)
	GetTotalReportsCount(ctx context.Context, supervisorID int) (int, error)
	GetSupervisorChain(ctx context.Context, id int) ([]int, error)
	Create(ctx context.Context, req EmployeeRequest) (Employee, error)
	Update(ctx context.Context, id int, req EmployeeRequest) (Employee, error)
}

// Employee is a directory record with an optional reporting edge to its supervisor.
type Employee struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	SupervisorID *int      `json:"supervisorId"`
	CreatedDate  time.Time `json:"createdDate"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// ReportsTo reports whether the employee's supervisor is the given id.
func (e Employee) ReportsTo(supervisorID int) bool {
	return e.SupervisorID != nil && *e.SupervisorID == supervisorID
}

// EmployeeRequest carries the mutable fields of an employee.
type EmployeeRequest struct {
	Name         string `json:"name" validate:"notblank"`
	Email        string `json:"email" validate:"notblank"`
	SupervisorID *int   `json:"supervisorId"`
}

// EmployeeDetail is an employee together with its report counts.
type EmployeeDetail struct {
	Employee
	DirectReportsCount int `json:"directReportsCount"`
	TotalReportsCount  int `json:"totalReportsCount"`
}
