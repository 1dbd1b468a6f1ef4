package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/nicodelloro-arg/Employees/internal/logger"
	"github.com/nicodelloro-arg/Employees/internal/model"
)

// Employee enforces supervisor integrity on top of the employee store and
// assembles detail views.
type Employee struct {
	store  model.EmployeeStore
	logger *logger.Logger
}

func NewEmployee(store model.EmployeeStore, logger *logger.Logger) *Employee {
	return &Employee{store: store, logger: logger}
}

func (s *Employee) GetAll(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.store.GetAll(ctx)
	if err != nil {
		s.logger.Error("Employee service: failed to list employees",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employees, nil
}

func (s *Employee) GetByID(ctx context.Context, id int) (model.Employee, error) {
	employee, err := s.store.GetByID(ctx, id)
	if errors.Is(err, model.ErrEmployeeNotFound) {
		return model.Employee{}, err
	}
	if err != nil {
		s.logger.Error("Employee service: failed to get employee",
			"employee_id", id,
			"error", err.Error())
		return model.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee, nil
}

// GetDetailByID loads the employee, its direct reports and its total report
// count concurrently. A missing employee wins over any other outcome.
func (s *Employee) GetDetailByID(ctx context.Context, id int) (model.EmployeeDetail, error) {
	var (
		employee    model.Employee
		employeeErr error
		direct      []model.Employee
		total       int
	)

	var g errgroup.Group
	g.Go(func() error {
		employee, employeeErr = s.store.GetByID(ctx, id)
		return employeeErr
	})
	g.Go(func() error {
		var err error
		direct, err = s.store.GetDirectReports(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.store.GetTotalReportsCount(ctx, id)
		return err
	})
	err := g.Wait()

	if errors.Is(employeeErr, model.ErrEmployeeNotFound) {
		return model.EmployeeDetail{}, employeeErr
	}
	if err != nil {
		s.logger.Error("Employee service: failed to get employee detail",
			"employee_id", id,
			"error", err.Error())
		return model.EmployeeDetail{}, fmt.Errorf("failed to get employee detail: %w", err)
	}

	return model.EmployeeDetail{
		Employee:           employee,
		DirectReportsCount: len(direct),
		TotalReportsCount:  total,
	}, nil
}

func (s *Employee) Create(ctx context.Context, req model.EmployeeRequest) (model.Employee, error) {
	if req.SupervisorID != nil {
		if err := s.checkSupervisorExists(ctx, *req.SupervisorID); err != nil {
			return model.Employee{}, err
		}
	}

	employee, err := s.store.Create(ctx, req)
	if err != nil {
		s.logger.Error("Employee service: failed to create employee",
			"error", err.Error())
		return model.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	s.logger.Info("Employee service: employee created",
		"employee_id", employee.ID)

	return employee, nil
}

// Update rejects self-supervision, unknown supervisors and assignments that
// would close a reporting cycle, then overwrites the employee.
func (s *Employee) Update(ctx context.Context, id int, req model.EmployeeRequest) (model.Employee, error) {
	if req.SupervisorID != nil {
		supervisorID := *req.SupervisorID
		if supervisorID == id {
			return model.Employee{}, model.NewValidationError("Employee cannot be its own supervisor")
		}

		if err := s.checkSupervisorExists(ctx, supervisorID); err != nil {
			return model.Employee{}, err
		}

		chain, err := s.store.GetSupervisorChain(ctx, supervisorID)
		if err != nil {
			s.logger.Error("Employee service: failed to get supervisor chain",
				"employee_id", id,
				"supervisor_id", supervisorID,
				"error", err.Error())
			return model.Employee{}, fmt.Errorf("failed to get supervisor chain: %w", err)
		}
		if slices.Contains(chain, id) {
			s.logger.Info("Employee service: rejected cyclic supervisor",
				"employee_id", id,
				"supervisor_id", supervisorID)
			return model.Employee{}, model.NewValidationError("Supervisor assignment would create a cycle")
		}
	}

	employee, err := s.store.Update(ctx, id, req)
	if errors.Is(err, model.ErrEmployeeNotFound) {
		return model.Employee{}, err
	}
	if err != nil {
		s.logger.Error("Employee service: failed to update employee",
			"employee_id", id,
			"error", err.Error())
		return model.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	s.logger.Info("Employee service: employee updated",
		"employee_id", id)

	return employee, nil
}

func (s *Employee) checkSupervisorExists(ctx context.Context, supervisorID int) error {
	exists, err := s.store.Exists(ctx, supervisorID)
	if err != nil {
		s.logger.Error("Employee service: failed to check supervisor",
			"supervisor_id", supervisorID,
			"error", err.Error())
		return fmt.Errorf("failed to check supervisor: %w", err)
	}
	if !exists {
		return model.NewValidationError("Supervisor ID %d does not exist", supervisorID)
	}

	return nil
}
