package jsonfile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nicodelloro-arg/Employees/internal/logger"
	"github.com/nicodelloro-arg/Employees/internal/model"
)

var _ model.EmployeeStore = (*EmployeeRepository)(nil)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// exclusiveSection serializes load-mutate-save cycles against the directory document.
type exclusiveSection struct {
	mu sync.Mutex
}

func (s *exclusiveSection) Do(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// writes is shared by every repository in the process.
var writes = &exclusiveSection{}

// EmployeeRepository stores employees in the directory document and answers
// reporting-graph queries. Reads are unguarded; Create and Update run inside
// one process-wide exclusive section.
type EmployeeRepository struct {
	store   model.DirectoryStore
	section *exclusiveSection
	clock   Clock
	logger  *logger.Logger
}

// NewEmployeeRepository creates an EmployeeRepository. A nil clock uses UTC wall time.
func NewEmployeeRepository(store model.DirectoryStore, clock Clock, logger *logger.Logger) *EmployeeRepository {
	if clock == nil {
		clock = realClock{}
	}
	return &EmployeeRepository{
		store:   store,
		section: writes,
		clock:   clock,
		logger:  logger,
	}
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int) (model.Employee, error) {
	directory, err := r.store.Load(ctx)
	if err != nil {
		return model.Employee{}, err
	}

	for _, e := range directory.Employees {
		if e.ID == id {
			return e, nil
		}
	}

	return model.Employee{}, model.ErrEmployeeNotFound
}

func (r *EmployeeRepository) GetAll(ctx context.Context) ([]model.Employee, error) {
	directory, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return directory.Employees, nil
}

func (r *EmployeeRepository) Exists(ctx context.Context, id int) (bool, error) {
	directory, err := r.store.Load(ctx)
	if err != nil {
		return false, err
	}

	for _, e := range directory.Employees {
		if e.ID == id {
			return true, nil
		}
	}

	return false, nil
}

func (r *EmployeeRepository) GetDirectReports(ctx context.Context, supervisorID int) ([]model.Employee, error) {
	directory, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]model.Employee, 0)
	for _, e := range directory.Employees {
		if e.ReportsTo(supervisorID) {
			reports = append(reports, e)
		}
	}

	return reports, nil
}

// GetTotalReportsCount returns the number of employees reachable below
// supervisorID through reporting edges, at any depth.
func (r *EmployeeRepository) GetTotalReportsCount(ctx context.Context, supervisorID int) (int, error) {
	directory, err := r.store.Load(ctx)
	if err != nil {
		return 0, err
	}

	return countReports(supervisorID, directory.Employees), nil
}

// GetSupervisorChain returns the ids above id, nearest supervisor first. The
// walk stops at a root, at a dangling reference, or at an id already seen.
func (r *EmployeeRepository) GetSupervisorChain(ctx context.Context, id int) ([]int, error) {
	directory, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]model.Employee, len(directory.Employees))
	for _, e := range directory.Employees {
		byID[e.ID] = e
	}

	current, ok := byID[id]
	if !ok {
		return nil, model.ErrEmployeeNotFound
	}

	chain := make([]int, 0)
	seen := map[int]bool{id: true}
	for current.SupervisorID != nil && !seen[*current.SupervisorID] {
		next := *current.SupervisorID
		chain = append(chain, next)
		seen[next] = true

		current, ok = byID[next]
		if !ok {
			break
		}
	}

	return chain, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, req model.EmployeeRequest) (model.Employee, error) {
	var created model.Employee

	err := r.section.Do(func() error {
		directory, err := r.store.Load(ctx)
		if err != nil {
			return err
		}

		now := r.clock.Now()
		created = model.Employee{
			ID:           nextID(directory.Employees),
			Name:         req.Name,
			Email:        req.Email,
			SupervisorID: copyID(req.SupervisorID),
			CreatedDate:  now,
			LastUpdated:  now,
		}
		directory.Employees = append(directory.Employees, created)

		if err := r.store.Save(ctx, directory); err != nil {
			return fmt.Errorf("failed to save directory: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Employee{}, err
	}

	r.logger.Debug("Employee repository: employee created", "employee_id", created.ID)

	return created, nil
}

// Update overwrites name, email and supervisor of the employee with id.
// A missing id returns ErrEmployeeNotFound and leaves the document untouched.
func (r *EmployeeRepository) Update(ctx context.Context, id int, req model.EmployeeRequest) (model.Employee, error) {
	var updated model.Employee

	err := r.section.Do(func() error {
		directory, err := r.store.Load(ctx)
		if err != nil {
			return err
		}

		idx := -1
		for i, e := range directory.Employees {
			if e.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return model.ErrEmployeeNotFound
		}

		e := &directory.Employees[idx]
		e.Name = req.Name
		e.Email = req.Email
		e.SupervisorID = copyID(req.SupervisorID)
		e.LastUpdated = r.clock.Now()
		updated = *e

		if err := r.store.Save(ctx, directory); err != nil {
			return fmt.Errorf("failed to save directory: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Employee{}, err
	}

	r.logger.Debug("Employee repository: employee updated", "employee_id", updated.ID)

	return updated, nil
}

func nextID(employees []model.Employee) int {
	maxID := 0
	for _, e := range employees {
		maxID = max(maxID, e.ID)
	}
	return maxID + 1
}

// countReports walks the supervisor->children index with an explicit stack.
// The visited set keeps malformed (cyclic) data from looping forever.
func countReports(supervisorID int, employees []model.Employee) int {
	children := make(map[int][]int, len(employees))
	for _, e := range employees {
		if e.SupervisorID != nil {
			children[*e.SupervisorID] = append(children[*e.SupervisorID], e.ID)
		}
	}

	visited := map[int]bool{supervisorID: true}
	stack := append([]int(nil), children[supervisorID]...)
	count := 0
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		count++
		stack = append(stack, children[id]...)
	}

	return count
}

func copyID(id *int) *int {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
