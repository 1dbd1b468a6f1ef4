package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nicodelloro-arg/Employees/internal/mocks"
	"github.com/nicodelloro-arg/Employees/internal/model"
	"github.com/nicodelloro-arg/Employees/internal/repository/jsonfile"
	"github.com/nicodelloro-arg/Employees/internal/testutil"
)

func intPtr(v int) *int { return &v }

func TestEmployee_GetByID(t *testing.T) {
	tests := []struct {
		name    string
		found   model.Employee
		err     error
		wantErr error
	}{
		{name: "found", found: model.Employee{ID: 1, Name: "A"}},
		{name: "not found", err: model.ErrEmployeeNotFound, wantErr: model.ErrEmployeeNotFound},
		{name: "store failure", err: model.ErrIO, wantErr: model.ErrIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewEmployeeStore(t)
			store.On("GetByID", mock.Anything, 1).Return(tt.found, tt.err).Once()

			svc := NewEmployee(store, testutil.MakeNoopLogger())

			got, err := svc.GetByID(context.Background(), 1)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.found, got)
		})
	}
}

func TestEmployee_GetAll_Error(t *testing.T) {
	store := mocks.NewEmployeeStore(t)
	store.On("GetAll", mock.Anything).Return(nil, model.ErrCorruptData).Once()

	svc := NewEmployee(store, testutil.MakeNoopLogger())

	_, err := svc.GetAll(context.Background())
	require.ErrorIs(t, err, model.ErrCorruptData)
}

func TestEmployee_GetDetailByID(t *testing.T) {
	manager := model.Employee{ID: 1, Name: "A", Email: "a@x"}

	tests := []struct {
		name       string
		getErr     error
		directErr  error
		totalErr   error
		wantErr    error
		wantDetail model.EmployeeDetail
	}{
		{
			name: "assembles counts",
			wantDetail: model.EmployeeDetail{
				Employee:           manager,
				DirectReportsCount: 2,
				TotalReportsCount:  5,
			},
		},
		{
			name:     "absence wins over other failures",
			getErr:   model.ErrEmployeeNotFound,
			totalErr: model.ErrIO,
			wantErr:  model.ErrEmployeeNotFound,
		},
		{
			name:      "report query failure",
			directErr: model.ErrCorruptData,
			wantErr:   model.ErrCorruptData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewEmployeeStore(t)

			found := manager
			if tt.getErr != nil {
				found = model.Employee{}
			}
			var direct []model.Employee
			if tt.directErr == nil {
				direct = []model.Employee{{ID: 2}, {ID: 3}}
			}
			store.On("GetByID", mock.Anything, 1).Return(found, tt.getErr).Once()
			store.On("GetDirectReports", mock.Anything, 1).Return(direct, tt.directErr).Once()
			store.On("GetTotalReportsCount", mock.Anything, 1).Return(5, tt.totalErr).Once()

			svc := NewEmployee(store, testutil.MakeNoopLogger())

			detail, err := svc.GetDetailByID(context.Background(), 1)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDetail, detail)
		})
	}
}

func TestEmployee_Create(t *testing.T) {
	t.Run("without supervisor skips existence check", func(t *testing.T) {
		req := model.EmployeeRequest{Name: "A", Email: "a@x"}
		store := mocks.NewEmployeeStore(t)
		store.On("Create", mock.Anything, req).Return(model.Employee{ID: 1, Name: "A", Email: "a@x"}, nil).Once()

		svc := NewEmployee(store, testutil.MakeNoopLogger())

		created, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 1, created.ID)
	})

	t.Run("unknown supervisor is rejected before create", func(t *testing.T) {
		req := model.EmployeeRequest{Name: "A", Email: "a@x", SupervisorID: intPtr(99)}
		store := mocks.NewEmployeeStore(t)
		store.On("Exists", mock.Anything, 99).Return(false, nil).Once()

		svc := NewEmployee(store, testutil.MakeNoopLogger())

		_, err := svc.Create(context.Background(), req)
		var validationErr *model.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Supervisor ID 99 does not exist", validationErr.Message)
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("existence check failure", func(t *testing.T) {
		req := model.EmployeeRequest{Name: "A", Email: "a@x", SupervisorID: intPtr(1)}
		store := mocks.NewEmployeeStore(t)
		store.On("Exists", mock.Anything, 1).Return(false, model.ErrDirectoryNotFound).Once()

		svc := NewEmployee(store, testutil.MakeNoopLogger())

		_, err := svc.Create(context.Background(), req)
		require.ErrorIs(t, err, model.ErrDirectoryNotFound)
	})
}

func TestEmployee_Update(t *testing.T) {
	tests := []struct {
		name        string
		supervisor  *int
		setup       func(store *mocks.EmployeeStore, req model.EmployeeRequest)
		wantMessage string
		wantErr     error
	}{
		{
			name:        "self supervision",
			supervisor:  intPtr(3),
			setup:       func(*mocks.EmployeeStore, model.EmployeeRequest) {},
			wantMessage: "Employee cannot be its own supervisor",
		},
		{
			name:       "unknown supervisor",
			supervisor: intPtr(42),
			setup: func(store *mocks.EmployeeStore, _ model.EmployeeRequest) {
				store.On("Exists", mock.Anything, 42).Return(false, nil).Once()
			},
			wantMessage: "Supervisor ID 42 does not exist",
		},
		{
			name:       "cycle through supervisor chain",
			supervisor: intPtr(5),
			setup: func(store *mocks.EmployeeStore, _ model.EmployeeRequest) {
				store.On("Exists", mock.Anything, 5).Return(true, nil).Once()
				store.On("GetSupervisorChain", mock.Anything, 5).Return([]int{4, 3, 1}, nil).Once()
			},
			wantMessage: "Supervisor assignment would create a cycle",
		},
		{
			name:       "missing employee",
			supervisor: intPtr(1),
			setup: func(store *mocks.EmployeeStore, req model.EmployeeRequest) {
				store.On("Exists", mock.Anything, 1).Return(true, nil).Once()
				store.On("GetSupervisorChain", mock.Anything, 1).Return([]int{}, nil).Once()
				store.On("Update", mock.Anything, 3, req).Return(model.Employee{}, model.ErrEmployeeNotFound).Once()
			},
			wantErr: model.ErrEmployeeNotFound,
		},
		{
			name: "clearing supervisor skips checks",
			setup: func(store *mocks.EmployeeStore, req model.EmployeeRequest) {
				store.On("Update", mock.Anything, 3, req).Return(model.Employee{ID: 3, Name: "C"}, nil).Once()
			},
		},
		{
			name:       "save failure",
			supervisor: intPtr(1),
			setup: func(store *mocks.EmployeeStore, req model.EmployeeRequest) {
				store.On("Exists", mock.Anything, 1).Return(true, nil).Once()
				store.On("GetSupervisorChain", mock.Anything, 1).Return([]int{}, nil).Once()
				store.On("Update", mock.Anything, 3, req).Return(model.Employee{}, model.ErrIO).Once()
			},
			wantErr: model.ErrIO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := model.EmployeeRequest{Name: "C", Email: "c@x", SupervisorID: tt.supervisor}
			store := mocks.NewEmployeeStore(t)
			tt.setup(store, req)

			svc := NewEmployee(store, testutil.MakeNoopLogger())

			updated, err := svc.Update(context.Background(), 3, req)
			switch {
			case tt.wantMessage != "":
				var validationErr *model.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantMessage, validationErr.Message)
				store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, 3, updated.ID)
			}
		})
	}
}

func newDirectoryFile(t *testing.T) *jsonfile.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "database.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"users":[],"employees":[]}`), 0o644))

	return jsonfile.NewStore(path, testutil.MakeNoopLogger())
}

func TestEmployee_Scenarios(t *testing.T) {
	ctx := context.Background()
	log := testutil.MakeNoopLogger()
	store := newDirectoryFile(t)
	svc := NewEmployee(jsonfile.NewEmployeeRepository(store, nil, log), log)

	a, err := svc.Create(ctx, model.EmployeeRequest{Name: "A", Email: "a@x"})
	require.NoError(t, err)
	assert.Equal(t, 1, a.ID)
	assert.Nil(t, a.SupervisorID)

	b, err := svc.Create(ctx, model.EmployeeRequest{Name: "B", Email: "b@x", SupervisorID: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, 2, b.ID)
	require.NotNil(t, b.SupervisorID)
	assert.Equal(t, 1, *b.SupervisorID)

	detail, err := svc.GetDetailByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.DirectReportsCount)
	assert.Equal(t, 1, detail.TotalReportsCount)

	before, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	_, err = svc.Update(ctx, 1, model.EmployeeRequest{Name: "A2", Email: "a2@x", SupervisorID: intPtr(2)})
	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Supervisor assignment would create a cycle", validationErr.Message)

	_, err = svc.Update(ctx, 2, model.EmployeeRequest{Name: "B", Email: "b@x", SupervisorID: intPtr(2)})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Employee cannot be its own supervisor", validationErr.Message)

	_, err = svc.Create(ctx, model.EmployeeRequest{Name: "C", Email: "c@x", SupervisorID: intPtr(9)})
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.Update(ctx, 9, model.EmployeeRequest{Name: "Z", Email: "z@x"})
	require.True(t, errors.Is(err, model.ErrEmployeeNotFound))

	after, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestEmployee_Update_ThreeWayCycleRejected(t *testing.T) {
	ctx := context.Background()
	log := testutil.MakeNoopLogger()
	svc := NewEmployee(jsonfile.NewEmployeeRepository(newDirectoryFile(t), nil, log), log)

	_, err := svc.Create(ctx, model.EmployeeRequest{Name: "A", Email: "a@x"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, model.EmployeeRequest{Name: "B", Email: "b@x", SupervisorID: intPtr(1)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, model.EmployeeRequest{Name: "C", Email: "c@x", SupervisorID: intPtr(2)})
	require.NoError(t, err)

	_, err = svc.Update(ctx, 1, model.EmployeeRequest{Name: "A", Email: "a@x", SupervisorID: intPtr(3)})
	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)

	// moving a subtree under an unrelated branch is fine
	d, err := svc.Create(ctx, model.EmployeeRequest{Name: "D", Email: "d@x"})
	require.NoError(t, err)
	moved, err := svc.Update(ctx, 2, model.EmployeeRequest{Name: "B", Email: "b@x", SupervisorID: intPtr(d.ID)})
	require.NoError(t, err)
	assert.Equal(t, d.ID, *moved.SupervisorID)
	assert.WithinDuration(t, time.Now(), moved.LastUpdated, time.Minute)

	detail, err := svc.GetDetailByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.DirectReportsCount)
	assert.Equal(t, 2, detail.TotalReportsCount)
}
