package jsonfile

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nicodelloro-arg/Employees/internal/model"
	"github.com/nicodelloro-arg/Employees/internal/testutil"
)

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func intPtr(v int) *int {
	return &v
}

// newTestStore writes directory to a fresh temp file and returns a Store over it.
func newTestStore(t *testing.T, directory model.Directory) *Store {
	t.Helper()

	store := NewStore(filepath.Join(t.TempDir(), "database.json"), testutil.MakeNoopLogger())
	require.NoError(t, store.Save(context.Background(), directory))
	return store
}

func employee(id int, supervisorID *int) model.Employee {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return model.Employee{
		ID:           id,
		Name:         "Employee",
		Email:        "employee@example.com",
		SupervisorID: supervisorID,
		CreatedDate:  ts,
		LastUpdated:  ts,
	}
}
