// Package testutil provides shared helpers for tests that need a real
// migrated database or prebuilt shift fixtures.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rutaapp/rutaapp/internal/model"
	"github.com/rutaapp/rutaapp/internal/service"
	"github.com/rutaapp/rutaapp/internal/storage"
)

// TestDB wraps a migrated on-disk database scoped to a single test.
type TestDB struct {
	Storage service.Storage
	t       *testing.T
}

// SetupTestDB creates a migrated database under t.TempDir. Cleanup is
// registered automatically.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return &TestDB{Storage: store, t: t}
}

// OpenShift builds an open shift started at the given time with the given
// trips and expenses.
func OpenShift(startedAt time.Time, trips []model.Trip, expenses []model.Expense) *model.Shift {
	return &model.Shift{
		StartedAt: &startedAt,
		Trips:     trips,
		Expenses:  expenses,
		Started:   true,
	}
}
