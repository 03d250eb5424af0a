package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/rutaapp/rutaapp/internal/config"
	"github.com/rutaapp/rutaapp/internal/engine"
	"github.com/rutaapp/rutaapp/internal/service"
	"github.com/rutaapp/rutaapp/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initEngine builds the shift engine on top of initialized storage. The
// caller owns the returned storage and must Close it.
func initEngine(ctx context.Context) (*engine.ShiftEngine, service.Storage, error) {
	store, err := initStorage(ctx)
	if err != nil {
		return nil, nil, err
	}

	eng := engine.New(store, initRemote(), initIdentity())
	if err := eng.Load(ctx); err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("failed to load state: %w", err)
	}

	return eng, store, nil
}

// initIdentity selects the identity collaborator at startup: the
// configured user when sync.user_id is set, anonymous otherwise.
func initIdentity() service.Identity {
	if id := viper.GetString("sync.user_id"); id != "" {
		return engine.UserIdentity{ID: id}
	}
	return engine.Anonymous{}
}

// initRemote selects the remote collaborator. No remote backend ships in
// this build, so the no-op store stands in behind the same interface.
func initRemote() service.RemoteStore {
	return engine.NoopRemote{}
}

// parseAmount parses a positive decimal amount argument.
func parseAmount(arg string) (float64, error) {
	amount, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", arg)
	}
	return amount, nil
}

// parseDate parses a YYYY-MM-DD flag value, nil when empty.
func parseDate(arg string) (*time.Time, error) {
	if arg == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", arg)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", arg)
	}
	return &t, nil
}
