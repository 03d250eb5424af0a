package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/rutaapp/rutaapp/internal/model"
)

// LoadSettings returns the persisted settings. A fresh database, or one
// whose platform list has been emptied, comes back with the defaults (and
// a deep copy of the platform seed).
func (s *SQLiteStorage) LoadSettings(ctx context.Context) (*model.Settings, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	settings := model.DefaultSettings()

	var goal float64
	var mode string
	err := s.db.QueryRowContext(ctx,
		`SELECT daily_goal, storage_mode FROM settings WHERE id = 1`,
	).Scan(&goal, &mode)
	switch {
	case err == sql.ErrNoRows:
		return &settings, nil
	case err != nil:
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	settings.DailyGoal = goal
	settings.StorageMode = model.StorageMode(mode)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, color FROM platforms ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query platforms: %w", err)
	}
	defer rows.Close()

	var platforms []model.Platform
	for rows.Next() {
		var p model.Platform
		if err := rows.Scan(&p.ID, &p.Name, &p.Color); err != nil {
			return nil, fmt.Errorf("failed to scan platform: %w", err)
		}
		platforms = append(platforms, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating platforms: %w", err)
	}

	// Empty registry means the user deleted everything; restore the seed
	// rather than leaving the app without platforms.
	if len(platforms) > 0 {
		settings.Platforms = platforms
	} else {
		settings.Platforms = model.DefaultPlatforms()
	}

	return &settings, nil
}

// SaveSettings replaces the persisted settings, platforms included.
func (s *SQLiteStorage) SaveSettings(ctx context.Context, settings *model.Settings) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if settings == nil {
		return fmt.Errorf("%w: settings", ErrNilParameter)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO settings (id, daily_goal, storage_mode, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			daily_goal = excluded.daily_goal,
			storage_mode = excluded.storage_mode,
			updated_at = excluded.updated_at`,
		settings.DailyGoal, string(settings.StorageMode), time.Now())
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM platforms`); err != nil {
		return fmt.Errorf("failed to clear platforms: %w", err)
	}
	for i, p := range settings.Platforms {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO platforms (id, name, color, position)
			VALUES (?, ?, ?, ?)`,
			p.ID, p.Name, p.Color, i)
		if err != nil {
			return fmt.Errorf("failed to save platform %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}

	slog.Debug("saved settings",
		"daily_goal", settings.DailyGoal,
		"platforms", len(settings.Platforms))
	return nil
}
