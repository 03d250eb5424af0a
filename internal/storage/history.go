package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/rutaapp/rutaapp/internal/model"
)

// AppendHistory adds a closed-shift snapshot to the end of the archive.
func (s *SQLiteStorage) AppendHistory(ctx context.Context, entry *model.HistoryEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateHistoryEntry(entry); err != nil {
		return err
	}

	perPlatform, err := json.Marshal(entry.PerPlatform)
	if err != nil {
		return fmt.Errorf("failed to encode platform stats: %w", err)
	}
	trips, err := json.Marshal(entry.Trips)
	if err != nil {
		return fmt.Errorf("failed to encode trip snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO history_entries
			(id, closed_at, trip_count, gross_total, net_total, earnings, duration_hours, per_platform, trips, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(position), -1) + 1 FROM history_entries))`,
		entry.ID, entry.ClosedAt, entry.TripCount, entry.GrossTotal, entry.NetTotal,
		entry.Earnings, entry.DurationHours, string(perPlatform), string(trips))
	if err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}

	slog.Debug("archived shift",
		"id", entry.ID,
		"trips", entry.TripCount,
		"earnings", entry.Earnings)
	return nil
}

// GetHistory returns the whole archive in append order.
func (s *SQLiteStorage) GetHistory(ctx context.Context) ([]model.HistoryEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, closed_at, trip_count, gross_total, net_total, earnings, duration_hours, per_platform, trips
		FROM history_entries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []model.HistoryEntry
	for rows.Next() {
		var entry model.HistoryEntry
		var perPlatform, trips string
		if err := rows.Scan(&entry.ID, &entry.ClosedAt, &entry.TripCount, &entry.GrossTotal,
			&entry.NetTotal, &entry.Earnings, &entry.DurationHours, &perPlatform, &trips); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		if err := json.Unmarshal([]byte(perPlatform), &entry.PerPlatform); err != nil {
			return nil, fmt.Errorf("failed to decode platform stats for %s: %w", entry.ID, err)
		}
		if err := json.Unmarshal([]byte(trips), &entry.Trips); err != nil {
			return nil, fmt.Errorf("failed to decode trip snapshot for %s: %w", entry.ID, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history: %w", err)
	}

	return entries, nil
}

// ReplaceHistory swaps the whole archive for the given entries, preserving
// their order. Used when the remote copy wins on load.
func (s *SQLiteStorage) ReplaceHistory(ctx context.Context, entries []model.HistoryEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM history_entries`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	for i := range entries {
		entry := &entries[i]
		if err := validateHistoryEntry(entry); err != nil {
			return err
		}
		perPlatform, err := json.Marshal(entry.PerPlatform)
		if err != nil {
			return fmt.Errorf("failed to encode platform stats: %w", err)
		}
		trips, err := json.Marshal(entry.Trips)
		if err != nil {
			return fmt.Errorf("failed to encode trip snapshot: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO history_entries
				(id, closed_at, trip_count, gross_total, net_total, earnings, duration_hours, per_platform, trips, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			entry.ID, entry.ClosedAt, entry.TripCount, entry.GrossTotal, entry.NetTotal,
			entry.Earnings, entry.DurationHours, string(perPlatform), string(trips), i)
		if err != nil {
			return fmt.Errorf("failed to insert history entry %s: %w", entry.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history: %w", err)
	}
	return nil
}
