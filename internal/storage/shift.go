package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/rutaapp/rutaapp/internal/model"
)

// LoadShift returns the active shift. A database that has never seen a
// shift yields a closed, empty one.
func (s *SQLiteStorage) LoadShift(ctx context.Context) (*model.Shift, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	shift := &model.Shift{}

	var started int
	var startedAt sql.NullTime
	err := s.db.QueryRowContext(ctx,
		`SELECT started, started_at FROM shift_state WHERE id = 1`,
	).Scan(&started, &startedAt)
	switch {
	case err == sql.ErrNoRows:
		return shift, nil
	case err != nil:
		return nil, fmt.Errorf("failed to load shift state: %w", err)
	}

	shift.Started = started != 0
	if startedAt.Valid {
		t := startedAt.Time
		shift.StartedAt = &t
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, platform_id, payment_method, gross_amount, toll_amount, net_amount
		FROM trips ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var trip model.Trip
		var method string
		if err := rows.Scan(&trip.ID, &trip.Timestamp, &trip.PlatformID, &method,
			&trip.GrossAmount, &trip.TollAmount, &trip.NetAmount); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trip.PaymentMethod = model.PaymentMethod(method)
		shift.Trips = append(shift.Trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trips: %w", err)
	}

	expRows, err := s.db.QueryContext(ctx,
		`SELECT id, category, amount FROM expenses ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer expRows.Close()

	for expRows.Next() {
		var expense model.Expense
		var category string
		if err := expRows.Scan(&expense.ID, &category, &expense.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Category = model.ExpenseCategory(category)
		shift.Expenses = append(shift.Expenses, expense)
	}
	if err := expRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return shift, nil
}

// SaveShift replaces the persisted shift with the given one. The write is
// transactional: state row, trips, and expenses move together.
func (s *SQLiteStorage) SaveShift(ctx context.Context, shift *model.Shift) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateShift(shift); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var startedAt any
	if shift.StartedAt != nil {
		startedAt = *shift.StartedAt
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO shift_state (id, started, started_at, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			started = excluded.started,
			started_at = excluded.started_at,
			updated_at = excluded.updated_at`,
		boolToInt(shift.Started), startedAt, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save shift state: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM trips`); err != nil {
		return fmt.Errorf("failed to clear trips: %w", err)
	}
	for i, trip := range shift.Trips {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO trips (id, timestamp, platform_id, payment_method, gross_amount, toll_amount, net_amount, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			trip.ID, trip.Timestamp, trip.PlatformID, string(trip.PaymentMethod),
			trip.GrossAmount, trip.TollAmount, trip.NetAmount, i)
		if err != nil {
			return fmt.Errorf("failed to save trip %d: %w", trip.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("failed to clear expenses: %w", err)
	}
	for i, expense := range shift.Expenses {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO expenses (id, category, amount, position)
			VALUES (?, ?, ?, ?)`,
			expense.ID, string(expense.Category), expense.Amount, i)
		if err != nil {
			return fmt.Errorf("failed to save expense %s: %w", expense.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit shift: %w", err)
	}

	slog.Debug("saved shift",
		"started", shift.Started,
		"trips", len(shift.Trips),
		"expenses", len(shift.Expenses))
	return nil
}

// SetBaseCash stores the driver's cash float alongside the shift state.
func (s *SQLiteStorage) SetBaseCash(ctx context.Context, amount float64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO shift_state (id, base_cash, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			base_cash = excluded.base_cash,
			updated_at = excluded.updated_at`,
		amount, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save base cash: %w", err)
	}
	return nil
}

// BaseCash returns the stored cash float, zero if never set.
func (s *SQLiteStorage) BaseCash(ctx context.Context) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var amount float64
	err := s.db.QueryRowContext(ctx,
		`SELECT base_cash FROM shift_state WHERE id = 1`).Scan(&amount)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load base cash: %w", err)
	}
	return amount, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
