package engine

import (
	"context"
	"log/slog"

	"github.com/rutaapp/rutaapp/internal/common"
	"github.com/rutaapp/rutaapp/internal/model"
	"github.com/rutaapp/rutaapp/internal/reconcile"
)

// RequestClose produces the closing summary and archives it. The shift
// stays open: closing is split into two user actions so that a driver who
// opens the summary by mistake loses nothing. ConfirmClose finishes the
// transition.
func (e *ShiftEngine) RequestClose(ctx context.Context) (*model.HistoryEntry, error) {
	e.mu.Lock()
	if !e.shift.Started {
		e.mu.Unlock()
		return nil, common.NewUserError("no open shift to close", common.ErrShiftNotOpen)
	}
	if len(e.shift.Trips) == 0 {
		e.mu.Unlock()
		return nil, common.NewUserError("no trips recorded", common.ErrNoTrips)
	}
	entry := reconcile.CloseSummary(e.shift, e.now())
	e.mu.Unlock()

	if err := e.storage.AppendHistory(ctx, entry); err != nil {
		return nil, err
	}

	if userID, ok := e.identity.CurrentUser(); ok {
		if err := e.remote.AppendHistory(ctx, userID, entry); err != nil {
			common.LogError(err, "failed to archive shift remotely, keeping local copy", nil)
		}
		if err := e.remote.ClearShift(ctx, userID); err != nil {
			common.LogError(err, "failed to clear remote shift", nil)
		}
	}

	slog.Info("shift archived",
		"id", entry.ID,
		"trips", entry.TripCount,
		"duration_hours", entry.DurationHours)
	return entry, nil
}

// ConfirmClose completes the close: the ledger empties and the shift
// returns to the closed state. Call after RequestClose.
func (e *ShiftEngine) ConfirmClose(ctx context.Context) error {
	e.mu.Lock()
	e.shift.Trips = nil
	e.shift.Expenses = nil
	e.shift.Started = false
	e.shift.StartedAt = nil
	e.mu.Unlock()

	slog.Info("shift closed")
	return e.persistShift(ctx)
}
