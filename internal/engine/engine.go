// Package engine implements the shift lifecycle and ledger owner. All
// mutations of the active shift and settings route through here; nothing
// else writes application state.
package engine

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/rutaapp/rutaapp/internal/common"
	"github.com/rutaapp/rutaapp/internal/model"
	"github.com/rutaapp/rutaapp/internal/service"
	"github.com/rutaapp/rutaapp/internal/syncer"
)

// ShiftEngine owns the loaded shift and settings. It persists locally on
// every mutation and mirrors to the remote collaborator when an identity
// is present; a failed remote write is logged and dropped, local state
// stays the durable copy.
type ShiftEngine struct {
	now      func() time.Time
	storage  service.Storage
	remote   service.RemoteStore
	identity service.Identity
	shift    *model.Shift
	settings *model.Settings
	mu       sync.Mutex
}

// New creates a shift engine with the given collaborators. remote and
// identity take their no-op defaults when nil.
func New(storage service.Storage, remote service.RemoteStore, identity service.Identity) *ShiftEngine {
	if remote == nil {
		remote = NoopRemote{}
	}
	if identity == nil {
		identity = Anonymous{}
	}
	return &ShiftEngine{
		storage:  storage,
		remote:   remote,
		identity: identity,
		now:      time.Now,
	}
}

// Load pulls settings and the active shift from local storage, then lets
// the remote copies win where the merge policy says they should.
func (e *ShiftEngine) Load(ctx context.Context) error {
	settings, err := e.storage.LoadSettings(ctx)
	if err != nil {
		return err
	}
	shift, err := e.storage.LoadShift(ctx)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.settings = settings
	e.shift = shift
	e.mu.Unlock()

	if userID, ok := e.identity.CurrentUser(); ok {
		e.loadRemote(ctx, userID)
	}
	return nil
}

// loadRemote overlays remote settings and history onto local state.
// Failures fall back to local data; the app works with zero connectivity.
func (e *ShiftEngine) loadRemote(ctx context.Context, userID string) {
	remoteSettings, err := e.remote.LoadSettings(ctx, userID)
	if err != nil {
		slog.Warn("failed to load remote settings, using local", "error", err)
	} else if remoteSettings != nil {
		e.mu.Lock()
		syncer.MergeSettings(e.settings, remoteSettings)
		e.mu.Unlock()
		if err := e.storage.SaveSettings(ctx, e.settings); err != nil {
			common.LogError(err, "failed to persist merged settings", nil)
		}
	}

	entries, err := e.remote.LoadHistory(ctx, userID, model.RemoteHistoryLimit)
	if err != nil {
		slog.Warn("failed to load remote history, using local", "error", err)
		return
	}
	if len(entries) > 0 {
		if err := e.storage.ReplaceHistory(ctx, entries); err != nil {
			common.LogError(err, "failed to persist remote history", nil)
		}
	}
}

// Snapshot returns deep copies of the current shift and settings for
// display and pure computation.
func (e *ShiftEngine) Snapshot() (*model.Shift, *model.Settings) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return copyShift(e.shift), copySettings(e.settings)
}

// StartShift opens a new shift. Anything left over from a prior unclosed
// shift is discarded; opening is a full reset, not an append.
func (e *ShiftEngine) StartShift(ctx context.Context) error {
	e.mu.Lock()
	if e.shift.Started {
		e.mu.Unlock()
		return common.NewUserError("the shift is already open", common.ErrShiftAlreadyOpen)
	}
	now := e.now()
	e.shift.Trips = nil
	e.shift.Expenses = nil
	e.shift.Started = true
	e.shift.StartedAt = &now
	e.mu.Unlock()

	slog.Info("shift opened", "started_at", now)
	return e.persistShift(ctx)
}

// ClearAll hard-resets to a closed shift with an empty ledger from any
// state, without archiving anything. Confirmation is the caller's job.
func (e *ShiftEngine) ClearAll(ctx context.Context) error {
	e.mu.Lock()
	e.shift.Trips = nil
	e.shift.Expenses = nil
	e.shift.Started = false
	e.shift.StartedAt = nil
	e.mu.Unlock()

	slog.Info("shift data cleared")
	return e.persistShift(ctx)
}

// AddTrip validates and appends a trip to the open shift.
func (e *ShiftEngine) AddTrip(ctx context.Context, platformID string, method model.PaymentMethod, gross float64) (*model.Trip, error) {
	e.mu.Lock()
	switch {
	case !e.shift.Started:
		e.mu.Unlock()
		return nil, common.NewUserError("start a shift first", common.ErrShiftNotOpen)
	case gross <= 0:
		e.mu.Unlock()
		return nil, common.NewUserError("enter an amount greater than zero", common.ErrInvalidAmount)
	case strings.TrimSpace(platformID) == "":
		e.mu.Unlock()
		return nil, common.NewUserError("select a platform", common.ErrMissingPlatform)
	case method == "":
		e.mu.Unlock()
		return nil, common.NewUserError("select a payment method", common.ErrMissingPayment)
	case !method.Valid():
		e.mu.Unlock()
		return nil, common.NewUserError("unknown payment method "+string(method), common.ErrInvalidPayment)
	}

	trip := model.NewTrip(e.now(), platformID, method, gross)
	// two adds inside the same millisecond would collide on the id
	for e.shift.TripByID(trip.ID) != nil {
		trip.ID++
	}
	e.shift.Trips = append(e.shift.Trips, trip)
	e.mu.Unlock()

	slog.Info("trip added",
		"id", trip.ID,
		"platform", trip.PlatformID,
		"method", trip.PaymentMethod,
		"gross", trip.GrossAmount)
	if err := e.persistShift(ctx); err != nil {
		return nil, err
	}
	return &trip, nil
}

// DeleteTrip removes a trip by id. Absent ids are not an error.
func (e *ShiftEngine) DeleteTrip(ctx context.Context, id int64) error {
	e.mu.Lock()
	kept := e.shift.Trips[:0]
	for _, trip := range e.shift.Trips {
		if trip.ID != id {
			kept = append(kept, trip)
		}
	}
	e.shift.Trips = kept
	e.mu.Unlock()

	return e.persistShift(ctx)
}

// AddExpense validates and appends an expense to the open shift.
func (e *ShiftEngine) AddExpense(ctx context.Context, category model.ExpenseCategory, amount float64) (*model.Expense, error) {
	e.mu.Lock()
	switch {
	case !e.shift.Started:
		e.mu.Unlock()
		return nil, common.NewUserError("start a shift first", common.ErrShiftNotOpen)
	case amount <= 0:
		e.mu.Unlock()
		return nil, common.NewUserError("enter an amount greater than zero", common.ErrInvalidAmount)
	case !category.Valid():
		e.mu.Unlock()
		return nil, common.NewUserError("unknown expense category "+string(category), common.ErrInvalidCategory)
	}

	now := e.now()
	expense := model.NewExpense(now, category, amount)
	for e.shift.ExpenseByID(expense.ID) != nil {
		now = now.Add(time.Millisecond)
		expense = model.NewExpense(now, category, amount)
	}
	e.shift.Expenses = append(e.shift.Expenses, expense)
	e.mu.Unlock()

	slog.Info("expense added",
		"id", expense.ID,
		"category", expense.Category,
		"amount", expense.Amount)
	if err := e.persistShift(ctx); err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteExpense removes an expense by id. Absent ids are not an error.
func (e *ShiftEngine) DeleteExpense(ctx context.Context, id string) error {
	e.mu.Lock()
	kept := e.shift.Expenses[:0]
	for _, expense := range e.shift.Expenses {
		if expense.ID != id {
			kept = append(kept, expense)
		}
	}
	e.shift.Expenses = kept
	e.mu.Unlock()

	return e.persistShift(ctx)
}

// ApplyRemoteShift feeds an incoming remote push through the merge policy.
// When the divergence heuristic fires the remote copy wins and is saved
// locally; the write is not mirrored back, which would echo forever.
func (e *ShiftEngine) ApplyRemoteShift(ctx context.Context, remote *model.Shift) {
	e.mu.Lock()
	applied := syncer.ApplyShift(e.shift, remote)
	snapshot := copyShift(e.shift)
	e.mu.Unlock()

	if !applied {
		return
	}

	slog.Info("applied remote shift update",
		"trips", len(snapshot.Trips),
		"expenses", len(snapshot.Expenses))
	if err := e.storage.SaveShift(ctx, snapshot); err != nil {
		common.LogError(err, "failed to persist remote shift update", nil)
	}
}

// persistShift writes the shift locally and mirrors it to the remote copy
// when signed in. Remote failures never block the caller.
func (e *ShiftEngine) persistShift(ctx context.Context) error {
	e.mu.Lock()
	snapshot := copyShift(e.shift)
	e.mu.Unlock()

	if err := e.storage.SaveShift(ctx, snapshot); err != nil {
		return err
	}

	if userID, ok := e.identity.CurrentUser(); ok {
		if err := e.remote.SaveShift(ctx, userID, snapshot); err != nil {
			common.LogError(err, "failed to save shift remotely, keeping local copy", nil)
		}
	}
	return nil
}

// persistSettings writes settings locally and mirrors them remotely.
func (e *ShiftEngine) persistSettings(ctx context.Context) error {
	e.mu.Lock()
	snapshot := copySettings(e.settings)
	e.mu.Unlock()

	if err := e.storage.SaveSettings(ctx, snapshot); err != nil {
		return err
	}

	if userID, ok := e.identity.CurrentUser(); ok {
		if err := e.remote.SaveSettings(ctx, userID, snapshot); err != nil {
			common.LogError(err, "failed to save settings remotely, keeping local copy", nil)
		}
	}
	return nil
}

func copyShift(s *model.Shift) *model.Shift {
	if s == nil {
		return &model.Shift{}
	}
	out := &model.Shift{Started: s.Started}
	if s.StartedAt != nil {
		t := *s.StartedAt
		out.StartedAt = &t
	}
	out.Trips = append([]model.Trip(nil), s.Trips...)
	out.Expenses = append([]model.Expense(nil), s.Expenses...)
	return out
}

func copySettings(s *model.Settings) *model.Settings {
	if s == nil {
		def := model.DefaultSettings()
		return &def
	}
	out := &model.Settings{
		DailyGoal:   s.DailyGoal,
		StorageMode: s.StorageMode,
	}
	out.Platforms = append([]model.Platform(nil), s.Platforms...)
	return out
}
