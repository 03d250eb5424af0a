package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutaapp/rutaapp/internal/common"
	"github.com/rutaapp/rutaapp/internal/model"
	"github.com/rutaapp/rutaapp/internal/service"
	"github.com/rutaapp/rutaapp/internal/testutil"
)

// fakeRemote records calls and can fail on demand.
type fakeRemote struct {
	NoopRemote
	savedShifts   []*model.Shift
	appended      []*model.HistoryEntry
	clearedShifts int
	failSave      bool
}

func (f *fakeRemote) SaveShift(_ context.Context, _ string, shift *model.Shift) error {
	if f.failSave {
		return errors.New("network down")
	}
	f.savedShifts = append(f.savedShifts, shift)
	return nil
}

func (f *fakeRemote) AppendHistory(_ context.Context, _ string, entry *model.HistoryEntry) error {
	f.appended = append(f.appended, entry)
	return nil
}

func (f *fakeRemote) ClearShift(_ context.Context, _ string) error {
	f.clearedShifts++
	return nil
}

// signedIn is an identity with a fixed user.
type signedIn struct{}

func (signedIn) CurrentUser() (string, bool) { return "driver-1", true }

func newTestEngine(t *testing.T, remote service.RemoteStore, identity service.Identity) *ShiftEngine {
	t.Helper()

	db := testutil.SetupTestDB(t)
	eng := New(db.Storage, remote, identity)
	require.NoError(t, eng.Load(context.Background()))

	eng.now = func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	}
	return eng
}

func TestUserIdentity(t *testing.T) {
	id, ok := UserIdentity{ID: "driver-1"}.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, "driver-1", id)

	// an empty configured id counts as anonymous
	_, ok = UserIdentity{}.CurrentUser()
	assert.False(t, ok)

	_, ok = Anonymous{}.CurrentUser()
	assert.False(t, ok)
}

func TestStartShift(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, nil, nil)

	require.NoError(t, eng.StartShift(ctx))

	shift, _ := eng.Snapshot()
	assert.True(t, shift.Open())
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), *shift.StartedAt)

	// Opening twice is a user error.
	err := eng.StartShift(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrShiftAlreadyOpen)
	msg, ok := common.IsUserError(err)
	assert.True(t, ok)
	assert.Equal(t, "the shift is already open", msg)
}

func TestStartShiftDiscardsLeftovers(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)

	// A prior run left an unclosed shift behind.
	startedAt := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	leftover := testutil.OpenShift(startedAt,
		[]model.Trip{model.NewTrip(startedAt, "uber", model.PaymentCash, 12000)},
		[]model.Expense{model.NewExpense(startedAt, model.ExpenseFuel, 4000)})
	leftover.Started = false
	require.NoError(t, db.Storage.SaveShift(ctx, leftover))

	eng := New(db.Storage, nil, nil)
	require.NoError(t, eng.Load(ctx))

	require.NoError(t, eng.StartShift(ctx))

	shift, _ := eng.Snapshot()
	assert.Empty(t, shift.Trips)
	assert.Empty(t, shift.Expenses)
	assert.True(t, shift.Open())
}

func TestAddTripValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		wantErr  error
		name     string
		platform string
		method   model.PaymentMethod
		gross    float64
		open     bool
	}{
		{name: "shift not open", open: false, platform: "uber", method: model.PaymentCash, gross: 10000, wantErr: common.ErrShiftNotOpen},
		{name: "zero amount", open: true, platform: "uber", method: model.PaymentCash, gross: 0, wantErr: common.ErrInvalidAmount},
		{name: "negative amount", open: true, platform: "uber", method: model.PaymentCash, gross: -500, wantErr: common.ErrInvalidAmount},
		{name: "missing platform", open: true, platform: "  ", method: model.PaymentCash, gross: 10000, wantErr: common.ErrMissingPlatform},
		{name: "missing method", open: true, platform: "uber", method: "", gross: 10000, wantErr: common.ErrMissingPayment},
		{name: "unknown method", open: true, platform: "uber", method: "cheque", gross: 10000, wantErr: common.ErrInvalidPayment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := newTestEngine(t, nil, nil)
			if tt.open {
				require.NoError(t, eng.StartShift(ctx))
			}

			_, err := eng.AddTrip(ctx, tt.platform, tt.method, tt.gross)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			_, ok := common.IsUserError(err)
			assert.True(t, ok)

			shift, _ := eng.Snapshot()
			assert.Empty(t, shift.Trips)
		})
	}
}

func TestAddTripPersists(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	eng := New(db.Storage, nil, nil)
	require.NoError(t, eng.Load(ctx))

	require.NoError(t, eng.StartShift(ctx))
	trip, err := eng.AddTrip(ctx, "uber", model.PaymentCash, 15000)
	require.NoError(t, err)
	assert.InDelta(t, 15000, trip.NetAmount, 0.001)
	assert.Zero(t, trip.TollAmount)

	// A fresh engine over the same database sees the trip.
	reloaded := New(db.Storage, nil, nil)
	require.NoError(t, reloaded.Load(ctx))
	shift, _ := reloaded.Snapshot()
	require.Len(t, shift.Trips, 1)
	assert.Equal(t, trip.ID, shift.Trips[0].ID)
}

func TestAddTripSameMillisecondGetsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, nil, nil)
	require.NoError(t, eng.StartShift(ctx))

	// the frozen clock makes every add land on the same millisecond
	first, err := eng.AddTrip(ctx, "uber", model.PaymentCash, 15000)
	require.NoError(t, err)
	second, err := eng.AddTrip(ctx, "uber", model.PaymentCash, 12000)
	require.NoError(t, err)
	third, err := eng.AddTrip(ctx, "didi", model.PaymentCard, 20000)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, second.ID, third.ID)

	shift, _ := eng.Snapshot()
	require.Len(t, shift.Trips, 3)
}

func TestAddExpenseSameMillisecondGetsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, nil, nil)
	require.NoError(t, eng.StartShift(ctx))

	first, err := eng.AddExpense(ctx, model.ExpenseFuel, 5000)
	require.NoError(t, err)
	second, err := eng.AddExpense(ctx, model.ExpenseFood, 8000)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	shift, _ := eng.Snapshot()
	require.Len(t, shift.Expenses, 2)
}

func TestDeleteTrip(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, nil, nil)
	require.NoError(t, eng.StartShift(ctx))

	times := []time.Time{
		time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
	}
	i := 0
	eng.now = func() time.Time { t := times[i]; i++; return t }

	first, err := eng.AddTrip(ctx, "uber", model.PaymentCash, 10000)
	require.NoError(t, err)
	_, err = eng.AddTrip(ctx, "didi", model.PaymentCard, 20000)
	require.NoError(t, err)

	require.NoError(t, eng.DeleteTrip(ctx, first.ID))
	shift, _ := eng.Snapshot()
	require.Len(t, shift.Trips, 1)
	assert.Equal(t, "didi", shift.Trips[0].PlatformID)

	// Deleting an absent id is a no-op.
	require.NoError(t, eng.DeleteTrip(ctx, 424242))
	shift, _ = eng.Snapshot()
	assert.Len(t, shift.Trips, 1)
}

func TestAddExpenseValidation(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, nil, nil)

	_, err := eng.AddExpense(ctx, model.ExpenseFuel, 5000)
	assert.ErrorIs(t, err, common.ErrShiftNotOpen)

	require.NoError(t, eng.StartShift(ctx))

	_, err = eng.AddExpense(ctx, "cine", 5000)
	assert.ErrorIs(t, err, common.ErrInvalidCategory)

	_, err = eng.AddExpense(ctx, model.ExpenseFuel, 0)
	assert.ErrorIs(t, err, common.ErrInvalidAmount)

	expense, err := eng.AddExpense(ctx, model.ExpenseFuel, 5000)
	require.NoError(t, err)
	assert.Equal(t, model.ExpenseFuel, expense.Category)
}

func TestRequestCloseWithoutTrips(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, nil, nil)

	_, err := eng.RequestClose(ctx)
	assert.ErrorIs(t, err, common.ErrShiftNotOpen)

	require.NoError(t, eng.StartShift(ctx))
	_, err = eng.RequestClose(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNoTrips)

	// The failed close left the shift untouched.
	shift, _ := eng.Snapshot()
	assert.True(t, shift.Open())
}

func TestTwoPhaseClose(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	eng := New(db.Storage, nil, nil)
	require.NoError(t, eng.Load(ctx))

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	eng.now = func() time.Time { return start }
	require.NoError(t, eng.StartShift(ctx))

	_, err := eng.AddTrip(ctx, "uber", model.PaymentCash, 15000)
	require.NoError(t, err)

	eng.now = func() time.Time { return start.Add(8 * time.Hour) }
	entry, err := eng.RequestClose(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, entry.DurationHours, 0.001)

	// The summary is archived immediately but the shift stays open until
	// the close is confirmed.
	history, err := db.Storage.GetHistory(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	shift, _ := eng.Snapshot()
	assert.True(t, shift.Open())
	assert.Len(t, shift.Trips, 1)

	require.NoError(t, eng.ConfirmClose(ctx))
	shift, _ = eng.Snapshot()
	assert.False(t, shift.Open())
	assert.Empty(t, shift.Trips)
}

func TestRemoteMirroring(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{}
	eng := newTestEngine(t, remote, signedIn{})

	require.NoError(t, eng.StartShift(ctx))
	_, err := eng.AddTrip(ctx, "uber", model.PaymentCash, 15000)
	require.NoError(t, err)

	// StartShift and AddTrip both mirror the shift.
	assert.Len(t, remote.savedShifts, 2)

	_, err = eng.RequestClose(ctx)
	require.NoError(t, err)
	assert.Len(t, remote.appended, 1)
	assert.Equal(t, 1, remote.clearedShifts)
}

func TestRemoteFailureIsDropped(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{failSave: true}
	eng := newTestEngine(t, remote, signedIn{})

	// The remote write fails, the local one succeeds, the caller never
	// sees an error.
	require.NoError(t, eng.StartShift(ctx))
	_, err := eng.AddTrip(ctx, "uber", model.PaymentCash, 15000)
	require.NoError(t, err)

	shift, _ := eng.Snapshot()
	assert.Len(t, shift.Trips, 1)
}

func TestApplyRemoteShift(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	eng := New(db.Storage, nil, nil)
	require.NoError(t, eng.Load(ctx))

	require.NoError(t, eng.StartShift(ctx))
	_, err := eng.AddTrip(ctx, "uber", model.PaymentCash, 15000)
	require.NoError(t, err)

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	remoteShift := testutil.OpenShift(now, []model.Trip{
		model.NewTrip(now, "uber", model.PaymentCash, 15000),
		model.NewTrip(now.Add(time.Minute), "didi", model.PaymentCard, 20000),
	}, nil)

	eng.ApplyRemoteShift(ctx, remoteShift)

	shift, _ := eng.Snapshot()
	assert.Len(t, shift.Trips, 2)

	// The applied copy is durable.
	stored, err := db.Storage.LoadShift(ctx)
	require.NoError(t, err)
	assert.Len(t, stored.Trips, 2)
}

func TestApplyRemoteShiftSameCountsIsIgnored(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, nil, nil)

	require.NoError(t, eng.StartShift(ctx))
	_, err := eng.AddTrip(ctx, "uber", model.PaymentCash, 15000)
	require.NoError(t, err)

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	remoteShift := testutil.OpenShift(now, []model.Trip{
		model.NewTrip(now, "didi", model.PaymentCard, 99999),
	}, nil)

	eng.ApplyRemoteShift(ctx, remoteShift)

	// Equal counts mean no divergence; the local trip survives.
	shift, _ := eng.Snapshot()
	require.Len(t, shift.Trips, 1)
	assert.Equal(t, "uber", shift.Trips[0].PlatformID)
}
