package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Uber", want: "uber"},
		{name: "trims and collapses spaces", in: "  In   Driver Pro ", want: "in_driver_pro"},
		{name: "already slug", in: "coop", want: "coop"},
		{name: "tabs count as whitespace", in: "mi\tcoop", want: "mi_coop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlatformID(tt.in))
		})
	}
}

func TestDefaultPlatformsReturnsCopies(t *testing.T) {
	first := DefaultPlatforms()
	first[0].Color = "#FFFFFF"

	second := DefaultPlatforms()
	assert.Equal(t, "#000000", second[0].Color)
}

func TestPaymentMethod(t *testing.T) {
	for _, m := range PaymentMethods() {
		assert.True(t, m.Valid(), string(m))
	}
	assert.False(t, PaymentMethod("cheque").Valid())
	assert.False(t, PaymentMethod("").Valid())

	assert.True(t, PaymentCash.IsCash())
	assert.False(t, PaymentCard.IsCash())
	assert.False(t, PaymentVoucher.IsCash())
	assert.False(t, PaymentTransfer.IsCash())
}

func TestExpenseCategory(t *testing.T) {
	for _, c := range ExpenseCategories() {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, ExpenseCategory("cine").Valid())
}

func TestNewTrip(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)
	trip := NewTrip(now, "uber", PaymentCash, 15000)

	assert.Equal(t, now.UnixMilli(), trip.ID)
	assert.Equal(t, now, trip.Timestamp)
	assert.InDelta(t, 15000, trip.GrossAmount, 0.001)
	assert.Zero(t, trip.TollAmount)
	assert.InDelta(t, 15000, trip.NetAmount, 0.001)
}

func TestNewExpense(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)
	expense := NewExpense(now, ExpenseFuel, 5000)

	assert.Equal(t, "1772447400000", expense.ID)
	assert.Equal(t, ExpenseFuel, expense.Category)
}

func TestShiftLookups(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	shift := &Shift{
		Trips: []Trip{
			NewTrip(now, "uber", PaymentCash, 10000),
		},
		Expenses: []Expense{
			NewExpense(now, ExpenseFuel, 5000),
		},
	}

	trip := shift.TripByID(now.UnixMilli())
	require.NotNil(t, trip)
	assert.Equal(t, "uber", trip.PlatformID)
	assert.Nil(t, shift.TripByID(1))

	expense := shift.ExpenseByID("1772445600000")
	require.NotNil(t, expense)
	assert.Equal(t, ExpenseFuel, expense.Category)
	assert.Nil(t, shift.ExpenseByID("missing"))
}

func TestSettingsResolveColor(t *testing.T) {
	settings := DefaultSettings()

	assert.Equal(t, "#FF6B35", settings.ResolveColor("didi"))
	assert.Equal(t, FallbackPlatformColor, settings.ResolveColor("ghost"))
}

func TestNewestFirst(t *testing.T) {
	trips := []Trip{
		{ID: 1, PlatformID: "uber"},
		{ID: 2, PlatformID: "didi"},
		{ID: 3, PlatformID: "mano"},
	}

	reversed := NewestFirst(trips)

	require.Len(t, reversed, 3)
	assert.Equal(t, int64(3), reversed[0].ID)
	assert.Equal(t, int64(2), reversed[1].ID)
	assert.Equal(t, int64(1), reversed[2].ID)

	// stored order is untouched
	assert.Equal(t, int64(1), trips[0].ID)
	assert.Equal(t, int64(3), trips[2].ID)

	assert.Empty(t, NewestFirst([]Expense{}))
}
