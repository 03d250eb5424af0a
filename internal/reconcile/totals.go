// Package reconcile implements the pure computation layer that turns the
// trips and expenses of a shift into consolidated financial figures. No
// function here mutates the shift or performs I/O; everything derives from
// the state snapshot it is handed, so it can be unit-tested directly.
package reconcile

import "github.com/rutaapp/rutaapp/internal/model"

// Totals holds the consolidated figures for a shift.
type Totals struct {
	TripCount       int
	GrossTotal      float64
	NetFromTrips    float64
	ExpenseTotal    float64
	NetTotal        float64
	CashEarnings    float64
	DigitalEarnings float64
	CashAvailable   float64
}

// ShiftTotals computes the consolidated figures for the given shift.
// Expenses are assumed paid out of cash on hand, so CashAvailable may go
// negative; it is never clamped.
func ShiftTotals(shift *model.Shift) Totals {
	var t Totals
	t.TripCount = len(shift.Trips)

	for _, trip := range shift.Trips {
		t.GrossTotal += trip.GrossAmount
		t.NetFromTrips += trip.NetAmount
		if trip.PaymentMethod.IsCash() {
			t.CashEarnings += trip.NetAmount
		} else {
			t.DigitalEarnings += trip.NetAmount
		}
	}

	for _, expense := range shift.Expenses {
		t.ExpenseTotal += expense.Amount
	}

	t.NetTotal = t.NetFromTrips - t.ExpenseTotal
	t.CashAvailable = t.CashEarnings - t.ExpenseTotal
	return t
}

// ExpensesByCategory sums expense amounts per category.
func ExpensesByCategory(expenses []model.Expense) map[model.ExpenseCategory]float64 {
	out := make(map[model.ExpenseCategory]float64)
	for _, e := range expenses {
		out[e.Category] += e.Amount
	}
	return out
}
