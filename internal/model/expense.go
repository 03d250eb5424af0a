package model

import (
	"strconv"
	"time"
)

// ExpenseCategory identifies what an expense was for.
type ExpenseCategory string

const (
	// ExpenseFuel is a fuel purchase.
	ExpenseFuel ExpenseCategory = "combustible"
	// ExpenseToll is a toll payment.
	ExpenseToll ExpenseCategory = "peaje"
	// ExpenseFood is a meal.
	ExpenseFood ExpenseCategory = "comida"
	// ExpenseMaintenance is vehicle maintenance.
	ExpenseMaintenance ExpenseCategory = "mantenimiento"
	// ExpenseAdjustment is a manual correction.
	ExpenseAdjustment ExpenseCategory = "ajuste"
	// ExpenseOther is anything else.
	ExpenseOther ExpenseCategory = "otro"
)

// ExpenseCategories lists every recognized expense category in display order.
func ExpenseCategories() []ExpenseCategory {
	return []ExpenseCategory{
		ExpenseFuel, ExpenseToll, ExpenseFood,
		ExpenseMaintenance, ExpenseAdjustment, ExpenseOther,
	}
}

// Valid reports whether the category is one of the recognized values.
func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseFuel, ExpenseToll, ExpenseFood, ExpenseMaintenance, ExpenseAdjustment, ExpenseOther:
		return true
	}
	return false
}

// Expense ("gasto") is an out-of-pocket cost during the active shift.
type Expense struct {
	ID       string
	Category ExpenseCategory
	Amount   float64
}

// NewExpense builds an expense at the given time. The id is the creation
// time in epoch millis, stringified.
func NewExpense(now time.Time, category ExpenseCategory, amount float64) Expense {
	return Expense{
		ID:       strconv.FormatInt(now.UnixMilli(), 10),
		Category: category,
		Amount:   amount,
	}
}
