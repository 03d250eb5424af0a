package reconcile

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rutaapp/rutaapp/internal/model"
)

func TestShiftReportGoalNotMet(t *testing.T) {
	now := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	settings := model.DefaultSettings()

	shift := openShift(
		[]model.Trip{
			model.NewTrip(now, "uber", model.PaymentCash, 15000),
			model.NewTrip(now.Add(time.Minute), "didi", model.PaymentCard, 20000),
		},
		[]model.Expense{
			model.NewExpense(now, model.ExpenseFuel, 5000),
		},
	)

	report := ShiftReport(shift, &settings, now)

	assert.True(t, strings.HasPrefix(report, "🚖 RESUMEN DE JORNADA - 02/03/2026"))
	assert.Contains(t, report, "📊 CARRERAS: 2")
	assert.Contains(t, report, "💵 EFECTIVO NETO: $ 10.000")
	assert.Contains(t, report, "• UBER: $ 15.000")
	assert.Contains(t, report, "💳 DIGITAL: $ 20.000")
	assert.Contains(t, report, "• Tarjeta: $ 20.000")
	assert.Contains(t, report, "💰 GANANCIA: $ 30.000")
	assert.Contains(t, report, "🎯 META: $ 270.000")
	assert.Contains(t, report, "⚠️ FALTÓ: $ 240.000")
	assert.Contains(t, report, "#RutaApp #Trabajo")
	assert.NotContains(t, report, "META CUMPLIDA")
}

func TestShiftReportGoalMet(t *testing.T) {
	now := time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC)
	settings := model.DefaultSettings()

	shift := openShift(
		[]model.Trip{
			model.NewTrip(now, "uber", model.PaymentCash, 300000),
		},
		nil,
	)

	report := ShiftReport(shift, &settings, now)

	assert.Contains(t, report, "💰 META CUMPLIDA: $ 270.000 ✅")
	assert.Contains(t, report, "⭐ EXCEDENTE: $ 30.000")
	assert.Contains(t, report, "🎯 GANANCIA TOTAL: $ 300.000")
	assert.NotContains(t, report, "FALTÓ")
	assert.NotContains(t, report, "DIGITAL")
}
