package reconcile

import (
	"fmt"
	"strings"
	"time"

	"github.com/rutaapp/rutaapp/internal/model"
)

// ShiftReport builds the shareable plain-text summary for the current
// shift. The headline figures (cash after expenses, digital total, goal
// comparison) come from ShiftTotals; the per-platform cash subtotals list
// gross amounts per platform, as the driver settles with each platform on
// the fare, not the net.
func ShiftReport(shift *model.Shift, settings *model.Settings, now time.Time) string {
	totals := ShiftTotals(shift)
	goal := settings.DailyGoal

	cashByPlatform := make(map[string]float64)
	digitalByMethod := make(map[model.PaymentMethod]float64)
	for _, trip := range shift.Trips {
		if trip.PaymentMethod.IsCash() {
			cashByPlatform[strings.ToUpper(trip.PlatformID)] += trip.GrossAmount
		} else {
			digitalByMethod[trip.PaymentMethod] += trip.GrossAmount
		}
	}

	earnings := totals.CashAvailable + totals.DigitalEarnings
	surplus := ProgressTowardGoal(earnings, goal).Surplus
	goalMet := earnings >= goal

	var b strings.Builder
	fmt.Fprintf(&b, "🚖 RESUMEN DE JORNADA - %s\n\n", now.Format("02/01/2006"))
	fmt.Fprintf(&b, "📊 CARRERAS: %d", totals.TripCount)

	if totals.CashAvailable != 0 {
		fmt.Fprintf(&b, "\n💵 EFECTIVO NETO: %s", FormatCurrency(totals.CashAvailable))
		for _, id := range cashPlatformOrder(shift.Trips) {
			fmt.Fprintf(&b, "\n   • %s: %s", id, FormatCurrency(cashByPlatform[id]))
		}
	}
	if totals.DigitalEarnings > 0 {
		fmt.Fprintf(&b, "\n💳 DIGITAL: %s", FormatCurrency(totals.DigitalEarnings))
		if v := digitalByMethod[model.PaymentCard]; v > 0 {
			fmt.Fprintf(&b, "\n   • Tarjeta: %s", FormatCurrency(v))
		}
		if v := digitalByMethod[model.PaymentVoucher]; v > 0 {
			fmt.Fprintf(&b, "\n   • Vale: %s", FormatCurrency(v))
		}
		if v := digitalByMethod[model.PaymentTransfer]; v > 0 {
			fmt.Fprintf(&b, "\n   • Transferencia: %s", FormatCurrency(v))
		}
	}

	b.WriteString("\n\n📈 RESUMEN FINANCIERO")
	if goalMet {
		fmt.Fprintf(&b, "\n💰 META CUMPLIDA: %s ✅", FormatCurrency(goal))
		if surplus > 0 {
			fmt.Fprintf(&b, "\n⭐ EXCEDENTE: %s", FormatCurrency(surplus))
		}
		fmt.Fprintf(&b, "\n🎯 GANANCIA TOTAL: %s", FormatCurrency(earnings))
	} else {
		fmt.Fprintf(&b, "\n💰 GANANCIA: %s", FormatCurrency(earnings))
		fmt.Fprintf(&b, "\n🎯 META: %s", FormatCurrency(goal))
		fmt.Fprintf(&b, "\n⚠️ FALTÓ: %s", FormatCurrency(goal-earnings))
	}

	b.WriteString("\n\n#RutaApp #Trabajo")
	return b.String()
}

// cashPlatformOrder returns uppercased platform ids of cash trips in
// first-seen order.
func cashPlatformOrder(trips []model.Trip) []string {
	var order []string
	seen := make(map[string]bool)
	for _, trip := range trips {
		if !trip.PaymentMethod.IsCash() {
			continue
		}
		id := strings.ToUpper(trip.PlatformID)
		if !seen[id] {
			seen[id] = true
			order = append(order, id)
		}
	}
	return order
}
