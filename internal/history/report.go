package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/rutaapp/rutaapp/internal/reconcile"
)

// PeriodLabel returns the user-facing description of the active window.
func PeriodLabel(period Period, now time.Time, from, to *time.Time) string {
	switch period {
	case PeriodDay:
		return fmt.Sprintf("📅 Período: Hoy (%s)", now.Format("02/01/2006"))
	case PeriodWeek:
		return "📅 Período: Última Semana"
	case PeriodMonth:
		return fmt.Sprintf("📅 Período: %s %d", monthName(now.Month()), now.Year())
	case PeriodYear:
		return fmt.Sprintf("📅 Período: Año %d", now.Year())
	case PeriodRange:
		if from == nil || to == nil {
			return ""
		}
		return fmt.Sprintf("📅 Período: %s - %s", from.Format("02/01/2006"), to.Format("02/01/2006"))
	}
	return ""
}

// Report builds the shareable plain-text summary for a filtered window.
func Report(summary Summary, label string) string {
	var b strings.Builder
	b.WriteString("📊 RESUMEN HISTÓRICO - RutaApp\n")
	b.WriteString(label)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Jornadas: %d\n", summary.Count)
	fmt.Fprintf(&b, "Carreras: %d\n", summary.TotalTrips)
	fmt.Fprintf(&b, "Total Bruto: %s\n", reconcile.FormatCurrency(summary.TotalGross))
	fmt.Fprintf(&b, "Total Ganancia: %s\n", reconcile.FormatCurrency(summary.TotalEarnings))
	fmt.Fprintf(&b, "Promedio/Día: %s", reconcile.FormatCurrency(summary.AverageEarnings))
	b.WriteString("\n\n#RutaApp #Trabajo")
	return b.String()
}

func monthName(m time.Month) string {
	names := [...]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	}
	return names[m-1]
}
