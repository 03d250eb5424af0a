package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rutaapp/rutaapp/internal/cli"
	"github.com/rutaapp/rutaapp/internal/model"
	"github.com/rutaapp/rutaapp/internal/reconcile"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(cli.PrimaryColor).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PrimaryColor)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(cli.PrimaryColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(cli.SubtleColor)
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "cargando jornada...\n"
	}
	if m.lastError != nil {
		return cli.FormatError(m.lastError.Error()) + "\n"
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderGoal())
	b.WriteString("\n")
	b.WriteString(m.renderTotals())
	b.WriteString("\n")
	b.WriteString(m.renderPlatforms())
	b.WriteString("\n")
	b.WriteString(m.renderLedger())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab carreras/gastos · r refrescar · q salir"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderHeader() string {
	status := "SIN JORNADA"
	if m.shift.Open() {
		elapsed := m.now.Sub(*m.shift.StartedAt).Round(time.Second)
		status = fmt.Sprintf("JORNADA ABIERTA · %s · %s", m.shift.StartedAt.Format("15:04"), elapsed)
	}
	return headerStyle.Render("🚖 RutaApp") + "  " + sectionStyle.Render(status)
}

func (m Model) renderGoal() string {
	totals := m.totals()
	prog := reconcile.ProgressTowardGoal(totals.NetTotal, m.settings.DailyGoal)

	line := fmt.Sprintf("Meta %s · %d%%",
		reconcile.FormatCurrency(m.settings.DailyGoal), prog.DisplayPercent)
	bar := m.goalBar.ViewAs(float64(prog.DisplayPercent) / 100)

	var tail string
	switch {
	case prog.Surplus > 0:
		tail = cli.SuccessStyle.Render("ganancia extra " + reconcile.FormatCurrency(prog.Surplus))
	case prog.Shortfall > 0:
		tail = cli.SubtleStyle.Render("faltan " + reconcile.FormatCurrency(prog.Shortfall))
	default:
		tail = cli.SuccessStyle.Render("meta cumplida")
	}

	return sectionStyle.Render(line) + "\n" + bar + "  " + tail + "\n"
}

func (m Model) renderTotals() string {
	totals := m.totals()

	rows := []string{
		fmt.Sprintf("Carreras   %d", totals.TripCount),
		fmt.Sprintf("Bruto      %s", reconcile.FormatCurrency(totals.GrossTotal)),
		fmt.Sprintf("Gastos     %s", reconcile.FormatCurrency(totals.ExpenseTotal)),
		fmt.Sprintf("Neto       %s", cli.FormatAmount(totals.NetTotal)),
		fmt.Sprintf("Efectivo   %s", cli.FormatAmount(totals.CashAvailable+m.baseCash)),
		fmt.Sprintf("Digital    %s", reconcile.FormatCurrency(totals.DigitalEarnings)),
	}

	return cli.RenderBox("Totales", strings.Join(rows, "\n")) + "\n"
}

func (m Model) renderPlatforms() string {
	if m.shift == nil || len(m.shift.Trips) == 0 {
		return ""
	}

	groups := reconcile.PlatformBreakdown(m.shift.Trips)
	var rows []string
	for _, id := range reconcile.SortedPlatformIDs(m.shift.Trips, groups) {
		agg := groups[id]
		name, color := id, m.settings.ResolveColor(id)
		if p := m.settings.PlatformByID(id); p != nil {
			name = p.Name
		}
		rows = append(rows, fmt.Sprintf("%s %d · %s",
			cli.PlatformChip(name, color), agg.Count, reconcile.FormatCurrency(agg.Total)))
	}

	return cli.RenderBox("Plataformas", strings.Join(rows, "\n")) + "\n"
}

func (m Model) renderLedger() string {
	if m.view == ViewTrips {
		return m.renderTrips()
	}
	return m.renderExpenses()
}

func (m Model) renderTrips() string {
	if len(m.shift.Trips) == 0 {
		return cli.RenderBox("Carreras", cli.SubtleStyle.Render("sin carreras")) + "\n"
	}

	var rows []string
	for i, trip := range model.NewestFirst(m.shift.Trips) {
		name := trip.PlatformID
		if p := m.settings.PlatformByID(trip.PlatformID); p != nil {
			name = p.Name
		}
		line := fmt.Sprintf("%s  %-12s %-13s %s",
			trip.Timestamp.Format("15:04"), name, trip.PaymentMethod,
			reconcile.FormatCurrency(trip.NetAmount))
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		rows = append(rows, line)
	}

	return cli.RenderBox("Carreras", strings.Join(rows, "\n")) + "\n"
}

func (m Model) renderExpenses() string {
	if len(m.shift.Expenses) == 0 {
		return cli.RenderBox("Gastos", cli.SubtleStyle.Render("sin gastos")) + "\n"
	}

	var rows []string
	for i, expense := range model.NewestFirst(m.shift.Expenses) {
		line := fmt.Sprintf("%s  %-16s %s",
			expenseClock(expense.ID), cli.CategoryLabel(expense.Category),
			reconcile.FormatCurrency(expense.Amount))
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		rows = append(rows, line)
	}

	return cli.RenderBox("Gastos", strings.Join(rows, "\n")) + "\n"
}

// expenseClock recovers the creation time from an epoch-millis expense id.
func expenseClock(id string) string {
	millis, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return "--:--"
	}
	return time.UnixMilli(millis).Format("15:04")
}
