// Package cli provides styled terminal output and interactive prompts.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rutaapp/rutaapp/internal/model"
	"github.com/rutaapp/rutaapp/internal/reconcile"
)

var (
	// PrimaryColor is the main theme color (road teal).
	PrimaryColor = lipgloss.Color("#134E5E")
	// SuccessColor indicates successful operations and met goals.
	SuccessColor = lipgloss.Color("#2E7D32")
	// WarningColor indicates caution messages and goal shortfalls.
	WarningColor = lipgloss.Color("#F39C12")
	// ErrorColor indicates errors and negative balances.
	ErrorColor = lipgloss.Color("#E74C3C")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	TaxiIcon    = "🚖"
	CashIcon    = "💵"
	CardIcon    = "💳"
	ChartIcon   = "📊"
	GoalIcon    = "🎯"
)

// CategoryLabel renders an expense category with its icon.
func CategoryLabel(category model.ExpenseCategory) string {
	icons := map[model.ExpenseCategory]string{
		model.ExpenseFuel:        "⛽",
		model.ExpenseToll:        "🚧",
		model.ExpenseFood:        "🍔",
		model.ExpenseMaintenance: "🔧",
		model.ExpenseAdjustment:  "📝",
		model.ExpenseOther:       "📦",
	}
	icon, ok := icons[category]
	if !ok {
		icon = "📦"
	}
	return icon + " " + string(category)
}

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatTitle formats a title with the taxi icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(TaxiIcon + " " + title)
}

// FormatAmount renders a currency amount, red when negative.
func FormatAmount(amount float64) string {
	text := reconcile.FormatCurrency(amount)
	if amount < 0 {
		return ErrorStyle.Render(text)
	}
	return text
}

// PlatformChip renders a platform label in its registered color.
func PlatformChip(label, hexColor string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(hexColor)).
		Render(label)
}

// RenderBox renders content in a styled box with a title.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	return BoxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		boxTitle,
		content,
	))
}
