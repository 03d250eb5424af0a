package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodLabel(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	from := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		period   Period
		from     *time.Time
		to       *time.Time
		expected string
	}{
		{
			name:     "day label includes date",
			period:   PeriodDay,
			expected: "📅 Período: Hoy (02/03/2026)",
		},
		{
			name:     "week label is fixed",
			period:   PeriodWeek,
			expected: "📅 Período: Última Semana",
		},
		{
			name:     "month label uses spanish month name",
			period:   PeriodMonth,
			expected: "📅 Período: marzo 2026",
		},
		{
			name:     "year label",
			period:   PeriodYear,
			expected: "📅 Período: Año 2026",
		},
		{
			name:     "range label shows both bounds",
			period:   PeriodRange,
			from:     &from,
			to:       &to,
			expected: "📅 Período: 15/01/2026 - 20/02/2026",
		},
		{
			name:     "range without bounds is empty",
			period:   PeriodRange,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PeriodLabel(tt.period, now, tt.from, tt.to))
		})
	}
}

func TestReport(t *testing.T) {
	summary := Summary{
		Count:           4,
		TotalTrips:      38,
		TotalGross:      1200000,
		TotalEarnings:   1080000,
		AverageEarnings: 270000,
	}

	report := Report(summary, "📅 Período: marzo 2026")

	assert.Contains(t, report, "📊 RESUMEN HISTÓRICO - RutaApp")
	assert.Contains(t, report, "📅 Período: marzo 2026")
	assert.Contains(t, report, "Jornadas: 4")
	assert.Contains(t, report, "Carreras: 38")
	assert.Contains(t, report, "Total Bruto: $ 1.200.000")
	assert.Contains(t, report, "Total Ganancia: $ 1.080.000")
	assert.Contains(t, report, "Promedio/Día: $ 270.000")
	assert.Contains(t, report, "#RutaApp #Trabajo")
}

func TestReportEmptyWindow(t *testing.T) {
	report := Report(Summary{}, "📅 Período: Última Semana")

	assert.Contains(t, report, "Jornadas: 0")
	assert.Contains(t, report, "Total Bruto: $ 0")
	assert.Contains(t, report, "Promedio/Día: $ 0")
}
