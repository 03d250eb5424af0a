package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rutaapp/rutaapp/internal/cli"
	"github.com/rutaapp/rutaapp/internal/config"
	"github.com/rutaapp/rutaapp/internal/history"
	"github.com/rutaapp/rutaapp/internal/model"
	"github.com/rutaapp/rutaapp/internal/reconcile"
	"github.com/rutaapp/rutaapp/internal/sheets"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect archived shifts",
		Long:  `List, summarize, and export the archive of closed shifts.`,
	}

	cmd.AddCommand(listHistoryCmd())
	cmd.AddCommand(statsHistoryCmd())
	cmd.AddCommand(exportHistoryCmd())

	return cmd
}

// periodFlags holds the shared window-selection flags.
type periodFlags struct {
	period string
	from   string
	to     string
}

func (f *periodFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.period, "period", "month", "window: day, week, month, year, range")
	cmd.Flags().StringVar(&f.from, "from", "", "range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "range end (YYYY-MM-DD)")
}

// window filters the archive down to the selected period.
func (f *periodFlags) window(entries []model.HistoryEntry, now time.Time) ([]model.HistoryEntry, string, error) {
	period := history.Period(f.period)
	if !period.Valid() {
		return nil, "", fmt.Errorf("invalid period %q", f.period)
	}

	from, err := parseDate(f.from)
	if err != nil {
		return nil, "", err
	}
	to, err := parseDate(f.to)
	if err != nil {
		return nil, "", err
	}

	filtered, err := history.Filter(entries, period, now, from, to)
	if err != nil {
		return nil, "", err
	}

	return filtered, history.PeriodLabel(period, now, from, to), nil
}

func listHistoryCmd() *cobra.Command {
	var flags periodFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived shifts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.GetHistory(ctx)
			if err != nil {
				return err
			}

			settings, err := store.LoadSettings(ctx)
			if err != nil {
				return err
			}

			filtered, label, err := flags.window(entries, time.Now())
			if err != nil {
				return err
			}

			fmt.Println(label)
			if len(filtered) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No hay jornadas en este período."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Fecha"),
				cli.BoldStyle.Render("Carreras"),
				cli.BoldStyle.Render("Bruto"),
				cli.BoldStyle.Render("Ganancia"),
				cli.BoldStyle.Render("Horas"),
				cli.BoldStyle.Render("Plataformas"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 16), strings.Repeat("-", 8),
				strings.Repeat("-", 12), strings.Repeat("-", 12),
				strings.Repeat("-", 6), strings.Repeat("-", 16))

			for _, entry := range model.NewestFirst(filtered) {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%.2f\t%s\n",
					entry.ClosedAt.Format("02/01/2006 15:04"),
					entry.TripCount,
					reconcile.FormatCurrency(entry.GrossTotal),
					reconcile.FormatCurrency(entry.Earnings),
					entry.DurationHours,
					platformChips(settings, entry))
			}

			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// platformChips renders "NAME count" chips in registry colors, the
// fallback gray for platforms deleted since the shift closed.
func platformChips(settings *model.Settings, entry model.HistoryEntry) string {
	ids := reconcile.SortedPlatformIDs(entry.Trips, entry.PerPlatform)
	chips := make([]string, 0, len(ids))
	for _, id := range ids {
		chips = append(chips, fmt.Sprintf("%s %d",
			cli.PlatformChip(platformLabel(settings, id), settings.ResolveColor(id)),
			entry.PerPlatform[id].Count))
	}
	return strings.Join(chips, " · ")
}

func statsHistoryCmd() *cobra.Command {
	var flags periodFlags

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize archived shifts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.GetHistory(ctx)
			if err != nil {
				return err
			}

			filtered, label, err := flags.window(entries, time.Now())
			if err != nil {
				return err
			}

			summary := history.Summarize(filtered)

			var b strings.Builder
			b.WriteString(label)
			b.WriteString("\n\n")
			fmt.Fprintf(&b, "Jornadas       %d\n", summary.Count)
			fmt.Fprintf(&b, "Carreras       %d\n", summary.TotalTrips)
			fmt.Fprintf(&b, "Total Bruto    %s\n", reconcile.FormatCurrency(summary.TotalGross))
			fmt.Fprintf(&b, "Total Ganancia %s\n", reconcile.FormatCurrency(summary.TotalEarnings))
			fmt.Fprintf(&b, "Promedio/Día   %s", reconcile.FormatCurrency(summary.AverageEarnings))
			fmt.Println(cli.RenderBox("Histórico", b.String()))

			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func exportHistoryCmd() *cobra.Command {
	var flags periodFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export archived shifts to Google Sheets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sheetsConfig, err := config.LoadSheetsConfig()
			if err != nil {
				return fmt.Errorf("sheets configuration: %w", err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.GetHistory(ctx)
			if err != nil {
				return err
			}

			filtered, label, err := flags.window(entries, time.Now())
			if err != nil {
				return err
			}

			if len(filtered) == 0 {
				fmt.Println(cli.FormatWarning("No hay jornadas que exportar en este período."))
				return nil
			}

			writer, err := sheets.NewWriter(ctx, *sheetsConfig, slog.Default())
			if err != nil {
				return err
			}

			summary := history.Summarize(filtered)
			if err := writer.Write(ctx, filtered, summary, label); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exportadas %d jornadas.", len(filtered))))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
