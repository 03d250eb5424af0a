package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rutaapp/rutaapp/internal/cli"
	"github.com/rutaapp/rutaapp/internal/model"
	"github.com/rutaapp/rutaapp/internal/reconcile"
	"github.com/rutaapp/rutaapp/internal/service"
)

func shiftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Manage the working shift",
		Long:  `Start, inspect, close, and reset the active working shift.`,
	}

	cmd.AddCommand(startShiftCmd())
	cmd.AddCommand(statusShiftCmd())
	cmd.AddCommand(closeShiftCmd())
	cmd.AddCommand(clearShiftCmd())

	return cmd
}

func startShiftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a new shift",
		Long:  `Open a fresh shift. Any leftover trips or expenses from an unclosed shift are discarded first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			eng, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := eng.StartShift(ctx); err != nil {
				return err
			}

			shift, _ := eng.Snapshot()
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Jornada iniciada a las %s", shift.StartedAt.Format("15:04"))))
			return nil
		},
	}
}

func statusShiftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current shift status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			eng, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			shift, settings := eng.Snapshot()
			if !shift.Open() {
				fmt.Println(cli.FormatWarning("No hay jornada abierta. Usa 'rutaapp shift start'."))
				return nil
			}

			totals := reconcile.ShiftTotals(shift)
			progress := reconcile.ProgressTowardGoal(totals.NetTotal, settings.DailyGoal)

			var b strings.Builder
			fmt.Fprintf(&b, "Inicio      %s\n", shift.StartedAt.Format("15:04"))
			fmt.Fprintf(&b, "Carreras    %d\n", totals.TripCount)
			fmt.Fprintf(&b, "Bruto       %s\n", reconcile.FormatCurrency(totals.GrossTotal))
			fmt.Fprintf(&b, "Gastos      %s\n", reconcile.FormatCurrency(totals.ExpenseTotal))
			fmt.Fprintf(&b, "Neto        %s\n", cli.FormatAmount(totals.NetTotal))
			fmt.Fprintf(&b, "Efectivo    %s\n", cli.FormatAmount(totals.CashAvailable))
			fmt.Fprintf(&b, "Digital     %s", reconcile.FormatCurrency(totals.DigitalEarnings))
			fmt.Println(cli.RenderBox("Jornada", b.String()))

			if len(shift.Trips) > 0 {
				groups := reconcile.PlatformBreakdown(shift.Trips)
				var p strings.Builder
				for i, id := range reconcile.SortedPlatformIDs(shift.Trips, groups) {
					if i > 0 {
						p.WriteString("\n")
					}
					agg := groups[id]
					fmt.Fprintf(&p, "%s  %d · %s",
						cli.PlatformChip(platformLabel(settings, id), settings.ResolveColor(id)),
						agg.Count, reconcile.FormatCurrency(agg.Total))
				}
				fmt.Println(cli.RenderBox("Plataformas", p.String()))
			}

			if len(shift.Expenses) > 0 {
				byCategory := reconcile.ExpensesByCategory(shift.Expenses)
				var g strings.Builder
				first := true
				for _, category := range model.ExpenseCategories() {
					amount, ok := byCategory[category]
					if !ok {
						continue
					}
					if !first {
						g.WriteString("\n")
					}
					first = false
					fmt.Fprintf(&g, "%-18s %s", cli.CategoryLabel(category), reconcile.FormatCurrency(amount))
				}
				fmt.Println(cli.RenderBox("Gastos", g.String()))
			}

			cli.RenderGoalBar(os.Stdout, progress)
			fmt.Println()

			line := fmt.Sprintf("%d%% de %s", progress.DisplayPercent, reconcile.FormatCurrency(settings.DailyGoal))
			switch {
			case progress.Surplus > 0:
				line += " · excedente " + reconcile.FormatCurrency(progress.Surplus)
			case progress.Shortfall > 0:
				line += " · faltan " + reconcile.FormatCurrency(progress.Shortfall)
			}
			fmt.Println(cli.BandStyle(progress.Band)(line))
			return nil
		},
	}
}

func closeShiftCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "close",
		Short: "Close the shift and archive it",
		Long: `Compute the shift summary, archive it to history, and clear the
working ledger. The ledger is only cleared after the summary is confirmed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			eng, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			entry, err := eng.RequestClose(ctx)
			if err != nil {
				return err
			}

			_, settings := eng.Snapshot()
			fmt.Println(renderCloseSummary(entry, settings))

			var confirmer service.Confirmer = cli.NewConfirmPrompter(os.Stdin, os.Stdout)
			if skipConfirm {
				confirmer = cli.AutoConfirm{}
			}

			if !confirmer.Confirm("¿Cerrar la jornada?") {
				fmt.Println(cli.FormatWarning("Cierre cancelado. La jornada sigue abierta."))
				return nil
			}

			if err := eng.ConfirmClose(ctx); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Jornada cerrada y archivada."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "close without confirmation")
	return cmd
}

func clearShiftCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Discard the shift without archiving",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			eng, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			var confirmer service.Confirmer = cli.NewConfirmPrompter(os.Stdin, os.Stdout)
			if skipConfirm {
				confirmer = cli.AutoConfirm{}
			}

			if !confirmer.Confirm("Se perderán las carreras y gastos registrados. ¿Continuar?") {
				fmt.Println(cli.FormatWarning("Operación cancelada."))
				return nil
			}

			if err := eng.ClearAll(ctx); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Jornada descartada."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "discard without confirmation")
	return cmd
}

// renderCloseSummary formats the archived entry the way the close screen
// shows it: gross figures per platform, then the consolidated totals.
func renderCloseSummary(entry *model.HistoryEntry, settings *model.Settings) string {
	var b strings.Builder

	for _, id := range reconcile.SortedPlatformIDs(entry.Trips, entry.PerPlatform) {
		stats := entry.PerPlatform[id]
		name := id
		if p := settings.PlatformByID(id); p != nil {
			name = p.Name
		}
		fmt.Fprintf(&b, "%s  %d carreras · %s\n",
			cli.PlatformChip(name, settings.ResolveColor(id)),
			stats.Count, reconcile.FormatCurrency(stats.Total))
	}

	if len(entry.PerPlatform) > 0 {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Carreras   %d\n", entry.TripCount)
	fmt.Fprintf(&b, "Bruto      %s\n", reconcile.FormatCurrency(entry.GrossTotal))
	fmt.Fprintf(&b, "Ganancia   %s\n", reconcile.FormatCurrency(entry.Earnings))
	fmt.Fprintf(&b, "Duración   %.2f h", entry.DurationHours)

	return cli.RenderBox("Resumen de Jornada", b.String())
}
