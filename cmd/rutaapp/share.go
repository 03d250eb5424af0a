package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rutaapp/rutaapp/internal/cli"
	"github.com/rutaapp/rutaapp/internal/history"
	"github.com/rutaapp/rutaapp/internal/reconcile"
	"github.com/rutaapp/rutaapp/internal/service"
)

func shareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Build shareable plain-text reports",
	}

	cmd.AddCommand(shareShiftCmd())
	cmd.AddCommand(shareHistoryCmd())

	return cmd
}

func shareShiftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shift",
		Short: "Print the live shift report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			eng, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			shift, settings := eng.Snapshot()
			if !shift.Open() {
				fmt.Println(cli.FormatWarning("No hay jornada abierta."))
				return nil
			}

			var sharer service.Sharer = cli.NewStdoutSharer(cmd.OutOrStdout())
			return sharer.Share(ctx, "Resumen de jornada", reconcile.ShiftReport(shift, settings, time.Now()))
		},
	}
}

func shareHistoryCmd() *cobra.Command {
	var flags periodFlags

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the archive summary report",
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

			var sharer service.Sharer = cli.NewStdoutSharer(cmd.OutOrStdout())
			return sharer.Share(ctx, "Resumen histórico", history.Report(history.Summarize(filtered), label))
		},
	}

	flags.register(cmd)
	return cmd
}
