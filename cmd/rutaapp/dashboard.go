package main

import (
	"github.com/spf13/cobra"

	"github.com/rutaapp/rutaapp/internal/model"
	"github.com/rutaapp/rutaapp/internal/syncer"
	"github.com/rutaapp/rutaapp/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the live shift dashboard",
		Long:  `Interactive terminal dashboard showing the active shift, goal progress, and per-platform breakdown.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			eng, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			// Hold the remote watch for the lifetime of the dashboard;
			// pushed shifts go through the merge policy.
			watch := syncer.New(initRemote(), initIdentity(), func(shift *model.Shift) {
				eng.ApplyRemoteShift(ctx, shift)
			})
			if err := watch.Start(ctx); err != nil {
				return err
			}
			defer watch.Stop()

			return tui.Run(ctx, eng)
		},
	}
}
