package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rutaapp/rutaapp/internal/cli"
	"github.com/rutaapp/rutaapp/internal/reconcile"
)

func goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage the daily earnings goal",
	}

	cmd.AddCommand(showGoalCmd())
	cmd.AddCommand(setGoalCmd())

	return cmd
}

func showGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the daily goal and current progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			eng, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			shift, settings := eng.Snapshot()
			fmt.Printf("Meta diaria: %s\n", reconcile.FormatCurrency(settings.DailyGoal))

			if shift.Open() {
				totals := reconcile.ShiftTotals(shift)
				progress := reconcile.ProgressTowardGoal(totals.NetTotal, settings.DailyGoal)
				cli.RenderGoalBar(cmd.OutOrStdout(), progress)
			}

			return nil
		},
	}
}

func setGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the daily goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			eng, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := eng.SetDailyGoal(ctx, amount); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Meta diaria: %s", reconcile.FormatCurrency(amount))))
			return nil
		},
	}
}

func baseCashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base-cash",
		Short: "Manage the starting cash float",
		Long:  `The cash float is the money the driver carries at shift start. It is bookkeeping only and does not affect goal progress.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the stored cash float",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			eng, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			amount, err := eng.BaseCash(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("Base de efectivo: %s\n", reconcile.FormatCurrency(amount))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <amount>",
		Short: "Set the cash float",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			eng, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := eng.SetBaseCash(ctx, amount); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Base de efectivo: %s", reconcile.FormatCurrency(amount))))
			return nil
		},
	})

	return cmd
}
