package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rutaapp/rutaapp/internal/cli"
	"github.com/rutaapp/rutaapp/internal/model"
	"github.com/rutaapp/rutaapp/internal/reconcile"
	"github.com/rutaapp/rutaapp/internal/service"
)

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expenses",
		Aliases: []string{"gastos"},
		Short:   "Manage expenses in the active shift",
	}

	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(deleteExpenseCmd())

	return cmd
}

func addExpenseCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record an expense",
		Long: `Record an expense against the active shift. Valid categories:
combustible, peaje, comida, mantenimiento, ajuste, otro.`,
		Args: cobra.ExactArgs(1),
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

			expense, err := eng.AddExpense(ctx, model.ExpenseCategory(category), amount)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Gasto registrado: %s · %s",
				expense.Category, reconcile.FormatCurrency(expense.Amount))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "expense category (required)")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func listExpensesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List expenses in the active shift",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			eng, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			shift, _ := eng.Snapshot()
			if len(shift.Expenses) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No hay gastos registrados."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Categoría"),
				cli.BoldStyle.Render("Monto"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				strings.Repeat("-", 13), strings.Repeat("-", 13), strings.Repeat("-", 12))

			for _, expense := range model.NewestFirst(shift.Expenses) {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					expense.ID, cli.CategoryLabel(expense.Category),
					reconcile.FormatCurrency(expense.Amount))
			}

			total := reconcile.ShiftTotals(shift).ExpenseTotal
			fmt.Fprintf(w, "\t%s\t%s\n",
				cli.BoldStyle.Render("Total"),
				cli.BoldStyle.Render(reconcile.FormatCurrency(total)))

			return nil
		},
	}
}

func deleteExpenseCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			if !confirmer.Confirm("¿Eliminar el gasto?") {
				fmt.Println(cli.FormatWarning("Operación cancelada."))
				return nil
			}

			if err := eng.DeleteExpense(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Gasto eliminado."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "delete without confirmation")
	return cmd
}
