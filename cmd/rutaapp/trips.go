package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rutaapp/rutaapp/internal/cli"
	"github.com/rutaapp/rutaapp/internal/model"
	"github.com/rutaapp/rutaapp/internal/reconcile"
	"github.com/rutaapp/rutaapp/internal/service"
)

func tripsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "trips",
		Aliases: []string{"carreras"},
		Short:   "Manage trips in the active shift",
	}

	cmd.AddCommand(addTripCmd())
	cmd.AddCommand(listTripsCmd())
	cmd.AddCommand(deleteTripCmd())

	return cmd
}

func addTripCmd() *cobra.Command {
	var (
		platformID string
		method     string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a trip",
		Long: `Record a trip with its gross fare. The platform must exist in the
registry and the payment method must be one of: efectivo, tarjeta, vale,
transferencia.`,
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

			trip, err := eng.AddTrip(ctx, platformID, model.PaymentMethod(method), amount)
			if err != nil {
				return err
			}

			_, settings := eng.Snapshot()
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Carrera registrada: %s · %s · %s",
				cli.PlatformChip(platformLabel(settings, trip.PlatformID), settings.ResolveColor(trip.PlatformID)),
				trip.PaymentMethod,
				reconcile.FormatCurrency(trip.NetAmount))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&platformID, "platform", "p", "", "platform id (required)")
	cmd.Flags().StringVarP(&method, "method", "m", "", "payment method (required)")
	_ = cmd.MarkFlagRequired("platform")
	_ = cmd.MarkFlagRequired("method")

	return cmd
}

func listTripsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List trips in the active shift",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			eng, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			shift, settings := eng.Snapshot()
			if len(shift.Trips) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No hay carreras registradas."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Hora"),
				cli.BoldStyle.Render("Plataforma"),
				cli.BoldStyle.Render("Pago"),
				cli.BoldStyle.Render("Neto"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 13), strings.Repeat("-", 5),
				strings.Repeat("-", 12), strings.Repeat("-", 13),
				strings.Repeat("-", 12))

			for _, trip := range model.NewestFirst(shift.Trips) {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					trip.ID,
					trip.Timestamp.Format("15:04"),
					platformLabel(settings, trip.PlatformID),
					trip.PaymentMethod,
					reconcile.FormatCurrency(trip.NetAmount))
			}

			return nil
		},
	}
}

func deleteTripCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a trip by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid trip id %q", args[0])
			}

			eng, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			var confirmer service.Confirmer = cli.NewConfirmPrompter(os.Stdin, os.Stdout)
			if skipConfirm {
				confirmer = cli.AutoConfirm{}
			}
			if !confirmer.Confirm("¿Eliminar la carrera?") {
				fmt.Println(cli.FormatWarning("Operación cancelada."))
				return nil
			}

			if err := eng.DeleteTrip(ctx, id); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Carrera eliminada."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "delete without confirmation")
	return cmd
}

func platformLabel(settings *model.Settings, id string) string {
	if p := settings.PlatformByID(id); p != nil {
		return p.Name
	}
	return id
}
