package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rutaapp/rutaapp/internal/cli"
)

func platformsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "Manage the platform registry",
		Long:  `List, add, and remove the rideshare platforms trips can be booked against.`,
	}

	cmd.AddCommand(listPlatformsCmd())
	cmd.AddCommand(addPlatformCmd())
	cmd.AddCommand(removePlatformCmd())
	cmd.AddCommand(colorPlatformCmd())

	return cmd
}

func listPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered platforms",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			eng, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			_, settings := eng.Snapshot()
			if len(settings.Platforms) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No hay plataformas registradas."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Nombre"),
				cli.BoldStyle.Render("Color"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				strings.Repeat("-", 10), strings.Repeat("-", 14), strings.Repeat("-", 8))

			for _, p := range settings.Platforms {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					p.ID, cli.PlatformChip(p.Name, p.Color), p.Color)
			}

			return nil
		},
	}
}

func addPlatformCmd() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a platform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			eng, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			platform, err := eng.AddPlatform(ctx, args[0], color)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Plataforma registrada: %s (%s)",
				cli.PlatformChip(platform.Name, platform.Color), platform.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&color, "color", "c", "", "hex color for the platform chip")
	return cmd
}

func removePlatformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a platform from the registry",
		Long: `Remove a platform. Trips already recorded against it are kept and
fall back to the neutral gray color.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			eng, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := eng.RemovePlatform(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Plataforma eliminada."))
			return nil
		},
	}
}

func colorPlatformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color <id> <hex>",
		Short: "Change a platform's color",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			eng, store, err := initEngine(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := eng.UpdatePlatformColor(ctx, args[0], args[1]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Color actualizado."))
			return nil
		},
	}
}
