package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rutaapp/rutaapp/internal/cli"
	"github.com/rutaapp/rutaapp/internal/model"
	"github.com/rutaapp/rutaapp/internal/syncer"
)

func syncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Inspect remote sync state",
	}

	cmd.AddCommand(syncStatusCmd())
	return cmd
}

func syncStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether remote sync is available",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			identity := initIdentity()
			userID, ok := identity.CurrentUser()
			if !ok {
				fmt.Println(cli.FormatWarning("Sin sesión: los datos se guardan solo en este equipo."))
				return nil
			}

			watch := syncer.New(initRemote(), identity, func(*model.Shift) {})
			if err := watch.Start(ctx); err != nil {
				return fmt.Errorf("remote watch unavailable: %w", err)
			}
			defer watch.Stop()

			if watch.Active() {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Sesión activa (%s): suscripción remota disponible.", userID)))
			} else {
				fmt.Println(cli.FormatWarning("Sesión configurada pero sin suscripción remota."))
			}
			return nil
		},
	}
}
