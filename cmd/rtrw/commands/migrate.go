package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Move UMKM records from the local cache into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			pending, err := app.services.Migration.Pending(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ditemukan %d data UMKM di penyimpanan lokal\n", pending)

			identity, err := app.identityOf(ctx, username)
			if err != nil {
				return err
			}

			result, err := app.services.Migration.Migrate(ctx, identity)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Berhasil memindahkan %d data UMKM ke database\n", result.Transferred)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "user", "u", "", "account the records are attributed to")
	return cmd
}
