package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	var (
		username string
		out      string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the UMKM statistics report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			identity, err := app.identityOf(ctx, username)
			if err != nil {
				return err
			}

			doc, err := app.services.Reports.Export(ctx, identity)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), doc.Content)
				return err
			}
			if out == "." {
				out = doc.Filename
			}
			if err = os.WriteFile(out, []byte(doc.Content), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Laporan disimpan ke %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "user", "u", "", "account whose view is reported")
	cmd.Flags().StringVarP(&out, "out", "o", "", `output file ("." for the default file name)`)
	return cmd
}
