package commands

import (
	"fmt"

	"github.com/ougirez/rtrw/internal/domain/dto"
	"github.com/spf13/cobra"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}
	cmd.AddCommand(createAdminCmd())
	return cmd
}

func createAdminCmd() *cobra.Command {
	request := &dto.CreateAdminRequest{}

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create the administrator account of an RW",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			user, err := app.services.Auth.CreateAdmin(ctx, request)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Admin %s untuk RW %s dibuat (id %s)\n", user.Username, user.Region, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&request.Username, "username", "", "login name")
	cmd.Flags().StringVar(&request.Password, "password", "", "password, at least 6 characters")
	cmd.Flags().StringVar(&request.Name, "name", "", "display name")
	cmd.Flags().StringVar(&request.Region, "rw", "", "RW number, e.g. 01")
	cmd.Flags().StringVar(&request.SubRegion, "rt", "", "RT number")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("rw")
	return cmd
}
