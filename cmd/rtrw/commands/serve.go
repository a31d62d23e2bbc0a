package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ougirez/rtrw/internal/api"
	"github.com/ougirez/rtrw/internal/pkg/constants"
	"github.com/ougirez/rtrw/internal/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			apiService, err := api.NewAPIService(app.services, api.Config{
				AllowOrigins: viper.GetStringSlice(constants.ViperHTTPAllowOriginsKey),
			})
			if err != nil {
				return err
			}

			addr := viper.GetString(constants.ViperHTTPAddrKey)

			eg, egCtx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				logger.Infof(ctx, "listening on %s (remote store: %t)", addr, app.remote != nil)
				return apiService.Serve(addr)
			})
			eg.Go(func() error {
				<-egCtx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return apiService.Shutdown(shutdownCtx)
			})

			return eg.Wait()
		},
	}
}
