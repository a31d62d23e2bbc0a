package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/ougirez/rtrw/internal/pkg/constants"
	"github.com/ougirez/rtrw/internal/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configFile string

func Execute() error {
	root := newRootCmd()

	err := root.Execute()
	if err != nil {
		logger.Errorf(context.Background(), "%v", err)
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rtrw",
		Short:         "RT/RW record keeping service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			return logger.Init(viper.GetString(constants.ViperLogModeKey), viper.GetString(constants.ViperLogLevelKey))
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (yaml)")

	root.AddCommand(serveCmd(), migrateCmd(), reportCmd(), importCmd(), userCmd())
	return root
}

func initConfig() error {
	constants.SetDefaults(viper.GetViper())

	viper.SetEnvPrefix(constants.ViperEnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if configFile == "" {
		return nil
	}
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", configFile, err)
	}
	return nil
}
