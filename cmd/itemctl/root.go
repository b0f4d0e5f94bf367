package main

import (
	"github.com/spf13/cobra"

	"github.com/enderryno/nuclearcraft-items/internal/bootstrap"
	"github.com/enderryno/nuclearcraft-items/internal/config"
	"github.com/enderryno/nuclearcraft-items/internal/logger"
)

// rootOptions holds flags shared by every subcommand
type rootOptions struct {
	itemsPath string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "itemctl",
		Short: "Inspect and manage the nuclearcraft item catalog",
		Long: `itemctl loads the item catalog the same way the service does and
lets you inspect it, validate catalog files and mirror it into PostgreSQL.

Database settings come from the same environment variables as the service
(DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME), optionally from .env.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitLoggerWithWriter(logger.CLIConfig(opts.logLevel), cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.itemsPath, "items", "i", "",
		"Items catalog file (JSON or YAML); defaults to ITEMS_CONFIG_PATH, then the embedded catalog")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", logger.LogLevelWarn,
		"Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newListCmd(opts),
		newGetCmd(opts),
		newValidateCmd(),
		newMigrateCmd(),
		newSyncCmd(opts),
	)

	return cmd
}

// loadConfig reads the environment and applies flag overrides
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if o.itemsPath != "" {
		cfg.ItemsConfigPath = o.itemsPath
	}
	return cfg, nil
}

// loadCatalog builds the sealed registry the service would serve
func (o *rootOptions) loadCatalog() (*bootstrap.Catalog, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	return bootstrap.LoadCatalog(cfg, nil)
}
