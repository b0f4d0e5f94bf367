package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/enderryno/nuclearcraft-items/internal/bootstrap"
	"github.com/enderryno/nuclearcraft-items/internal/config"
	"github.com/enderryno/nuclearcraft-items/internal/database"
)

func newMigrateCmd() *cobra.Command {
	var statusOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply embedded database migrations",
		Long: `Apply every pending embedded migration to the configured database.

Examples:
  itemctl migrate
  itemctl migrate --status`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			pool, err := database.NewPool(cmd.Context(), bootstrap.PoolConfig(cfg))
			if err != nil {
				return err
			}
			defer pool.Close()

			if !statusOnly {
				if err := database.Migrate(cmd.Context(), pool); err != nil {
					return err
				}
			}

			statuses, err := database.Status(cmd.Context(), pool)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tAPPLIED\tPATH")
			for _, s := range statuses {
				fmt.Fprintf(tw, "%d\t%t\t%s\n", s.Version, s.Applied, s.Path)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&statusOnly, "status", false, "Only print migration status")
	return cmd
}
