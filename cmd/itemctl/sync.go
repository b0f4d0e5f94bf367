package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enderryno/nuclearcraft-items/internal/bootstrap"
	"github.com/enderryno/nuclearcraft-items/internal/database/postgres"
)

func newSyncCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Mirror the item catalog into PostgreSQL",
		Long: `Migrate the database, then insert or update every catalog item in
the items table. Nothing is written when the catalog checksum matches the
last sync. Rows for items no longer in the catalog are reported, not deleted.

Examples:
  itemctl sync
  itemctl sync --items ./items.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			catalog, err := bootstrap.LoadCatalog(cfg, nil)
			if err != nil {
				return err
			}

			pool, err := bootstrap.OpenDatabase(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			result, err := bootstrap.SyncItems(cmd.Context(), catalog, postgres.NewItemRepository(pool))
			if err != nil {
				return err
			}

			if result.Unchanged {
				fmt.Fprintln(cmd.OutOrStdout(), "catalog unchanged, nothing to sync")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d, updated %d, skipped %d, stale %d\n",
				result.ItemsInserted, result.ItemsUpdated, result.ItemsSkipped, result.ItemsStale)
			return nil
		},
	}
}
