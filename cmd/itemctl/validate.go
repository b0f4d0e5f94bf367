package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enderryno/nuclearcraft-items/internal/item"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate an items catalog file",
		Long: `Validate an items catalog file against the JSON schema and the
registry rules (positive unique ids, unique non-blank names, aliases that
do not shadow other items). The file is built into a registry exactly as
the service would build it.

Examples:
  itemctl validate configs/items/items.json
  itemctl validate ./items.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := item.NewLoader()

			itemConfig, err := loader.Load(args[0])
			if err != nil {
				return err
			}

			reg, err := loader.Build(itemConfig, nil)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (version %s, %d items)\n", args[0], itemConfig.Version, reg.Len())
			return nil
		},
	}
}
