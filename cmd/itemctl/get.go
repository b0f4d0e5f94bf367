package main

import (
	"github.com/spf13/cobra"
)

func newGetCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <id|name|alias>",
		Short: "Resolve one item by id, name, alias or unique prefix",
		Long: `Resolve one item the same way the resolve endpoint does:
exact display name, then alias, then "#id" or a bare id, then a unique
name prefix.

Examples:
  itemctl get 1
  itemctl get "#2"
  itemctl get "gas mask"
  itemctl get respirator --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			def, err := catalog.Resolver.Resolve(args[0])
			if err != nil {
				return err
			}

			view := newItemView(catalog, def)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			return writeTable(cmd.OutOrStdout(), []itemView{view})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
