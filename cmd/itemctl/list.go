package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/enderryno/nuclearcraft-items/internal/bootstrap"
	"github.com/enderryno/nuclearcraft-items/internal/domain"
)

// itemView is the CLI representation of one item
type itemView struct {
	ID          domain.ItemID `json:"id"`
	DisplayName string        `json:"display_name"`
	Behavior    string        `json:"behavior,omitempty"`
	Aliases     []string      `json:"aliases,omitempty"`
}

func newItemView(catalog *bootstrap.Catalog, def domain.ItemDefinition) itemView {
	return itemView{
		ID:          def.ID,
		DisplayName: def.DisplayName,
		Behavior:    def.BehaviorName(),
		Aliases:     catalog.Resolver.AliasesFor(def.ID),
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every item in registration order",
		Long: `List every item in the catalog in registration order.

Examples:
  # Table output
  itemctl list

  # JSON output for scripting
  itemctl list --json | jq '.[].display_name'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			views := make([]itemView, 0, catalog.Registry.Len())
			for def := range catalog.Registry.All() {
				views = append(views, newItemView(catalog, def))
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), views)
			}
			return writeTable(cmd.OutOrStdout(), views)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, views []itemView) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBEHAVIOR\tALIASES")
	for _, v := range views {
		behavior := v.Behavior
		if behavior == "" {
			behavior = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", v.ID, v.DisplayName, behavior, strings.Join(v.Aliases, ","))
	}
	return tw.Flush()
}
