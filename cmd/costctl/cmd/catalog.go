package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Simplici0/costboard/internal/report"
)

func newCatalogCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List parts, pricing rules and the setup fee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listing := report.NewCatalog(root.catalog)
			switch report.Format(format) {
			case report.FormatJSON:
				return report.WriteJSON(cmd.OutOrStdout(), listing)
			case report.FormatTable:
				return report.WriteCatalogTable(cmd.OutOrStdout(), listing)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatTable), "output format (table, json)")
	return cmd
}
