package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Simplici0/costboard/internal/pricing"
	"github.com/Simplici0/costboard/internal/report"
)

type estimateOptions struct {
	quantity   string
	search     string
	categories []string
	setupFee   bool
	format     string
}

func newEstimateCmd(root *rootOptions) *cobra.Command {
	opts := &estimateOptions{}

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Price the parts matching the filters",
		Long: `Filter the catalog by category and search term, price every matching
part for the given quantity and print the rows and the total.

An invalid or non-positive quantity produces no rows; the total is then
only the setup fee, when requested.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.quantity, "quantity", "n", "1", "units per part")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "case-insensitive match on id, name or category")
	cmd.Flags().StringArrayVarP(&opts.categories, "category", "c", nil, "category to include (repeatable, default all)")
	cmd.Flags().BoolVar(&opts.setupFee, "setup-fee", false, "add the flat setup fee to the total")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(report.FormatTable), "output format (table, json)")

	return cmd
}

func runEstimate(cmd *cobra.Command, root *rootOptions, opts *estimateOptions) error {
	sel := pricing.Selection{
		SearchTerm:    opts.search,
		Quantity:      pricing.CoerceQuantity(opts.quantity),
		Categories:    opts.categories,
		ApplySetupFee: opts.setupFee,
	}

	res := pricing.Compute(root.catalog, sel)

	root.log.Debug().
		Int("quantity", res.Quantity).
		Int("rows", len(res.Rows)).
		Str("total", res.Total.String()).
		Msg("estimate computed")

	est := report.NewEstimate(res, sel.ApplySetupFee)
	switch report.Format(opts.format) {
	case report.FormatJSON:
		return report.WriteJSON(cmd.OutOrStdout(), est)
	case report.FormatTable:
		return report.WriteEstimateTable(cmd.OutOrStdout(), est)
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
}
