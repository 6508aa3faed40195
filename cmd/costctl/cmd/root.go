// Package cmd provides the CLI commands for costctl.
package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Simplici0/costboard/internal/catalog"
	"github.com/Simplici0/costboard/internal/logging"
)

type rootOptions struct {
	catalogFile string
	logLevel    string

	log     zerolog.Logger
	catalog catalog.Catalog
}

// NewRootCmd builds the costctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "costctl",
		Short: "Estimate the cost of a parts order",
		Long: `costctl prices parts from a static catalog with regional category
multipliers, multiplies them by a quantity and sums the total.

Examples:
  costctl estimate --quantity 50
  costctl estimate --quantity 10 --category Memory --setup-fee
  costctl estimate --quantity 5 --search ssd --format json
  costctl catalog --catalog ./catalog.hcl`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.catalogFile, "catalog", "", "HCL catalog file (default is the built-in catalog)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newEstimateCmd(opts))
	root.AddCommand(newCatalogCmd(opts))
	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *rootOptions) init(cmd *cobra.Command) error {
	o.log = logging.New(logging.Config{Level: o.logLevel, Console: true}, cmd.ErrOrStderr())

	if o.catalogFile == "" {
		o.catalog = catalog.Default()
		o.log.Debug().Int("parts", len(o.catalog.Parts)).Msg("using built-in catalog")
		return nil
	}

	cat, err := catalog.LoadFile(o.catalogFile)
	if err != nil {
		return fmt.Errorf("load catalog %s: %w", o.catalogFile, err)
	}
	o.catalog = cat
	o.log.Debug().Str("file", o.catalogFile).Int("parts", len(cat.Parts)).Msg("catalog loaded")
	return nil
}
