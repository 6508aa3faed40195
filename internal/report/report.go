// Package report turns pricing results into the shapes the dashboard, the JSON API
// and the CLI render.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/Simplici0/costboard/internal/catalog"
	"github.com/Simplici0/costboard/internal/pricing"
)

// Format is an output format name.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Row is one priced part.
type Row struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Category             string          `json:"category"`
	Quantity             int             `json:"quantity"`
	BasePrice            decimal.Decimal `json:"base_price"`
	Multiplier           decimal.Decimal `json:"multiplier"`
	AdjustedPrice        decimal.Decimal `json:"adjusted_price"`
	LineCost             decimal.Decimal `json:"line_cost"`
	AdjustedPriceDisplay string          `json:"adjusted_price_display"`
	LineCostDisplay      string          `json:"line_cost_display"`
}

// Estimate is the rendered form of a pricing.Result.
type Estimate struct {
	Quantity        int             `json:"quantity"`
	Rows            []Row           `json:"rows"`
	SetupFeeApplied bool            `json:"setup_fee_applied"`
	Total           decimal.Decimal `json:"total"`
	TotalDisplay    string          `json:"total_display"`
	NoResults       bool            `json:"no_results"`
	Message         string          `json:"message,omitempty"`
}

// NewEstimate converts res. Money keeps full precision; the display fields are rounded.
func NewEstimate(res pricing.Result, setupFeeApplied bool) Estimate {
	rows := make([]Row, 0, len(res.Rows))
	for _, r := range res.Rows {
		rows = append(rows, Row{
			ID:                   r.ID,
			Name:                 r.Name,
			Category:             r.Category,
			Quantity:             r.CalculatedQuantity,
			BasePrice:            r.BasePrice,
			Multiplier:           r.Multiplier,
			AdjustedPrice:        r.AdjustedPrice,
			LineCost:             r.LineCost,
			AdjustedPriceDisplay: pricing.FormatCurrency(r.AdjustedPrice),
			LineCostDisplay:      pricing.FormatCurrency(r.LineCost),
		})
	}

	return Estimate{
		Quantity:        res.Quantity,
		Rows:            rows,
		SetupFeeApplied: setupFeeApplied,
		Total:           res.Total,
		TotalDisplay:    pricing.FormatCurrency(res.Total),
		NoResults:       res.NoResults,
		Message:         res.Message,
	}
}

// CatalogRule is a pricing rule as listed to clients.
type CatalogRule struct {
	Category   string          `json:"category"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Region     string          `json:"region"`
}

// Catalog is the listing of a catalog.
type Catalog struct {
	Parts           []catalog.Part  `json:"parts"`
	Pricing         []CatalogRule   `json:"pricing"`
	Categories      []string        `json:"categories"`
	SetupFee        decimal.Decimal `json:"setup_fee"`
	SetupFeeDisplay string          `json:"setup_fee_display"`
}

// NewCatalog lists cat with pricing rules sorted by category.
func NewCatalog(cat catalog.Catalog) Catalog {
	rules := make([]CatalogRule, 0, len(cat.Pricing))
	for _, rule := range cat.Pricing {
		rules = append(rules, CatalogRule{Category: rule.Category, Multiplier: rule.Multiplier, Region: rule.Region})
	}
	slices.SortFunc(rules, func(a, b CatalogRule) int {
		switch {
		case a.Category < b.Category:
			return -1
		case a.Category > b.Category:
			return 1
		}
		return 0
	})

	parts := cat.Parts
	if parts == nil {
		parts = []catalog.Part{}
	}

	return Catalog{
		Parts:           parts,
		Pricing:         rules,
		Categories:      cat.Categories(),
		SetupFee:        cat.SetupFee,
		SetupFeeDisplay: pricing.FormatCurrency(cat.SetupFee),
	}
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteEstimateTable writes est as an aligned text table followed by the total.
func WriteEstimateTable(w io.Writer, est Estimate) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if len(est.Rows) > 0 {
		fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tUNIT PRICE\tQTY\tLINE COST")
		for _, r := range est.Rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n", r.ID, r.Name, r.Category, r.AdjustedPriceDisplay, r.Quantity, r.LineCostDisplay)
		}
		fmt.Fprintln(tw)
	}
	if est.Message != "" {
		fmt.Fprintln(tw, est.Message)
	}
	if est.SetupFeeApplied {
		fmt.Fprintln(tw, "Setup fee included.")
	}
	fmt.Fprintf(tw, "Total:\t%s\n", est.TotalDisplay)

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write estimate table: %w", err)
	}
	return nil
}

// WriteCatalogTable writes the pricing rules and parts of c.
func WriteCatalogTable(w io.Writer, c Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "CATEGORY\tMULTIPLIER\tREGION")
	for _, rule := range c.Pricing {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", rule.Category, rule.Multiplier.String(), rule.Region)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tBASE PRICE")
	for _, p := range c.Parts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, pricing.FormatCurrency(p.BasePrice))
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Setup fee:\t%s\n", c.SetupFeeDisplay)

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write catalog table: %w", err)
	}
	return nil
}
