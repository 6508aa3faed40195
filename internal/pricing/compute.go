package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/Simplici0/costboard/internal/catalog"
)

// Messages shown in place of the results table.
const (
	InvalidQuantityMessage = "Please enter a valid quantity (> 0) to proceed with calculation."
	NoMatchMessage         = "No parts match your selected filters and search term."
)

// Result is everything the dashboard renders for one selection.
type Result struct {
	Quantity  int
	Rows      []CalculatedPart
	Total     decimal.Decimal
	NoResults bool
	Message   string
}

// Compute runs filter, pricing and aggregation for sel against cat.
//
// A zero quantity means there is no valid project yet: filtering and pricing are skipped,
// the rows are empty and the total is only the optional setup fee. NoResults is reserved for
// a valid quantity whose filters match nothing, and carries its own message.
func Compute(cat catalog.Catalog, sel Selection) Result {
	quantity := max(sel.Quantity, 0)

	rows := make([]CalculatedPart, 0)
	if quantity > 0 {
		for _, p := range Filter(cat.Parts, sel.Categories, sel.SearchTerm) {
			rows = append(rows, Price(p, cat.Pricing, quantity))
		}
	}

	res := Result{
		Quantity:  quantity,
		Rows:      rows,
		Total:     Aggregate(rows, sel.ApplySetupFee, cat.SetupFee),
		NoResults: len(rows) == 0 && quantity != 0,
	}
	switch {
	case quantity == 0:
		res.Message = InvalidQuantityMessage
	case res.NoResults:
		res.Message = NoMatchMessage
	}
	return res
}
