package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/Simplici0/costboard/internal/catalog"
)

// Selection is a snapshot of the user-configurable inputs. It is passed by value and never stored.
type Selection struct {
	SearchTerm    string
	Quantity      int
	Categories    []string
	ApplySetupFee bool
}

// CalculatedPart is a part priced for one recomputation.
type CalculatedPart struct {
	catalog.Part
	Multiplier         decimal.Decimal
	AdjustedPrice      decimal.Decimal
	LineCost           decimal.Decimal
	CalculatedQuantity int
}

// Price computes the adjusted unit price and line cost of part for quantity.
// Categories without a pricing rule use catalog.DefaultMultiplier. No rounding is applied.
func Price(part catalog.Part, table catalog.PricingTable, quantity int) CalculatedPart {
	multiplier := table.Multiplier(part.Category)
	adjusted := part.BasePrice.Mul(multiplier)

	return CalculatedPart{
		Part:               part,
		Multiplier:         multiplier,
		AdjustedPrice:      adjusted,
		LineCost:           adjusted.Mul(decimal.NewFromInt(int64(quantity))),
		CalculatedQuantity: quantity,
	}
}
