package pricing

import "github.com/shopspring/decimal"

// Aggregate sums the line costs of rows and adds setupFee when applySetupFee is set.
func Aggregate(rows []CalculatedPart, applySetupFee bool, setupFee decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.LineCost)
	}
	if applySetupFee {
		total = total.Add(setupFee)
	}
	return total
}
