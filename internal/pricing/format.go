package pricing

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders amount with two decimals and thousands separators, e.g. "23,625.00".
// This is the only place where money is rounded.
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	whole, frac, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")

	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return rounded.StringFixed(2)
	}

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + humanize.Comma(n) + "." + frac
}
