package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	tests := map[string]string{
		"23625":       "23,625.00",
		"23625.00":    "23,625.00",
		"1719.9":      "1,719.90",
		"0":           "0.00",
		"500":         "500.00",
		"472.5":       "472.50",
		"999.995":     "1,000.00",
		"1234567.891": "1,234,567.89",
		"0.004":       "0.00",
		"-1500.5":     "-1,500.50",
	}

	for in, want := range tests {
		if got := FormatCurrency(decimal.RequireFromString(in)); got != want {
			t.Fatalf("FormatCurrency(%s) = %q, want %q", in, got, want)
		}
	}
}
