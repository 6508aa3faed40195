package pricing

import (
	"math"
	"strconv"
	"strings"
)

// CoerceQuantity parses a raw quantity input. Anything that is not a finite, non-negative
// number that fits in an int becomes 0. Fractions are truncated toward zero.
func CoerceQuantity(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	if n, err := strconv.Atoi(raw); err == nil {
		return max(n, 0)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Trunc(f)
	if f <= 0 || f >= math.MaxInt {
		return 0
	}
	return int(f)
}
