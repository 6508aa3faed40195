package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Part is one catalog line item.
type Part struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	BasePrice decimal.Decimal `json:"base_price"`
}

// PricingRule maps a category to its regional multiplier. Region is informational only.
type PricingRule struct {
	Category   string          `json:"category"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Region     string          `json:"region"`
}

// PricingTable holds pricing rules keyed by category.
type PricingTable map[string]PricingRule

// DefaultMultiplier applies to categories without a pricing rule.
var DefaultMultiplier = decimal.NewFromInt(1)

// Multiplier returns the multiplier for category, or DefaultMultiplier when no rule exists.
func (t PricingTable) Multiplier(category string) decimal.Decimal {
	if rule, ok := t[category]; ok {
		return rule.Multiplier
	}
	return DefaultMultiplier
}

// Catalog is the static set of parts, pricing rules and the flat setup fee.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	Parts    []Part
	Pricing  PricingTable
	SetupFee decimal.Decimal
}

// Categories returns the distinct part categories in catalog order.
func (c Catalog) Categories() []string {
	seen := make(map[string]bool, len(c.Parts))
	categories := make([]string, 0)
	for _, p := range c.Parts {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

// Validate checks the loading-time constraints of a catalog.
func (c Catalog) Validate() error {
	ids := make(map[string]bool, len(c.Parts))
	for i, p := range c.Parts {
		if p.ID == "" {
			return fmt.Errorf("part %d: id is required", i)
		}
		if ids[p.ID] {
			return fmt.Errorf("part %s: duplicate id", p.ID)
		}
		ids[p.ID] = true
		if p.BasePrice.IsNegative() {
			return fmt.Errorf("part %s: base price must be >= 0", p.ID)
		}
	}
	for category, rule := range c.Pricing {
		if !rule.Multiplier.IsPositive() {
			return fmt.Errorf("pricing rule %s: multiplier must be > 0", category)
		}
	}
	if c.SetupFee.IsNegative() {
		return fmt.Errorf("setup fee must be >= 0")
	}
	return nil
}
