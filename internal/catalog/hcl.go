package catalog

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// fileSpec is the catalog file layout. Numeric fields decode as cty.Value and
// convert straight to decimals.
type fileSpec struct {
	SetupFee cty.Value     `hcl:"setup_fee,optional"`
	Pricing  []pricingSpec `hcl:"pricing,block"`
	Parts    []partSpec    `hcl:"part,block"`
}

type pricingSpec struct {
	Category   string    `hcl:"category,label"`
	Multiplier cty.Value `hcl:"multiplier"`
	Region     string    `hcl:"region,optional"`
}

type partSpec struct {
	ID        string    `hcl:"id,label"`
	Name      string    `hcl:"name"`
	Category  string    `hcl:"category"`
	BasePrice cty.Value `hcl:"base_price"`
}

// LoadFile reads a catalog from an HCL file.
func LoadFile(path string) (Catalog, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return Catalog{}, fmt.Errorf("parse catalog file: %w", diags)
	}
	return decode(file)
}

// Parse reads a catalog from HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (Catalog, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return Catalog{}, fmt.Errorf("parse catalog: %w", diags)
	}
	return decode(file)
}

func decode(file *hcl.File) (Catalog, error) {
	var spec fileSpec
	if diags := gohcl.DecodeBody(file.Body, nil, &spec); diags.HasErrors() {
		return Catalog{}, fmt.Errorf("decode catalog: %w", diags)
	}

	cat := Catalog{
		Parts:    make([]Part, 0, len(spec.Parts)),
		Pricing:  make(PricingTable, len(spec.Pricing)),
		SetupFee: decimal.Zero,
	}
	if !spec.SetupFee.IsNull() {
		fee, err := toDecimal(spec.SetupFee)
		if err != nil {
			return Catalog{}, fmt.Errorf("setup_fee: %w", err)
		}
		cat.SetupFee = fee
	}

	for _, p := range spec.Pricing {
		if _, exists := cat.Pricing[p.Category]; exists {
			return Catalog{}, fmt.Errorf("pricing rule %s: duplicate category", p.Category)
		}
		multiplier, err := toDecimal(p.Multiplier)
		if err != nil {
			return Catalog{}, fmt.Errorf("pricing rule %s: multiplier: %w", p.Category, err)
		}
		cat.Pricing[p.Category] = PricingRule{
			Category:   p.Category,
			Multiplier: multiplier,
			Region:     p.Region,
		}
	}
	for _, p := range spec.Parts {
		price, err := toDecimal(p.BasePrice)
		if err != nil {
			return Catalog{}, fmt.Errorf("part %s: base_price: %w", p.ID, err)
		}
		cat.Parts = append(cat.Parts, Part{
			ID:        p.ID,
			Name:      p.Name,
			Category:  p.Category,
			BasePrice: price,
		})
	}

	if err := cat.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("validate catalog: %w", err)
	}
	return cat, nil
}

func toDecimal(v cty.Value) (decimal.Decimal, error) {
	if v.IsNull() || !v.IsKnown() {
		return decimal.Decimal{}, fmt.Errorf("a number is required")
	}
	n, err := convert.Convert(v, cty.Number)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("a number is required: %w", err)
	}
	return decimal.NewFromString(n.AsBigFloat().Text('f', -1))
}
