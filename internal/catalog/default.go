package catalog

import "github.com/shopspring/decimal"

// Default returns the built-in catalog served when no catalog file is configured.
func Default() Catalog {
	return Catalog{
		Parts: []Part{
			{ID: "CPU-001", Name: "Octa-Core Processor X8", Category: "Processor", BasePrice: dec("450.00")},
			{ID: "CPU-002", Name: "Quad-Core Processor Q4", Category: "Processor", BasePrice: dec("210.00")},
			{ID: "MEM-001", Name: "32GB DDR5 Memory Kit", Category: "Memory", BasePrice: dec("120.50")},
			{ID: "MEM-002", Name: "16GB DDR4 Memory Module", Category: "Memory", BasePrice: dec("55.00")},
			{ID: "STO-001", Name: "2TB NVMe Solid State Drive", Category: "Storage", BasePrice: dec("189.99")},
			{ID: "STO-002", Name: "4TB SATA Hard Disk", Category: "Storage", BasePrice: dec("94.00")},
			{ID: "GPU-001", Name: "16GB Graphics Accelerator", Category: "Graphics", BasePrice: dec("799.00")},
			{ID: "MBD-001", Name: "ATX Motherboard Z-Series", Category: "Motherboard", BasePrice: dec("289.00")},
			{ID: "PSU-001", Name: "850W Modular Power Supply", Category: "Power", BasePrice: dec("129.00")},
			{ID: "CLR-001", Name: "360mm Liquid Cooler", Category: "Cooling", BasePrice: dec("149.00")},
		},
		Pricing: PricingTable{
			"Processor":   {Category: "Processor", Multiplier: dec("1.05"), Region: "North America"},
			"Memory":      {Category: "Memory", Multiplier: dec("0.98"), Region: "Asia Pacific"},
			"Storage":     {Category: "Storage", Multiplier: dec("1.10"), Region: "Europe"},
			"Graphics":    {Category: "Graphics", Multiplier: dec("1.15"), Region: "North America"},
			"Motherboard": {Category: "Motherboard", Multiplier: dec("1.00"), Region: "Asia Pacific"},
			"Power":       {Category: "Power", Multiplier: dec("1.02"), Region: "Europe"},
		},
		SetupFee: dec("500.00"),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
