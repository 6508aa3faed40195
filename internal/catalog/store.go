package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// LoadDB reads the whole catalog from the database. Parts keep their stored position order.
func LoadDB(ctx context.Context, db *sql.DB) (Catalog, error) {
	pricing, err := loadPricingRules(ctx, db)
	if err != nil {
		return Catalog{}, err
	}

	parts, err := loadParts(ctx, db)
	if err != nil {
		return Catalog{}, err
	}

	cat := Catalog{Parts: parts, Pricing: pricing}
	err = db.QueryRowContext(ctx, `SELECT setup_fee FROM settings WHERE id = 1`).Scan(&cat.SetupFee)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Catalog{}, fmt.Errorf("settings singleton not found")
		}
		return Catalog{}, fmt.Errorf("query settings: %w", err)
	}

	if err := cat.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("validate stored catalog: %w", err)
	}
	return cat, nil
}

func loadPricingRules(ctx context.Context, db *sql.DB) (PricingTable, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT category, multiplier, COALESCE(region, '')
		FROM pricing_rules
		ORDER BY category
	`)
	if err != nil {
		return nil, fmt.Errorf("query pricing rules: %w", err)
	}
	defer rows.Close()

	table := make(PricingTable)
	for rows.Next() {
		var rule PricingRule
		if err := rows.Scan(&rule.Category, &rule.Multiplier, &rule.Region); err != nil {
			return nil, fmt.Errorf("scan pricing rule: %w", err)
		}
		table[rule.Category] = rule
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pricing rules: %w", err)
	}

	return table, nil
}

func loadParts(ctx context.Context, db *sql.DB) ([]Part, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, category, base_price
		FROM parts
		ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query parts: %w", err)
	}
	defer rows.Close()

	parts := make([]Part, 0)
	for rows.Next() {
		var p Part
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.BasePrice); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		parts = append(parts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate parts: %w", err)
	}

	return parts, nil
}
