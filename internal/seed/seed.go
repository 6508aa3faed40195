package seed

import (
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/Simplici0/costboard/internal/catalog"
)

const defaultCurrency = "USD"

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Updates int
	Deletes int
}

// Run makes the database hold exactly cat. Rows that already match are left as-is,
// so running it again with the same catalog changes nothing.
func Run(db *sql.DB, cat catalog.Catalog) (Stats, error) {
	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := ensureSettings(tx, cat.SetupFee, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensurePricingRules(tx, cat.Pricing, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureParts(tx, cat.Parts, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureSettings(tx *sql.Tx, setupFee decimal.Decimal, stats *Stats) error {
	var stored decimal.Decimal
	err := tx.QueryRow(`SELECT setup_fee FROM settings WHERE id = 1`).Scan(&stored)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := tx.Exec(`
			INSERT INTO settings (id, setup_fee, currency)
			VALUES (1, ?, ?)
		`, setupFee.String(), defaultCurrency); err != nil {
			return fmt.Errorf("insert settings singleton: %w", err)
		}
		stats.Inserts++
		return nil
	case err != nil:
		return fmt.Errorf("query settings singleton: %w", err)
	}

	if stored.Equal(setupFee) {
		return nil
	}
	if _, err := tx.Exec(`
		UPDATE settings SET setup_fee = ?, updated_at = CURRENT_TIMESTAMP WHERE id = 1
	`, setupFee.String()); err != nil {
		return fmt.Errorf("update settings singleton: %w", err)
	}
	stats.Updates++
	return nil
}

func ensurePricingRules(tx *sql.Tx, table catalog.PricingTable, stats *Stats) error {
	stored, err := storedPricingRules(tx)
	if err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(table)) {
		rule := table[category]

		current, exists := stored[category]
		switch {
		case !exists:
			if _, err := tx.Exec(`
				INSERT INTO pricing_rules (category, multiplier, region)
				VALUES (?, ?, ?)
			`, category, rule.Multiplier.String(), rule.Region); err != nil {
				return fmt.Errorf("insert pricing rule %s: %w", category, err)
			}
			stats.Inserts++
		case !current.Multiplier.Equal(rule.Multiplier) || current.Region != rule.Region:
			if _, err := tx.Exec(`
				UPDATE pricing_rules SET multiplier = ?, region = ? WHERE category = ?
			`, rule.Multiplier.String(), rule.Region, category); err != nil {
				return fmt.Errorf("update pricing rule %s: %w", category, err)
			}
			stats.Updates++
		}
	}

	for _, category := range slices.Sorted(maps.Keys(stored)) {
		if _, keep := table[category]; keep {
			continue
		}
		if _, err := tx.Exec(`DELETE FROM pricing_rules WHERE category = ?`, category); err != nil {
			return fmt.Errorf("delete pricing rule %s: %w", category, err)
		}
		stats.Deletes++
	}
	return nil
}

func storedPricingRules(tx *sql.Tx) (map[string]catalog.PricingRule, error) {
	rows, err := tx.Query(`SELECT category, multiplier, region FROM pricing_rules`)
	if err != nil {
		return nil, fmt.Errorf("query pricing rules: %w", err)
	}
	defer rows.Close()

	stored := make(map[string]catalog.PricingRule)
	for rows.Next() {
		var rule catalog.PricingRule
		if err := rows.Scan(&rule.Category, &rule.Multiplier, &rule.Region); err != nil {
			return nil, fmt.Errorf("scan pricing rule: %w", err)
		}
		stored[rule.Category] = rule
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pricing rules: %w", err)
	}
	return stored, nil
}

type storedPart struct {
	catalog.Part
	position int
}

func ensureParts(tx *sql.Tx, parts []catalog.Part, stats *Stats) error {
	stored, err := storedParts(tx)
	if err != nil {
		return err
	}

	configured := make(map[string]bool, len(parts))
	for i, p := range parts {
		configured[p.ID] = true

		current, exists := stored[p.ID]
		switch {
		case !exists:
			if _, err := tx.Exec(`
				INSERT INTO parts (id, position, name, category, base_price)
				VALUES (?, ?, ?, ?, ?)
			`, p.ID, i, p.Name, p.Category, p.BasePrice.String()); err != nil {
				return fmt.Errorf("insert part %s: %w", p.ID, err)
			}
			stats.Inserts++
		case current.position != i || current.Name != p.Name || current.Category != p.Category || !current.BasePrice.Equal(p.BasePrice):
			if _, err := tx.Exec(`
				UPDATE parts SET position = ?, name = ?, category = ?, base_price = ? WHERE id = ?
			`, i, p.Name, p.Category, p.BasePrice.String(), p.ID); err != nil {
				return fmt.Errorf("update part %s: %w", p.ID, err)
			}
			stats.Updates++
		}
	}

	for _, id := range slices.Sorted(maps.Keys(stored)) {
		if configured[id] {
			continue
		}
		if _, err := tx.Exec(`DELETE FROM parts WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete part %s: %w", id, err)
		}
		stats.Deletes++
	}
	return nil
}

func storedParts(tx *sql.Tx) (map[string]storedPart, error) {
	rows, err := tx.Query(`SELECT id, position, name, category, base_price FROM parts`)
	if err != nil {
		return nil, fmt.Errorf("query parts: %w", err)
	}
	defer rows.Close()

	stored := make(map[string]storedPart)
	for rows.Next() {
		var p storedPart
		if err := rows.Scan(&p.ID, &p.position, &p.Name, &p.Category, &p.BasePrice); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		stored[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate parts: %w", err)
	}
	return stored, nil
}
