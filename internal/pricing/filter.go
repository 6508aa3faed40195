package pricing

import (
	"strings"

	"github.com/Simplici0/costboard/internal/catalog"
)

// Filter returns the parts that belong to one of categories and match searchTerm,
// in catalog order. An empty categories list disables the category predicate.
// The search term is trimmed and compared case-insensitively against id, name and category.
func Filter(parts []catalog.Part, categories []string, searchTerm string) []catalog.Part {
	var selected map[string]bool
	if len(categories) > 0 {
		selected = make(map[string]bool, len(categories))
		for _, c := range categories {
			selected[c] = true
		}
	}
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	matched := make([]catalog.Part, 0, len(parts))
	for _, p := range parts {
		if selected != nil && !selected[p.Category] {
			continue
		}
		if !matchesTerm(p, term) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func matchesTerm(p catalog.Part, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.ID), term) ||
		strings.Contains(strings.ToLower(p.Category), term)
}
