package pricing

import (
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/Simplici0/costboard/internal/catalog"
)

// Estimator computes results for a fixed catalog and remembers the most recent one,
// so repeated reads of an unchanged selection skip the recomputation.
// It is safe for concurrent use.
type Estimator struct {
	catalog catalog.Catalog

	mu      sync.Mutex
	lastKey string
	last    *Result
}

// NewEstimator returns an Estimator over cat. cat must not be modified afterwards.
func NewEstimator(cat catalog.Catalog) *Estimator {
	return &Estimator{catalog: cat}
}

// Catalog returns the catalog the estimator prices against.
func (e *Estimator) Catalog() catalog.Catalog {
	return e.catalog
}

// Estimate returns the same Result as Compute(e.Catalog(), sel).
func (e *Estimator) Estimate(sel Selection) Result {
	key := selectionKey(sel)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.last == nil || e.lastKey != key {
		res := Compute(e.catalog, sel)
		e.last = &res
		e.lastKey = key
	}

	res := *e.last
	res.Rows = slices.Clone(e.last.Rows)
	return res
}

// selectionKey identifies selections that produce identical results.
func selectionKey(sel Selection) string {
	categories := slices.Clone(sel.Categories)
	slices.Sort(categories)
	categories = slices.Compact(categories)

	var b strings.Builder
	b.WriteString(strconv.Itoa(max(sel.Quantity, 0)))
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(sel.ApplySetupFee))
	b.WriteByte('|')
	b.WriteString(strconv.Quote(strings.ToLower(strings.TrimSpace(sel.SearchTerm))))
	for _, c := range categories {
		b.WriteByte('|')
		b.WriteString(strconv.Quote(c))
	}
	return b.String()
}
