package pricing

import (
	"reflect"
	"sync"
	"testing"

	"github.com/Simplici0/costboard/internal/catalog"
)

func TestEstimator_MatchesCompute(t *testing.T) {
	cat := catalog.Default()
	est := NewEstimator(cat)

	selections := []Selection{
		{Quantity: 10, Categories: []string{"Memory"}},
		{Quantity: 10, Categories: []string{"Memory"}},
		{Quantity: 10, Categories: []string{"Memory"}, ApplySetupFee: true},
		{Quantity: 0, ApplySetupFee: true},
		{Quantity: 50, SearchTerm: "zzz-no-match"},
		{Quantity: 10, Categories: []string{"Memory"}},
	}

	for i, sel := range selections {
		got := est.Estimate(sel)
		want := Compute(cat, sel)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("selection %d (%+v): estimator result differs from Compute", i, sel)
		}
	}
}

func TestEstimator_EquivalentSelectionsShareResult(t *testing.T) {
	est := NewEstimator(catalog.Default())

	a := est.Estimate(Selection{Quantity: 2, SearchTerm: " Memory ", Categories: []string{"Memory", "Storage"}})
	b := est.Estimate(Selection{Quantity: 2, SearchTerm: "memory", Categories: []string{"Storage", "Memory", "Memory"}})

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("equivalent selections produced different results")
	}
}

func TestEstimator_ReturnedRowsAreIndependent(t *testing.T) {
	est := NewEstimator(catalog.Default())
	sel := Selection{Quantity: 1, Categories: []string{"Processor"}}

	first := est.Estimate(sel)
	first.Rows[0].Name = "changed"

	second := est.Estimate(sel)
	if second.Rows[0].Name == "changed" {
		t.Fatalf("caller mutation leaked into the memoized result")
	}
}

func TestEstimator_ConcurrentUse(t *testing.T) {
	cat := catalog.Default()
	est := NewEstimator(cat)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(q int) {
			defer wg.Done()
			sel := Selection{Quantity: q % 4, ApplySetupFee: q%2 == 0}
			if got, want := est.Estimate(sel), Compute(cat, sel); !got.Total.Equal(want.Total) {
				t.Errorf("quantity %d: total %s, want %s", sel.Quantity, got.Total, want.Total)
			}
		}(i)
	}
	wg.Wait()
}
