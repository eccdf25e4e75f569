package scansion

import (
	"testing"

	"github.com/tariquesani/aruuz-nigar/internal/catalog"
)

func TestResolveDominantPicksHigherOrderedMatch(t *testing.T) {
	cat := catalog.BuildCatalog()

	full := []catalog.Foot{{Pattern: "-==="}, {Pattern: "-==="}, {Pattern: "-==="}}
	partial := []catalog.Foot{{Pattern: "==-="}}

	results := []LineScansionResult{
		{MeterName: "ہزج مسدس سالم", Feet: full},
		{MeterName: "رجز مسدس سالم", Feet: partial},
	}

	out := ResolveDominant(cat, results)
	if len(out) != 1 || out[0].MeterName != "ہزج مسدس سالم" {
		t.Fatalf("ResolveDominant = %+v, want the full-match meter alone", out)
	}
}

func TestResolveDominantEmpty(t *testing.T) {
	cat := catalog.BuildCatalog()
	if out := ResolveDominant(cat, nil); out != nil {
		t.Errorf("ResolveDominant(nil) = %v, want nil", out)
	}
}

func TestResolveDominantGroupsByName(t *testing.T) {
	cat := catalog.BuildCatalog()
	full := []catalog.Foot{{Pattern: "-==="}, {Pattern: "-==="}, {Pattern: "-==="}}

	results := []LineScansionResult{
		{MeterName: "ہزج مسدس سالم", Feet: full},
		{MeterName: "ہزج مسدس سالم", Feet: full},
	}
	out := ResolveDominant(cat, results)
	if len(out) != 2 {
		t.Fatalf("ResolveDominant should return every result for the winning (only) name, got %d", len(out))
	}
}

func TestFuzzyGroupKeyGroupsRegularByID(t *testing.T) {
	cat := catalog.BuildCatalog()

	r := LineScansionResultFuzzy{
		LineScansionResult: LineScansionResult{MeterName: "ہزج مسدس سالم"},
		Score:              2,
	}
	// Two distinct regular-kind ids sharing no name relation should
	// produce distinct keys even if names collided, proving the fix
	// groups Regular-kind results by id, not by name.
	key0, ok0 := fuzzyGroupKey(cat, r, 0)
	key1, ok1 := fuzzyGroupKey(cat, r, 1)
	if !ok0 || !ok1 {
		t.Fatalf("fuzzyGroupKey failed: ok0=%v ok1=%v", ok0, ok1)
	}
	if key0 == key1 {
		t.Errorf("fuzzyGroupKey(id=0) and fuzzyGroupKey(id=1) collided: %q", key0)
	}
	if key0 != "id:0" || key1 != "id:1" {
		t.Errorf("fuzzyGroupKey = (%q,%q), want (\"id:0\",\"id:1\")", key0, key1)
	}
}
