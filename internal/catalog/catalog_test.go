package catalog

import "testing"

func TestBuildCatalogIntegrity(t *testing.T) {
	// BuildCatalog panics on any integrity failure (mismatched counts,
	// an unresolved foot fragment); a clean call proves the fixed
	// tables are internally consistent.
	cat := BuildCatalog()

	if got, want := len(cat.Meters), cat.NumRegular+cat.NumRubai; got != want {
		t.Fatalf("len(Meters) = %d, want %d", got, want)
	}
	if got, want := len(cat.Special), cat.NumSpecial; got != want {
		t.Fatalf("len(Special) = %d, want %d", got, want)
	}
}

func TestClassifyFlattenRoundTrip(t *testing.T) {
	cat := BuildCatalog()

	cases := []struct {
		kind  MeterKind
		index int
	}{
		{KindRegular, 0},
		{KindRegular, cat.NumRegular - 1},
		{KindRubai, 0},
		{KindRubai, cat.NumRubai - 1},
		{KindSpecial, 0},
		{KindSpecial, cat.NumSpecial - 1},
	}
	for _, tc := range cases {
		flat := cat.Flatten(tc.kind, tc.index)
		kind, index, err := cat.Classify(flat)
		if err != nil {
			t.Fatalf("Classify(%d): %v", flat, err)
		}
		if kind != tc.kind || index != tc.index {
			t.Errorf("Classify(Flatten(%v,%d)) = (%v,%d), want (%v,%d)", tc.kind, tc.index, kind, index, tc.kind, tc.index)
		}
	}
}

func TestClassifyOutOfRange(t *testing.T) {
	cat := BuildCatalog()
	if _, _, err := cat.Classify(cat.SpecialBase() + cat.NumSpecial); err == nil {
		t.Fatal("Classify of an out-of-range flat index should error")
	}
}

func TestAllSearchableExcludesSpecial(t *testing.T) {
	cat := BuildCatalog()
	for _, id := range cat.AllSearchable() {
		if id >= cat.SpecialBase() {
			t.Fatalf("AllSearchable() included special-pool index %d", id)
		}
	}
	if got, want := len(cat.AllSearchable()), cat.NumMeters(); got != want {
		t.Errorf("len(AllSearchable()) = %d, want %d (every regular+rubai meter exactly once)", got, want)
	}
}

func TestFootNameRoundTrip(t *testing.T) {
	cat := BuildCatalog()
	for _, f := range cat.Feet {
		if got := cat.FootName(f.Pattern); got != f.Name {
			t.Errorf("FootName(%q) = %q, want %q", f.Pattern, got, f.Name)
		}
		if got := cat.FootCode(f.Name); got != f.Pattern {
			t.Errorf("FootCode(%q) = %q, want %q", f.Name, got, f.Pattern)
		}
	}
}

func TestIndicesByNameCoversEveryMeter(t *testing.T) {
	cat := BuildCatalog()
	for i, m := range cat.Meters {
		found := false
		for _, idx := range cat.IndicesByName(m.Name) {
			if idx == i {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("IndicesByName(%q) does not include index %d", m.Name, i)
		}
	}
}
