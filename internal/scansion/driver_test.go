package scansion

import (
	"testing"

	"github.com/tariquesani/aruuz-nigar/internal/catalog"
)

// codeOnlyLine builds a Line with exactly one code alternative per
// word, mirroring transducer.FromDirectCode without importing it (that
// package itself imports scansion, so importing it back here would be
// a cycle).
func codeOnlyLine(codes ...string) Line {
	words := make([]Word, len(codes))
	for i, c := range codes {
		words[i] = Word{Surface: c, Codes: []string{c}}
	}
	return Line{Original: "test", Words: words}
}

func TestScanLineExactMatchesAHazajMeter(t *testing.T) {
	cat := catalog.BuildCatalog()
	// "ہزج مثمن سالم": -===/-===/-===/-===
	line := codeOnlyLine("-===", "-===", "-===", "-===")

	results, err := ScanLine(cat, line, Options{})
	if err != nil {
		t.Fatalf("ScanLine: %v", err)
	}

	found := false
	for _, r := range results {
		if r.MeterName == "ہزج مثمن سالم" {
			found = true
			if r.Code != "-===-===-===-===" {
				t.Errorf("Code = %q, want the concatenated word codes", r.Code)
			}
		}
	}
	if !found {
		t.Fatalf("ScanLine did not return the exact Hazaj match among %d results", len(results))
	}
}

func TestScanLineEmptyInputErrors(t *testing.T) {
	cat := catalog.BuildCatalog()
	if _, err := ScanLine(cat, Line{}, Options{}); err == nil {
		t.Fatal("ScanLine on an empty Line should error")
	}
}

func TestScanLineRejectsFuzzyAndFreeVerseTogether(t *testing.T) {
	cat := catalog.BuildCatalog()
	line := codeOnlyLine("-===")
	if _, err := ScanLine(cat, line, Options{Fuzzy: true, FreeVerse: true}); err == nil {
		t.Fatal("ScanLine should reject Fuzzy+FreeVerse both set")
	}
}

func TestScanLineFuzzyFindsNearMatch(t *testing.T) {
	cat := catalog.BuildCatalog()
	// "ہزج مثمن سالم" (-===/-===/-===/-===) with the final syllable given
	// as the wildcard 'x', which matches '=' at zero cost.
	line := codeOnlyLine("-===", "-===", "-===", "-==x")

	results, err := ScanLineFuzzy(cat, line, Options{ErrorParam: 6})
	if err != nil {
		t.Fatalf("ScanLineFuzzy: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one fuzzy candidate")
	}
	for _, r := range results {
		if r.Score < 0 {
			t.Errorf("fuzzy score must be non-negative, got %d", r.Score)
		}
	}
}

func TestExactResultsAreASubsetOfFuzzyAtZeroDistance(t *testing.T) {
	cat := catalog.BuildCatalog()
	line := codeOnlyLine("-===", "-===", "-===", "-===")

	exact, err := ScanLine(cat, line, Options{})
	if err != nil {
		t.Fatalf("ScanLine: %v", err)
	}
	fuzzy, err := ScanLineFuzzy(cat, line, Options{ErrorParam: 6})
	if err != nil {
		t.Fatalf("ScanLineFuzzy: %v", err)
	}

	fuzzyIDs := make(map[int]bool, len(fuzzy))
	for _, f := range fuzzy {
		if f.Score == 0 {
			fuzzyIDs[f.MeterID] = true
		}
	}
	for _, e := range exact {
		if !fuzzyIDs[e.MeterID] {
			t.Errorf("exact match on meter id %d (%s) missing from zero-distance fuzzy results", e.MeterID, e.MeterName)
		}
	}
}

func TestFreeVerseAcceptsAProperPrefix(t *testing.T) {
	cat := catalog.BuildCatalog()
	// Half of "ہزج مثمن سالم": -===/-===/-===/-===
	line := codeOnlyLine("-===", "-===")

	results, err := ScanLine(cat, line, Options{FreeVerse: true})
	if err != nil {
		t.Fatalf("ScanLine(FreeVerse): %v", err)
	}

	found := false
	for _, r := range results {
		if r.MeterName == "ہزج مثمن سالم" {
			found = true
		}
	}
	if !found {
		t.Fatal("free-verse scan should accept a proper prefix of a known meter")
	}
}
