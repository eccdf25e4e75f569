package scansion

import (
	"reflect"
	"testing"
)

func TestRunDFAOriginalHindiAcceptsAlternatingCode(t *testing.T) {
	// state0 --'='--> state1 --'-'--> state2 --'-'--> state3, then
	// state3 --'='--> state1 loops; "=--=" ends back in state1.
	state, ok := runDFA(originalHindiDFA, "=--=")
	if !ok {
		t.Fatal("runDFA(originalHindiDFA, \"=--=\") should be structurally valid")
	}
	if state != 1 {
		t.Errorf("final state = %d, want 1", state)
	}
}

func TestRunDFARejectsDeadTransition(t *testing.T) {
	// state0 --'-'--> invalid (-1).
	if _, ok := runDFA(originalHindiDFA, "-"); ok {
		t.Fatal("runDFA should reject a leading '-' under the Original Hindi table")
	}
}

func TestTotalMorae(t *testing.T) {
	if got, want := totalMorae("-=-="), 6; got != want {
		t.Errorf("totalMorae(%q) = %d, want %d", "-=-=", got, want)
	}
	if got, want := totalMorae(""), 0; got != want {
		t.Errorf("totalMorae(\"\") = %d, want %d", got, want)
	}
}

func TestAcceptingOffsetsMatchesEvenTerminator(t *testing.T) {
	// offset 7 accepts total morae 8 ending in '='.
	code := "----=="
	if got, want := totalMorae(code), 8; got != want {
		t.Fatalf("test fixture invalid: totalMorae(%q) = %d, want %d", code, got, want)
	}
	offsets := acceptingOffsets(code, originalHindiAcceptance)
	found := false
	for _, o := range offsets {
		if o == 7 {
			found = true
		}
	}
	if !found {
		t.Errorf("acceptingOffsets(%q) = %v, want offset 7 among them", code, offsets)
	}
}

func TestAcceptingOffsetsMatchesOddTerminator(t *testing.T) {
	// offset 7 also accepts total morae 9 ending in "-=".
	code := "----=-="
	if got, want := totalMorae(code), 9; got != want {
		t.Fatalf("test fixture invalid: totalMorae(%q) = %d, want %d", code, got, want)
	}
	offsets := acceptingOffsets(code, originalHindiAcceptance)
	found := false
	for _, o := range offsets {
		if o == 7 {
			found = true
		}
	}
	if !found {
		t.Errorf("acceptingOffsets(%q) = %v, want offset 7 among them", code, offsets)
	}
}

func TestAcceptingOffsetsEmptyCode(t *testing.T) {
	if got := acceptingOffsets("", originalHindiAcceptance); got != nil {
		t.Errorf("acceptingOffsets(\"\") = %v, want nil", got)
	}
}

func TestExpandPrefixCrossProduct(t *testing.T) {
	got := expandPrefix("x-x")
	want := []string{"---", "--=", "=--", "=-="}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expandPrefix(\"x-x\") = %v, want %v", got, want)
	}
}

func TestExpandPatternCodesNormalizesTrailingX(t *testing.T) {
	got := expandPatternCodes("-x")
	want := []string{"-="}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expandPatternCodes(\"-x\") = %v, want %v (trailing 'x' normalizes to '=', not expanded)", got, want)
	}
}

func TestExpandPatternCodesExpandsInteriorX(t *testing.T) {
	got := expandPatternCodes("x-")
	want := []string{"--", "=-"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expandPatternCodes(\"x-\") = %v, want %v", got, want)
	}
}

func TestExpandPatternCodesEmpty(t *testing.T) {
	if got := expandPatternCodes(""); got != nil {
		t.Errorf("expandPatternCodes(\"\") = %v, want nil", got)
	}
}

func TestFlattenToCharsOneLocationPerCharacter(t *testing.T) {
	locs := []CodeLocation{
		{Code: "-=", WordRef: 0, CodeRef: 0, Word: "w0"},
		{Code: "-", WordRef: 1, CodeRef: 0, Word: "w1"},
	}
	got := flattenToChars(locs, "=-=")
	if len(got) != 3 {
		t.Fatalf("len(flattenToChars) = %d, want 3", len(got))
	}
	for i, loc := range got {
		if len(loc.Code) != 1 {
			t.Errorf("locs[%d].Code = %q, want a single character", i, loc.Code)
		}
	}
	if got[0].WordRef != 0 || got[1].WordRef != 0 || got[2].WordRef != 1 {
		t.Errorf("WordRefs = [%d %d %d], want [0 0 1]", got[0].WordRef, got[1].WordRef, got[2].WordRef)
	}
}

func TestCompressPathMergesSameWordRef(t *testing.T) {
	locs := []CodeLocation{
		{Code: "-", WordRef: 0},
		{Code: "=", WordRef: 0},
		{Code: "-", WordRef: 1},
	}
	got := compressPath(locs)
	if len(got) != 2 {
		t.Fatalf("len(compressPath) = %d, want 2", len(got))
	}
	if got[0].Code != "-=" {
		t.Errorf("merged code = %q, want \"-=\"", got[0].Code)
	}
	if got[1].Code != "-" {
		t.Errorf("second group code = %q, want \"-\"", got[1].Code)
	}
}
