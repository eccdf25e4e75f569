package aligner

import "testing"

func TestMatchChar(t *testing.T) {
	cases := []struct {
		p, c byte
		want bool
	}{
		{'-', '-', true},
		{'=', '=', true},
		{'-', '=', false},
		{'-', 'x', true},
		{'=', 'x', true},
		{'~', 'x', false},
		{'~', '-', true},
		{'~', '=', false},
	}
	for _, tc := range cases {
		if got := MatchChar(tc.p, tc.c); got != tc.want {
			t.Errorf("MatchChar(%q,%q) = %v, want %v", tc.p, tc.c, got, tc.want)
		}
	}
}

func TestAlignIdentical(t *testing.T) {
	distance, ops, leverage := Align("-=-=", "-=-=")
	if distance != 0 {
		t.Fatalf("distance = %d, want 0", distance)
	}
	for _, op := range ops {
		if op.Op != OpMatch {
			t.Errorf("expected every op to match on identical strings, got %v", op)
		}
	}
	if len(leverage) != 1 || leverage[0] != (Leverage{0, 4}) {
		t.Errorf("leverage = %v, want [{0 4}]", leverage)
	}
}

func TestAlignSingleSubstitution(t *testing.T) {
	distance, ops, _ := Align("-=-=", "-===")
	if distance != 1 {
		t.Fatalf("distance = %d, want 1", distance)
	}
	foundSub := false
	for _, op := range ops {
		if op.Op == OpSubstitute {
			foundSub = true
		}
	}
	if !foundSub {
		t.Errorf("expected a substitute op, got %v", ops)
	}
}

func TestAlignWildcard(t *testing.T) {
	// 'x' in the code matches any pattern char except '~'; a fully
	// wildcarded code of the right length should align at zero cost.
	distance, _, _ := Align("-=-=", "xxxx")
	if distance != 0 {
		t.Fatalf("distance = %d, want 0 (x matches any non-~ pattern char)", distance)
	}
}

func TestAlignTildeWildcard(t *testing.T) {
	// '~' in the pattern matches only '-' in the code, and 'x' in the
	// code never matches a '~' pattern position.
	distance, _, _ := Align("~", "-")
	if distance != 0 {
		t.Fatalf("Align(~, -) distance = %d, want 0", distance)
	}
	distance, _, _ = Align("~", "x")
	if distance != 1 {
		t.Fatalf("Align(~, x) distance = %d, want 1 (x never matches ~)", distance)
	}
}

func TestAlignEmptyInputs(t *testing.T) {
	distance, ops, leverage := Align("", "")
	if distance != 0 || len(ops) != 0 || leverage != nil {
		t.Errorf("Align(\"\",\"\") = (%d,%v,%v), want (0,[],nil)", distance, ops, leverage)
	}

	distance, ops, _ = Align("-=-", "")
	if distance != 3 {
		t.Fatalf("Align(-=-,\"\") distance = %d, want 3", distance)
	}
	for _, op := range ops {
		if op.Op != OpInsert {
			t.Errorf("expected only insert ops deleting against an empty code, got %v", op)
		}
	}
}

func TestAlignDeterministicTieBreak(t *testing.T) {
	// Run twice to confirm the backtrack is deterministic, not just
	// producing *a* minimal script.
	_, ops1, _ := Align("-=", "=-")
	_, ops2, _ := Align("-=", "=-")
	if len(ops1) != len(ops2) {
		t.Fatalf("non-deterministic edit script length: %d vs %d", len(ops1), len(ops2))
	}
	for i := range ops1 {
		if ops1[i] != ops2[i] {
			t.Fatalf("non-deterministic edit script at %d: %v vs %v", i, ops1[i], ops2[i])
		}
	}
}

func TestLeverageCoversAllMatches(t *testing.T) {
	_, ops, leverage := Align("-=-=-", "-=x=-")
	covered := make(map[int]bool)
	for _, l := range leverage {
		for i := l.Start; i < l.End; i++ {
			covered[i] = true
		}
	}
	for _, op := range ops {
		if op.Op == OpMatch && !covered[op.CodePos] {
			t.Errorf("match at code pos %d not covered by any leverage range %v", op.CodePos, leverage)
		}
	}
}
