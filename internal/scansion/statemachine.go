package scansion

import "github.com/tariquesani/aruuz-nigar/internal/catalog"

// dfaRow holds the two outgoing transitions of one DFA state:
// index 0 is the '-' transition, index 1 is the '=' transition. -1
// means the transition is invalid and prunes the branch (spec.md §4.4).
type dfaRow [2]int

var originalHindiDFA = []dfaRow{
	{-1, 1},
	{2, 0},
	{3, -1},
	{-1, 1},
}

var zamzamaDFA = []dfaRow{
	{1, 3},
	{2, -1},
	{-1, -1},
	{-1, 0},
}

func charIdx(c byte) int {
	if c == '=' {
		return 1
	}
	return 0
}

// runDFA walks code through the given transition table from state 0.
// It reports false the moment a transition is -1 (the branch is dead);
// otherwise it reports the final state reached.
func runDFA(dfa []dfaRow, code string) (state int, ok bool) {
	state = 0
	for i := 0; i < len(code); i++ {
		next := dfa[state][charIdx(code[i])]
		if next == -1 {
			return 0, false
		}
		state = next
	}
	return state, true
}

// acceptanceRow is one offset's entry in the total-morae + terminator
// acceptance table of spec.md §4.4: the code is accepted at this offset
// if its total morae equals MEven and it ends in '=', or its total
// morae equals MOdd (MEven+1) and it ends in "-=".
type acceptanceRow struct {
	Offset int
	MEven  int
	MOdd   int
}

var originalHindiAcceptance = []acceptanceRow{
	{0, 30, 31},
	{1, 22, 23},
	{2, 32, 33},
	{3, 14, 15},
	{4, 16, 17},
	{5, 10, 11},
	{6, 24, 25},
	{7, 8, 9},
}

var zamzamaAcceptance = []acceptanceRow{
	{8, 32, 33},
	{9, 24, 25},
	{10, 16, 17},
}

func totalMorae(code string) int {
	m := 0
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '=':
			m += 2
		case '-':
			m++
		}
	}
	return m
}

// acceptingOffsets checks a structurally valid code (already vetted by
// runDFA) against an acceptance table, returning every offset it
// satisfies.
func acceptingOffsets(code string, table []acceptanceRow) []int {
	if len(code) == 0 {
		return nil
	}
	m := totalMorae(code)
	last1 := code[len(code)-1]
	var last2 string
	if len(code) >= 2 {
		last2 = code[len(code)-2:]
	}
	var out []int
	for _, row := range table {
		if m == row.MEven && last1 == '=' {
			out = append(out, row.Offset)
			continue
		}
		if m == row.MOdd && last2 == "-=" {
			out = append(out, row.Offset)
		}
	}
	return out
}

// expandPrefix expands every 'x' in s into both '-' and '=' branches,
// returning the cross product of concrete strings.
func expandPrefix(s string) []string {
	results := []string{""}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		opts := []byte{ch}
		if ch == 'x' {
			opts = []byte{'-', '='}
		}
		next := make([]string, 0, len(results)*len(opts))
		for _, r := range results {
			for _, o := range opts {
				next = append(next, r+string(o))
			}
		}
		results = next
	}
	return results
}

// expandPatternCodes implements the PatternTree's x-expansion rule
// (spec.md §4.4): every 'x' expands into two branches, except the very
// last character of the full code, which — if 'x' — is normalized
// deterministically to '=' rather than expanded.
func expandPatternCodes(full string) []string {
	if full == "" {
		return nil
	}
	n := len(full)
	prefix := full[:n-1]
	last := full[n-1]
	if last == 'x' {
		last = '='
	}
	var out []string
	for _, p := range expandPrefix(prefix) {
		out = append(out, p+string(last))
	}
	return out
}

// flattenToChars re-anchors an expanded, pure -/= code string to the
// per-word CodeLocations it came from, producing one CodeLocation per
// character (spec.md §4.4's "per-character granularity").
func flattenToChars(locs []CodeLocation, expanded string) []CodeLocation {
	out := make([]CodeLocation, 0, len(expanded))
	pos := 0
	for _, loc := range locs {
		for range loc.Code {
			out = append(out, CodeLocation{
				Code:    string(expanded[pos]),
				WordRef: loc.WordRef,
				CodeRef: loc.CodeRef,
				Word:    loc.Word,
			})
			pos++
		}
	}
	return out
}

// compressPath merges consecutive locations sharing a word_ref into
// one, concatenating their codes (spec.md §4.3's compression step,
// needed after the special-meter tree's per-character traversal).
func compressPath(locs []CodeLocation) []CodeLocation {
	var out []CodeLocation
	for _, loc := range locs {
		if n := len(out); n > 0 && out[n-1].WordRef == loc.WordRef {
			out[n-1].Code += loc.Code
			continue
		}
		out = append(out, loc)
	}
	return out
}

// SpecialScan runs the PatternTree/state-machine pass of spec.md §4.4
// over every CodeTree leaf code of line, emitting one ScanPath per
// (expansion, accepted offset) pair. The returned ScanPaths carry a
// single special-meter flat id in Meters.
func SpecialScan(cat *catalog.Catalog, line Line) []ScanPath {
	root := buildTree(line)
	leaves := collectLeafPaths(root)

	var results []ScanPath
	for _, leaf := range leaves {
		full := leaf.Code()
		for _, exp := range expandPatternCodes(full) {
			perChar := flattenToChars(leaf.Locations, exp)
			compressed := compressPath(perChar)

			if _, ok := runDFA(originalHindiDFA, exp); ok {
				for _, offset := range acceptingOffsets(exp, originalHindiAcceptance) {
					results = append(results, ScanPath{
						Locations: compressed,
						Meters:    []int{cat.SpecialBase() + offset},
					})
				}
			}
			if _, ok := runDFA(zamzamaDFA, exp); ok {
				for _, offset := range acceptingOffsets(exp, zamzamaAcceptance) {
					results = append(results, ScanPath{
						Locations: compressed,
						Meters:    []int{cat.SpecialBase() + offset},
					})
				}
			}
		}
	}
	return results
}
