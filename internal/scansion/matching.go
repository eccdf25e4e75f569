package scansion

import (
	"strings"

	"github.com/tariquesani/aruuz-nigar/internal/aligner"
)

// meterVariations holds the four pattern variations of spec.md §4.1
// plus the caesura positions of the original (slash-stripped) pattern,
// measured in real (non-'+') character count so that "cumulative code
// length equals p" (§4.1) can be tested directly against path lengths.
type meterVariations struct {
	// v[0] = strip('+')
	// v[1] = strip('+') + '~'
	// v[2] = replace('+','~') + '~'
	// v[3] = replace('+','~')
	v       [4]string
	caesura []int
}

// trailingTolerant reports whether variation index i (0-based) is one
// of the two trailing-tolerance variants (spec variations 2 and 3,
// i.e. index 1 and 2) that require the candidate code to end in '-'.
func trailingTolerant(i int) bool { return i == 1 || i == 2 }

func computeVariations(pattern string) meterVariations {
	stripped := strings.ReplaceAll(pattern, "/", "")

	var caesura []int
	real := 0
	for i := 0; i < len(stripped); i++ {
		if stripped[i] == '+' {
			caesura = append(caesura, real)
		} else {
			real++
		}
	}

	v0 := strings.ReplaceAll(stripped, "+", "")
	v3 := strings.ReplaceAll(stripped, "+", "~")

	return meterVariations{
		v:       [4]string{v0, v0 + "~", v3 + "~", v3},
		caesura: caesura,
	}
}

// matchesVariation tests P(M, T, c) from spec.md §4.1's is_match
// contract for one variation: overlong-pattern rejection, per-position
// wildcard matching, trailing-tolerance enforcement, and the caesura
// word-boundary check against the caesura positions of the original
// pattern.
func matchesVariation(variant string, variantIndex int, caesura []int, tentative, code string) bool {
	if len(variant) < len(tentative)+len(code) {
		return false
	}
	s := variant[len(tentative) : len(tentative)+len(code)]
	for i := 0; i < len(code); i++ {
		if !aligner.MatchChar(s[i], code[i]) {
			return false
		}
	}
	if trailingTolerant(variantIndex) {
		if len(code) == 0 || code[len(code)-1] != '-' {
			return false
		}
	}

	cumulative := len(tentative) + len(code)
	for _, p := range caesura {
		if cumulative == p {
			if len(code) >= 2 && code[len(code)-1] != '-' {
				return false
			}
			// len(code) == 1 is allowed unconditionally.
		}
	}
	return true
}

// isMatch implements spec.md §4.1's is_match(meter, tentative, word):
// true iff at least one of the four variations matches.
func isMatch(mv meterVariations, tentative, code string) bool {
	for i, variant := range mv.v {
		if matchesVariation(variant, i, mv.caesura, tentative, code) {
			return true
		}
	}
	return false
}

// checkCodeLength implements spec.md §4.3's check_code_length: require
// exact length equality with some variation AND a full match of that
// variation against the complete code F (tentative = "").
func checkCodeLength(mv meterVariations, full string) bool {
	for i, variant := range mv.v {
		if len(variant) != len(full) {
			continue
		}
		if matchesVariation(variant, i, mv.caesura, "", full) {
			return true
		}
	}
	return false
}

// levenshteinToMeter returns the minimum Levenshtein-with-wildcards
// distance between a full code and any of a meter's four variations,
// used by the fuzzy traversal (spec.md §4.3) and by the driver's
// line-to-meter fuzzy scoring (spec.md §4.6).
func levenshteinToMeter(mv meterVariations, full string) int {
	best := -1
	for _, variant := range mv.v {
		dist, _, _ := aligner.Align(variant, full)
		if best == -1 || dist < best {
			best = dist
		}
	}
	return best
}

// isPrefixOfVariation reports whether full is a prefix of some
// variation under the wildcard match predicate — the free-verse
// acceptance rule (spec.md §4.3).
func isPrefixOfVariation(mv meterVariations, full string) bool {
	for _, variant := range mv.v {
		if len(full) > len(variant) {
			continue
		}
		ok := true
		for i := 0; i < len(full); i++ {
			if !aligner.MatchChar(variant[i], full[i]) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}
