package scansion

import (
	"strings"

	"github.com/tariquesani/aruuz-nigar/internal/catalog"
)

// hindiFootPatterns is the fixed priority list hindiFeet walks: at each
// position the first pattern in this order that prefixes the remaining
// code wins (spec.md §4.5). The list is not sorted by length; priority
// order is part of the algorithm.
var hindiFootPatterns = []string{"==", "=-", "-==", "-=-", "-=", "=", "==-", "-==-"}

// hindiExpectedFeet maps a special-meter offset (0..7, Original Hindi
// only) to the foot count hindiFeet must produce for the parse to be
// considered successful.
var hindiExpectedFeet = map[int]int{0: 8, 1: 6, 2: 8, 3: 4, 4: 4, 5: 3, 6: 6, 7: 2}

// hindiFeet greedily parses code into foot fragments using
// hindiFootPatterns, then checks the resulting foot count against the
// offset's expected count. Returns ok=false (caller falls back to the
// catalog's hardcoded foot string) if parsing stalls before the code is
// consumed or the count disagrees.
func hindiFeet(code string, offset int) (frags []string, ok bool) {
	i := 0
	for i < len(code) {
		matched := false
		for _, p := range hindiFootPatterns {
			if strings.HasPrefix(code[i:], p) {
				frags = append(frags, p)
				i += len(p)
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}
	expected, known := hindiExpectedFeet[offset]
	if !known || i != len(code) || len(frags) != expected {
		return nil, false
	}
	return frags, true
}

// zamzamaFeet walks code (after stripping one trailing '-') emitting
// "فَعِلن" for every "--=" triple and "فعْلن" for every "==" pair,
// stopping at the first unrecognized prefix (spec.md §4.5).
func zamzamaFeet(code string) []string {
	trimmed := strings.TrimSuffix(code, "-")
	var out []string
	i := 0
	for i < len(trimmed) {
		switch {
		case strings.HasPrefix(trimmed[i:], "--="):
			out = append(out, "فَعِلن")
			i += 3
		case strings.HasPrefix(trimmed[i:], "=="):
			out = append(out, "فعْلن")
			i += 2
		default:
			i = len(trimmed)
		}
		if i >= len(trimmed) {
			break
		}
	}
	return out
}

// FeetOf implements the engine API's feet_of (spec.md §6): given a
// code and the meter it was matched to, return the flat space-joined
// foot string and the structured per-foot breakdown.
func FeetOf(cat *catalog.Catalog, flatOrOffset int, kind catalog.MeterKind, code string) (string, []catalog.Foot) {
	switch kind {
	case catalog.KindRegular, catalog.KindRubai:
		m, ok := cat.MeterAt(flatOrOffset)
		if !ok {
			return "", nil
		}
		feet := cat.AfailList(m.Pattern)
		return joinFootNames(feet), feet
	case catalog.KindSpecial:
		special, ok := cat.SpecialAt(flatOrOffset)
		if !ok {
			return "", nil
		}
		if special.IsHindi {
			if frags, ok := hindiFeet(code, flatOrOffset); ok {
				feet := make([]catalog.Foot, 0, len(frags))
				for _, f := range frags {
					feet = append(feet, catalog.Foot{Pattern: f, Name: cat.FootName(f)})
				}
				return joinFootNames(feet), feet
			}
			return special.Afail, nil
		}
		names := zamzamaFeet(code)
		feet := make([]catalog.Foot, 0, len(names))
		for _, n := range names {
			feet = append(feet, catalog.Foot{Name: n})
		}
		return strings.Join(names, " "), feet
	default:
		return "", nil
	}
}

func joinFootNames(feet []catalog.Foot) string {
	names := make([]string, len(feet))
	for i, f := range feet {
		names[i] = f.Name
	}
	return strings.Join(names, " ")
}
