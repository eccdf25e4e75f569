package scansion

import (
	"github.com/tariquesani/aruuz-nigar/internal/catalog"
)

// ScanLine is the engine API's scan_line (spec.md §6): exact matching
// over the requested meter set. The -1/-2 sentinel conventions come
// from Options: RubaiOnly is folded into the meter set resolution done
// up front, and IncludeSpecial appends a separate special-meter pass.
func ScanLine(cat *catalog.Catalog, line Line, opts Options) ([]LineScansionResult, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if line.Original == "" {
		return nil, ErrEmptyLine
	}
	if len(line.Words) == 0 {
		return nil, ErrNoWords
	}

	meterIDs := opts.resolveMeterSet(cat)

	var paths []ScanPath
	if opts.FreeVerse {
		paths = FreeVerseScan(cat, line, meterIDs)
	} else {
		paths = ExactScan(cat, line, meterIDs)
	}
	if opts.IncludeSpecial {
		paths = append(paths, SpecialScan(cat, line)...)
	}

	return buildResults(cat, line, paths), nil
}

// ScanLineFuzzy is scan_line_fuzzy: fuzzy matching within
// opts.errorParam() of some variation of each candidate meter.
func ScanLineFuzzy(cat *catalog.Catalog, line Line, opts Options) ([]LineScansionResultFuzzy, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if line.Original == "" {
		return nil, ErrEmptyLine
	}
	if len(line.Words) == 0 {
		return nil, ErrNoWords
	}

	meterIDs := opts.resolveMeterSet(cat)
	paths := FuzzyScan(cat, line, meterIDs, opts.errorParam())

	var out []LineScansionResultFuzzy
	for _, p := range paths {
		locs := compressPath(p.Locations)
		words := wordTaqti(locs, len(line.Words))
		code := p.Code()
		for _, id := range p.Meters {
			kind, idx, err := cat.Classify(id)
			if err != nil {
				continue
			}
			flatOrOffset := id
			if kind == catalog.KindSpecial {
				flatOrOffset = idx
			}
			feetFlat, feet := FeetOf(cat, flatOrOffset, kind, code)
			name, roman := meterNames(cat, id)
			out = append(out, LineScansionResultFuzzy{
				LineScansionResult: LineScansionResult{
					Original:  line.Original,
					Words:     words,
					Code:      code,
					MeterID:   id,
					MeterName: name,
					RomanName: roman,
					FeetFlat:  feetFlat,
					Feet:      feet,
				},
				Score: p.Scores[id],
			})
		}
	}
	return out, nil
}

func wordTaqti(locs []CodeLocation, numWords int) []string {
	out := make([]string, numWords)
	for _, loc := range locs {
		if loc.WordRef < 0 || loc.WordRef >= numWords {
			continue
		}
		out[loc.WordRef] += loc.Code
	}
	return out
}

func meterNames(cat *catalog.Catalog, id int) (name, roman string) {
	kind, idx, err := cat.Classify(id)
	if err != nil {
		return "", ""
	}
	switch kind {
	case catalog.KindRegular, catalog.KindRubai:
		if m, ok := cat.MeterAt(id); ok {
			return m.Name, m.RomanName
		}
	case catalog.KindSpecial:
		if s, ok := cat.SpecialAt(idx); ok {
			return s.Name, ""
		}
	}
	return "", ""
}

// buildResults turns a set of (already-meter-filtered) ScanPaths into
// the exact-mode result records, compressing locations and computing
// per-meter feet for each.
func buildResults(cat *catalog.Catalog, line Line, paths []ScanPath) []LineScansionResult {
	var out []LineScansionResult
	for _, p := range paths {
		locs := compressPath(p.Locations)
		words := wordTaqti(locs, len(line.Words))
		code := p.Code()
		for _, id := range p.Meters {
			kind, idx, err := cat.Classify(id)
			if err != nil {
				continue
			}
			flatOrOffset := id
			if kind == catalog.KindSpecial {
				flatOrOffset = idx
			}
			feetFlat, feet := FeetOf(cat, flatOrOffset, kind, code)
			name, roman := meterNames(cat, id)
			out = append(out, LineScansionResult{
				Original:  line.Original,
				Words:     words,
				Code:      code,
				MeterID:   id,
				MeterName: name,
				RomanName: roman,
				FeetFlat:  feetFlat,
				Feet:      feet,
			})
		}
	}
	return out
}
