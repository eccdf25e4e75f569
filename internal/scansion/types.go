// Package scansion is the prosodic matching engine: the code tree, the
// pattern tree and its state machines, the scansion driver, and
// dominance resolution (spec.md §4). Every exported function here is a
// pure, synchronous computation over caller-owned data — no I/O, no
// suspension points, no shared mutable state beyond the read-only
// Catalog (spec.md §5).
package scansion

import (
	"fmt"

	"github.com/tariquesani/aruuz-nigar/internal/catalog"
)

// Word is one word of a line, carrying every alternative scansion code
// the external transducer produced for it (spec.md §3). Alternatives
// are a set: duplicates across Codes and GraftCodes collapse to one.
type Word struct {
	Surface string
	// Codes are the word's primary alternative scansion codes.
	Codes []string
	// GraftCodes are additional alternatives representing cross-word
	// elision (a final vowel of the previous word fusing into this
	// one). Modeled identically to Codes for tree-building purposes.
	GraftCodes []string
}

// AllCodes returns the deduplicated union of Codes and GraftCodes, in
// the order primary codes then graft codes (spec.md §3 invariant: a
// code appearing in both sets contributes only one branch).
func (w Word) AllCodes() []string {
	seen := make(map[string]bool, len(w.Codes)+len(w.GraftCodes))
	out := make([]string, 0, len(w.Codes)+len(w.GraftCodes))
	for _, c := range w.Codes {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, c := range w.GraftCodes {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// Line owns the original input string and its ordered words.
type Line struct {
	Original string
	Words    []Word
}

// CodeLocation anchors one path segment to the word/alternative it came
// from (spec.md §3). The root sentinel has Code "root" and WordRef -1.
type CodeLocation struct {
	Code    string
	WordRef int
	CodeRef int
	Word    string
	Fuzzy   bool
}

func rootLocation() CodeLocation {
	return CodeLocation{Code: "root", WordRef: -1, CodeRef: -1}
}

// ScanPath is an ordered sequence of CodeLocations from the root, plus
// the set of candidate meter indices still alive on that path. In
// fuzzy mode each path also carries a per-meter score.
type ScanPath struct {
	Locations []CodeLocation
	Meters    []int
	Scores    map[int]int // fuzzy mode only; meter id -> Levenshtein distance
}

// Code concatenates every non-root location's code, yielding the
// candidate full-line code.
func (p ScanPath) Code() string {
	var b []byte
	for _, loc := range p.Locations {
		if loc.WordRef == -1 {
			continue
		}
		b = append(b, loc.Code...)
	}
	return string(b)
}

func (p ScanPath) clone() ScanPath {
	locs := make([]CodeLocation, len(p.Locations))
	copy(locs, p.Locations)
	meters := make([]int, len(p.Meters))
	copy(meters, p.Meters)
	return ScanPath{Locations: locs, Meters: meters}
}

// wordCodeSelection returns, per word, the code used on this path, in
// word order (word_taqti in spec.md §3). Locations sharing a word_ref
// (elision grafts) are concatenated under that word's slot.
func (p ScanPath) wordCodeSelection(numWords int) []string {
	out := make([]string, numWords)
	for _, loc := range p.Locations {
		if loc.WordRef < 0 || loc.WordRef >= numWords {
			continue
		}
		out[loc.WordRef] += loc.Code
	}
	return out
}

// Options configures a scan. At most one of Fuzzy/FreeVerse may be
// true. Meters is the explicit meter-id set to search; if nil, the
// driver defaults to catalog.AllSearchable(). The sentinels from
// spec.md §4.3 are handled by the driver, not embedded in this slice:
// IncludeSpecial triggers the special-meter pass, RubaiOnly restricts
// to the rubaʿi pool.
type Options struct {
	Fuzzy          bool
	FreeVerse      bool
	ErrorParam     int
	Meters         []int
	IncludeSpecial bool
	RubaiOnly      bool
}

// DefaultErrorParam is the default fuzzy-mode distance threshold
// (spec.md §4.3, §6).
const DefaultErrorParam = 6

func (o Options) resolveMeterSet(cat *catalog.Catalog) []int {
	if o.RubaiOnly {
		return cat.RubaiMeters()
	}
	if o.Meters != nil {
		return o.Meters
	}
	return cat.AllSearchable()
}

func (o Options) errorParam() int {
	if o.ErrorParam > 0 {
		return o.ErrorParam
	}
	return DefaultErrorParam
}

func (o Options) validate() error {
	if o.Fuzzy && o.FreeVerse {
		return fmt.Errorf("scansion: fuzzy and free_verse cannot both be true")
	}
	return nil
}

// LineScansionResult is the per-candidate exact-match record the
// driver emits (spec.md §3).
type LineScansionResult struct {
	Original   string
	Words      []string // word_taqti: per-word selected code
	Code       string
	MeterID    int
	MeterName  string
	RomanName  string
	FeetFlat   string
	Feet       []catalog.Foot
}

// LineScansionResultFuzzy is LineScansionResult plus the Levenshtein
// score against the matched meter.
type LineScansionResultFuzzy struct {
	LineScansionResult
	Score int
}
