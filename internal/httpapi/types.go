package httpapi

import "github.com/tariquesani/aruuz-nigar/internal/catalog"

// ErrorResponse is the JSON body returned for every non-2xx response
// (spec.md §7 kind 1: input-shape errors get a structured message, no
// partial result).
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// IslahRequest is the body of POST /api/islah.
type IslahRequest struct {
	Text string `json:"text"`
}

// Syllable is one position of the full code, reported by index.
type Syllable struct {
	Index int    `json:"index"`
	Code  string `json:"code"`
}

// WordCode is one word's surface form paired with its selected code.
type WordCode struct {
	Word string `json:"word"`
	Code string `json:"code"`
}

// FootSegment is one foot's name plus the code range it covers.
type FootSegment struct {
	Foot  string `json:"foot"`
	Code  string `json:"code"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// MeterSummary is the shape shared by exact results and the fuzzy
// inferred_meter field.
type MeterSummary struct {
	MeterName  string `json:"meter_name"`
	MeterRoman string `json:"meter_roman,omitempty"`
	MeterID    int    `json:"meter_id"`
	Feet       string `json:"feet"`
	Score      *int   `json:"score,omitempty"`
	FullCode   string `json:"full_code,omitempty"`
}

// Summary is the human-readable verdict line included at every
// analysis level.
type Summary struct {
	Text            string `json:"text"`
	ConformsExactly bool   `json:"conforms_exactly"`
}

// AlignmentResponse carries the aligner's output for the closest-meter
// fallback of the meter analysis level.
type AlignmentResponse struct {
	Distance int                  `json:"distance"`
	EditOps  []EditOpResponse     `json:"edit_ops"`
	Leverage []LeverageResponse   `json:"leverage"`
}

// EditOpResponse is the JSON projection of aligner.EditOp.
type EditOpResponse struct {
	Op          string `json:"op"`
	PatternPos  int    `json:"pattern_pos"`
	CodePos     int    `json:"code_pos"`
	PatternChar string `json:"pattern_char,omitempty"`
	CodeChar    string `json:"code_char,omitempty"`
}

// LeverageResponse is the JSON projection of aligner.Leverage.
type LeverageResponse struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// IslahResponse is the graded POST /api/islah payload (spec.md §6).
// Fields are populated progressively as AnalysisLevel increases from
// "syllables" through "feet" to "meter".
type IslahResponse struct {
	AnalysisLevel  string              `json:"analysis_level"`
	OriginalLine   string              `json:"original_line"`
	Summary        Summary             `json:"summary"`
	FullCode       string              `json:"full_code"`
	Syllables      []Syllable          `json:"syllables"`
	WordBoundaries []int               `json:"word_boundaries"`
	WordCodes      []WordCode          `json:"word_codes"`
	FeetList       []FootSegment       `json:"feet_list,omitempty"`
	Results        []MeterSummary      `json:"results,omitempty"`
	InferredMeter  *MeterSummary       `json:"inferred_meter,omitempty"`
	MeterPattern   string              `json:"meter_pattern,omitempty"`
	Alignment      *AlignmentResponse  `json:"alignment,omitempty"`
}

// DominantRequest is the body of POST /api/meter/dominant.
type DominantRequest struct {
	Results []DominantResultItem `json:"results"`
}

// DominantResultItem is one line's already-resolved meter name and
// feet string, as produced by a prior /api/islah call.
type DominantResultItem struct {
	MeterName string `json:"meter_name"`
	Feet      string `json:"feet"`
}

// DominantResponse is the single dominant-meter object returned by
// POST /api/meter/dominant.
type DominantResponse struct {
	MeterName  string `json:"meter_name"`
	MeterRoman string `json:"meter_roman,omitempty"`
	MeterID    *int   `json:"id,omitempty"`
	Feet       string `json:"feet"`
	IsDominant bool   `json:"is_dominant"`
}

// firstIndexByName is a tiny seam so handlers.go doesn't need to know
// about catalog internals beyond name lookup.
func firstIndexByName(cat *catalog.Catalog, name string) (int, bool) {
	ids := cat.IndicesByName(name)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}
