// Package httpapi is the thin HTTP collaborator spec.md §6 describes:
// two JSON endpoints over the scansion engine. It owns no scansion
// logic itself — every response field is assembled from
// internal/scansion and internal/catalog calls.
package httpapi

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/tariquesani/aruuz-nigar/internal/aligner"
	"github.com/tariquesani/aruuz-nigar/internal/cache"
	"github.com/tariquesani/aruuz-nigar/internal/catalog"
	"github.com/tariquesani/aruuz-nigar/internal/config"
	"github.com/tariquesani/aruuz-nigar/internal/scansion"
	"github.com/tariquesani/aruuz-nigar/internal/transducer"
)

var httpapiTracer = otel.Tracer("aruuz.httpapi")

// Handlers bundles the catalog and tuning knobs every handler needs.
//
// Thread Safety: safe for concurrent use; Catalog and Defaults are
// immutable after construction, Cache has its own concurrency control.
type Handlers struct {
	Catalog  *catalog.Catalog
	Defaults *config.EngineDefaults
	Cache    *cache.Cache
	Logger   *slog.Logger
}

// NewHandlers constructs a Handlers, defaulting Logger to slog.Default
// when nil.
func NewHandlers(cat *catalog.Catalog, defaults *config.EngineDefaults, c *cache.Cache, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{Catalog: cat, Defaults: defaults, Cache: c, Logger: logger}
}

func getOrCreateRequestID(c *gin.Context) string {
	if id := c.GetHeader("X-Request-ID"); id != "" {
		return id
	}
	return uuid.NewString()
}

// HandleIslah handles POST /api/islah.
//
// Description:
//
//	Accepts {text}, one poetic line per newline. The input line is
//	expected already in the engine's {-,=,x} code alphabet — the
//	orthographic-to-code transducer is an external collaborator
//	(spec.md §1) this service does not implement. Returns a graded
//	response: "syllables", "feet", or "meter", chosen by how much the
//	input actually contains (spec.md §6).
//
// Response:
//
//	200 OK: IslahResponse
//	400 Bad Request: missing/empty text, or a code token with an
//	invalid character
func (h *Handlers) HandleIslah(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	ctx, span := httpapiTracer.Start(c.Request.Context(), "httpapi.HandleIslah")
	c.Request = c.Request.WithContext(ctx)
	span.SetAttributes(attribute.String("request_id", requestID))
	defer span.End()

	logger := h.Logger.With("request_id", requestID, "handler", "HandleIslah")

	var req IslahRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body: " + err.Error(), Code: "BAD_REQUEST"})
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "please provide at least one line of poetry", Code: "EMPTY_TEXT"})
		return
	}

	rawLines := strings.Split(text, "\n")
	var lines []string
	for _, l := range rawLines {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	if len(lines) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "please provide at least one line of poetry", Code: "EMPTY_TEXT"})
		return
	}

	lineText := lines[0]
	hasMultipleLines := len(lines) > 1

	line, err := transducer.FromDirectCode(lineText)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "BAD_CODE"})
		return
	}

	resp := h.buildIslahResponse(lineText, line, hasMultipleLines)
	logger.Info("islah processed", "analysis_level", resp.AnalysisLevel, "num_words", len(line.Words))
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) buildIslahResponse(lineText string, line scansion.Line, hasMultipleLines bool) IslahResponse {
	opts := scansion.Options{ErrorParam: h.Defaults.ErrorParam}
	exact, _ := scansion.ScanLine(h.Catalog, line, opts)

	var wordTaqti []string
	if len(exact) > 0 {
		wordTaqti = exact[0].Words
	} else {
		wordTaqti = make([]string, len(line.Words))
		for i, w := range line.Words {
			if len(w.Codes) > 0 {
				wordTaqti[i] = w.Codes[0]
			}
		}
	}
	fullCode := strings.Join(wordTaqti, "")
	numSyllables := len(fullCode)
	numWords := len(line.Words)

	wordCodes := make([]WordCode, len(line.Words))
	for i, w := range line.Words {
		code := ""
		if i < len(wordTaqti) {
			code = wordTaqti[i]
		}
		wordCodes[i] = WordCode{Word: w.Surface, Code: code}
	}

	thr := h.Defaults.AnalysisLevels
	syllablesOK := numWords >= thr.MinWordsForSyllables || numSyllables >= thr.MinSyllablesForSyllable

	var footSegments []FootSegment
	if fullCode != "" {
		if len(exact) > 0 {
			primary := exact[0]
			_, feet := h.feetFor(primary.MeterID, fullCode, primary.FeetFlat, primary.Feet)
			start := 0
			for _, f := range feet {
				end := start + len(f.Pattern)
				if end > len(fullCode) {
					end = len(fullCode)
				}
				footSegments = append(footSegments, FootSegment{Foot: f.Name, Code: fullCode[start:end], Start: start, End: end})
				start = end
			}
		}
	}
	numFeet := len(footSegments)
	feetOK := numSyllables >= thr.MinSyllablesForFeet && numFeet >= thr.MinFeetForFeet
	meterOK := numFeet >= thr.MinFeetForMeter || hasMultipleLines

	syllables := make([]Syllable, len(fullCode))
	for i := range fullCode {
		syllables[i] = Syllable{Index: i, Code: string(fullCode[i])}
	}

	resp := IslahResponse{
		OriginalLine:   lineText,
		FullCode:       fullCode,
		Syllables:      syllables,
		WordBoundaries: wordBoundaries(wordTaqti),
		WordCodes:      wordCodes,
	}

	if !syllablesOK {
		resp.AnalysisLevel = "syllables"
		resp.Summary = Summary{Text: "Insufficient input for scansion (need at least one word or two syllables).", ConformsExactly: false}
		resp.Syllables = nil
		return resp
	}

	switch {
	case meterOK:
		resp.AnalysisLevel = "meter"
	case feetOK:
		resp.AnalysisLevel = "feet"
	default:
		resp.AnalysisLevel = "syllables"
	}

	if feetOK {
		resp.FeetList = footSegments
	}

	if !meterOK {
		resp.Summary = Summary{Text: "Syllables and feet only; add more text (≥3 feet) or multiple lines for meter.", ConformsExactly: false}
		return resp
	}

	if len(exact) > 0 {
		resp.Summary = Summary{Text: "Line conforms exactly to one or more classical meters.", ConformsExactly: true}
		resp.Results = make([]MeterSummary, len(exact))
		for i, r := range exact {
			resp.Results[i] = MeterSummary{MeterName: r.MeterName, MeterRoman: r.RomanName, MeterID: r.MeterID, Feet: r.FeetFlat}
		}
		if m, ok := h.Catalog.MeterAt(exact[0].MeterID); ok {
			resp.MeterPattern = strings.ReplaceAll(m.Pattern, "/", "")
		}
		return resp
	}

	fuzzyOpts := opts
	fuzzy, _ := scansion.ScanLineFuzzy(h.Catalog, line, fuzzyOpts)
	if len(fuzzy) == 0 {
		resp.Summary = Summary{Text: "No exact meter match and no fuzzy match could be inferred.", ConformsExactly: false}
		return resp
	}

	best := fuzzy[0]
	for _, f := range fuzzy[1:] {
		if f.Score < best.Score {
			best = f
		}
	}
	score := best.Score
	resp.InferredMeter = &MeterSummary{MeterName: best.MeterName, MeterRoman: best.RomanName, MeterID: best.MeterID, Feet: best.FeetFlat, Score: &score}

	m, ok := h.Catalog.MeterAt(best.MeterID)
	if !ok {
		resp.Summary = Summary{Text: "Closest match is a special meter; syllabic alignment not available.", ConformsExactly: false}
		return resp
	}
	pattern := strings.ReplaceAll(m.Pattern, "/", "")
	distance, ops, leverage := aligner.Align(pattern, fullCode)
	resp.Summary = Summary{Text: "No exact meter match; inferred closest match found.", ConformsExactly: false}
	resp.MeterPattern = pattern
	resp.Alignment = &AlignmentResponse{Distance: distance, EditOps: toEditOpResponses(ops), Leverage: toLeverageResponses(leverage)}
	return resp
}

// feetFor returns the foot breakdown for a (meterID, code) pair,
// consulting h.Cache first and populating it on a miss. FeetOf's
// decomposition is pure (spec.md §4.5) but otherwise gets recomputed
// on every repeated request for the same meter/code pair; this is the
// read-through memoization layer internal/cache exists for.
func (h *Handlers) feetFor(meterID int, code, flat string, feet []catalog.Foot) (string, []catalog.Foot) {
	if h.Cache == nil {
		return flat, feet
	}
	key := cache.FeetKey(meterID, code)
	if cached, ok := h.Cache.GetFeet(key); ok {
		names := strings.Fields(cached)
		out := make([]catalog.Foot, len(names))
		for i, n := range names {
			out[i] = catalog.Foot{Name: n, Pattern: h.Catalog.FootCode(n)}
		}
		return cached, out
	}
	h.Cache.PutFeet(key, flat)
	return flat, feet
}

func wordBoundaries(wordTaqti []string) []int {
	out := make([]int, 0, len(wordTaqti))
	pos := 0
	for _, w := range wordTaqti {
		pos += len(w)
		out = append(out, pos)
	}
	return out
}

func toEditOpResponses(ops []aligner.EditOp) []EditOpResponse {
	out := make([]EditOpResponse, len(ops))
	for i, o := range ops {
		r := EditOpResponse{Op: o.Op.String(), PatternPos: o.PatternPos, CodePos: o.CodePos}
		if o.PatternChar != 0 {
			r.PatternChar = string(o.PatternChar)
		}
		if o.CodeChar != 0 {
			r.CodeChar = string(o.CodeChar)
		}
		out[i] = r
	}
	return out
}

func toLeverageResponses(lev []aligner.Leverage) []LeverageResponse {
	out := make([]LeverageResponse, len(lev))
	for i, l := range lev {
		out[i] = LeverageResponse{Start: l.Start, End: l.End}
	}
	return out
}

// HandleMeterDominant handles POST /api/meter/dominant.
//
// Description:
//
//	Accepts {results: [{meter_name, feet}, ...]} — typically the
//	Results field from several prior /api/islah calls across a
//	couplet — and returns the single dominant meter (spec.md §4.7,
//	§6).
//
// Response:
//
//	200 OK: DominantResponse, or {} if results is empty or resolves to
//	nothing
//	400 Bad Request: malformed body
func (h *Handlers) HandleMeterDominant(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := h.Logger.With("request_id", requestID, "handler", "HandleMeterDominant")

	var req DominantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body: " + err.Error(), Code: "BAD_REQUEST"})
		return
	}
	if len(req.Results) == 0 {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	results := make([]scansion.LineScansionResult, 0, len(req.Results))
	for _, item := range req.Results {
		name := strings.TrimSpace(item.MeterName)
		feet := strings.TrimSpace(item.Feet)
		if name == "" || feet == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "every result needs meter_name and feet", Code: "BAD_REQUEST"})
			return
		}
		var feetList []catalog.Foot
		for _, n := range strings.Fields(feet) {
			feetList = append(feetList, catalog.Foot{Name: n, Pattern: h.Catalog.FootCode(n)})
		}
		results = append(results, scansion.LineScansionResult{MeterName: name, FeetFlat: feet, Feet: feetList})
	}

	dominant := scansion.ResolveDominant(h.Catalog, results)
	if len(dominant) == 0 {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	first := dominant[0]
	resp := DominantResponse{MeterName: first.MeterName, Feet: first.FeetFlat, IsDominant: true}
	if idx, ok := firstIndexByName(h.Catalog, first.MeterName); ok {
		resp.MeterID = &idx
		if m, ok := h.Catalog.MeterAt(idx); ok {
			resp.MeterRoman = m.RomanName
		}
	}
	logger.Info("dominant meter resolved", "meter_name", resp.MeterName)
	c.JSON(http.StatusOK, resp)
}
