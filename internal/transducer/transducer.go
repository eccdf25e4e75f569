// Package transducer fulfills the engine's external orthographic-to-code
// transducer contract (spec.md §1 "Explicitly out of scope"): given a
// line's surface words, produce each word's set of alternative
// scansion codes. The real transducer — Urdu-script syllabification —
// is intentionally not this package's concern; it accepts codes the
// caller already computed, or, for testing and the CLI's direct-code
// mode, parses a line already written directly in the {-,=,x} alphabet.
package transducer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"

	"github.com/tariquesani/aruuz-nigar/internal/scansion"
)

// WordCodes is one caller-supplied word: its surface form plus every
// alternative scansion code the (external, upstream) transducer
// produced for it.
type WordCodes struct {
	Surface    string
	Codes      []string
	GraftCodes []string
}

// FromCodes builds a scansion.Line from pre-computed word alternatives,
// the contract's primary entry point: the caller already ran its own
// transducer and just needs the result shaped into the engine's types.
func FromCodes(original string, words []WordCodes) scansion.Line {
	out := make([]scansion.Word, len(words))
	for i, w := range words {
		out[i] = scansion.Word{
			Surface:    w.Surface,
			Codes:      w.Codes,
			GraftCodes: w.GraftCodes,
		}
	}
	return scansion.Line{Original: original, Words: out}
}

// FromDirectCode parses a line already written in the code alphabet
// directly, one whitespace-separated code per word, each word
// contributing exactly one alternative. Used by the CLI's "scan"
// subcommand and by tests that want to exercise the engine without a
// real script-to-code step.
//
// Every code must use only the characters -, =, x; anything else is an
// input-shape error (spec.md §7 kind 1).
func FromDirectCode(line string) (scansion.Line, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return scansion.Line{}, fmt.Errorf("transducer: empty line")
	}
	words := make([]scansion.Word, 0, len(fields))
	for _, f := range fields {
		if err := validateCode(f); err != nil {
			return scansion.Line{}, fmt.Errorf("transducer: %w", err)
		}
		words = append(words, scansion.Word{Surface: f, Codes: []string{f}})
	}
	return scansion.Line{Original: line, Words: words}, nil
}

// SplitWords segments raw surface text into word tokens using UAX#29
// word-boundary rules, dropping pure whitespace/punctuation segments.
// This is the tokenization half of the external transducer contract:
// callers run their own script-to-code step per returned word, then
// hand the results to FromCodes.
func SplitWords(text string) []string {
	segments := words.SegmentAllString(text)
	out := make([]string, 0, len(segments))
	for _, s := range segments {
		if hasLetter(s) {
			out = append(out, s)
		}
	}
	return out
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func validateCode(code string) error {
	if code == "" {
		return fmt.Errorf("empty code token")
	}
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '-', '=', 'x':
		default:
			return fmt.Errorf("code %q has invalid character %q, want one of -=x", code, code[i])
		}
	}
	return nil
}
