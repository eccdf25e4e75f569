// Package catalog holds the immutable meter and foot tables for the
// scansion engine: the fixed set of classical Urdu/Arabic meters, their
// pattern variations, and the foot-name dictionary. A Catalog is built
// once by BuildCatalog and shared by reference across every scan; it is
// never mutated after construction.
package catalog

import "fmt"

// MeterKind distinguishes the three disjoint meter pools. A flat index
// space (as used internally by the matching engine, mirroring the
// source implementation's "meter_base" arithmetic) can always be
// recovered from a Kind+Index pair and vice versa via Classify/Flatten,
// so callers that prefer a tagged sum type over sentinel integers never
// need to reach for the -1/-2 conventions themselves.
type MeterKind int

const (
	// KindRegular identifies one of the ~129 regular meter patterns.
	KindRegular MeterKind = iota
	// KindRubai identifies one of the 12 rubaʿi-pool meters.
	KindRubai
	// KindSpecial identifies one of the 11 Hindi/Zamzama special meters.
	KindSpecial
)

func (k MeterKind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindRubai:
		return "rubai"
	case KindSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// MeterUsage flags whether a pattern is the preferred spelling for its
// traditional name or a deprecated alternate. Per the open question in
// spec.md §9, deprecated meters are never excluded from search — the
// flag is carried through for callers that want to filter or rank by it.
type MeterUsage int

const (
	UsagePreferred MeterUsage = iota
	UsageDeprecated
)

// Meter is one catalog entry: a pattern over {-,=,/,+} plus its
// traditional name(s).
type Meter struct {
	Pattern    string
	Name       string
	RomanName  string
	Usage      MeterUsage
}

// Foot is a named fragment of a meter pattern (a rukn).
type Foot struct {
	Pattern string
	Name    string
}

// SpecialMeter describes one of the 11 Hindi/Zamzama meters, matched
// structurally (total morae + terminating shape) rather than by pattern
// equality. Offset is the special meter's position within the special
// pool (0..10), used to index hindiExpectedFeet and the DFA acceptance
// table in package scansion.
type SpecialMeter struct {
	Offset  int
	Name    string
	Afail   string
	IsHindi bool // true for offsets 0..7 (Original Hindi), false for 8..10 (Zamzama)
}

// Catalog is the immutable set of tables the engine matches against.
// Built once by BuildCatalog; safe for concurrent read-only use from
// every CodeTree/PatternTree traversal.
type Catalog struct {
	// Meters holds the regular pool followed immediately by the rubaʿi
	// pool, indexed exactly as the flat meter-id space described in
	// spec.md §3: Regular occupies [0, NumRegular), Rubai occupies
	// [NumRegular, NumRegular+NumRubai).
	Meters []Meter

	// Special holds the 11 Hindi/Zamzama meters, indexed
	// [0, NumSpecial); flat id = NumRegular+NumRubai+Offset.
	Special []SpecialMeter

	Feet []Foot

	NumRegular int
	NumRubai   int
	NumSpecial int

	codeToFootName map[string]string
	footNameToCode map[string]string
	nameToIndices  map[string][]int
}

// NumMeters returns NumRegular+NumRubai, the size of the pattern-matched
// (non-special) meter space.
func (c *Catalog) NumMeters() int { return c.NumRegular + c.NumRubai }

// SpecialBase is the flat index of special meter offset 0.
func (c *Catalog) SpecialBase() int { return c.NumRegular + c.NumRubai }

// Classify maps a flat meter index into its MeterKind and pool-local
// index, giving an explicit sum type over the sentinel-int convention
// described in spec.md §9 DESIGN NOTES.
func (c *Catalog) Classify(flat int) (MeterKind, int, error) {
	switch {
	case flat >= 0 && flat < c.NumRegular:
		return KindRegular, flat, nil
	case flat >= c.NumRegular && flat < c.NumRegular+c.NumRubai:
		return KindRubai, flat - c.NumRegular, nil
	case flat >= c.SpecialBase() && flat < c.SpecialBase()+c.NumSpecial:
		return KindSpecial, flat - c.SpecialBase(), nil
	default:
		return 0, 0, fmt.Errorf("catalog: flat meter index %d out of range", flat)
	}
}

// Flatten is the inverse of Classify.
func (c *Catalog) Flatten(kind MeterKind, index int) int {
	switch kind {
	case KindRubai:
		return c.NumRegular + index
	case KindSpecial:
		return c.SpecialBase() + index
	default:
		return index
	}
}

// MeterAt returns the Meter at a flat index within the regular+rubaʿi
// pool (not valid for special indices — use SpecialAt).
func (c *Catalog) MeterAt(flat int) (Meter, bool) {
	if flat < 0 || flat >= len(c.Meters) {
		return Meter{}, false
	}
	return c.Meters[flat], true
}

// SpecialAt returns the SpecialMeter at a given offset (0..NumSpecial-1).
func (c *Catalog) SpecialAt(offset int) (SpecialMeter, bool) {
	if offset < 0 || offset >= len(c.Special) {
		return SpecialMeter{}, false
	}
	return c.Special[offset], true
}

// FootName looks up the traditional name for an exact foot pattern
// fragment (e.g. "-===" -> "مفاعیلن"). Returns "" if not found.
func (c *Catalog) FootName(pattern string) string {
	return c.codeToFootName[pattern]
}

// FootCode is the inverse of FootName.
func (c *Catalog) FootCode(name string) string {
	return c.footNameToCode[name]
}

// IndicesByName returns every flat meter index (regular+rubaʿi pool)
// sharing the given traditional name. Several distinct patterns can
// share one name (e.g. multiple "رمل مسدس مخبون" variants), which is
// why dominance resolution (spec.md §4.7) groups by name rather than
// by index — ported from the source's meter_index() helper.
func (c *Catalog) IndicesByName(name string) []int {
	return c.nameToIndices[name]
}

// PreferredMeters returns flat indices of every regular+rubaʿi meter
// whose Usage is UsagePreferred, in catalog order.
func (c *Catalog) PreferredMeters() []int {
	out := make([]int, 0, len(c.Meters))
	for i, m := range c.Meters {
		if m.Usage == UsagePreferred {
			out = append(out, i)
		}
	}
	return out
}

// DeprecatedMeters returns flat indices of every regular+rubaʿi meter
// whose Usage is UsageDeprecated, in catalog order.
func (c *Catalog) DeprecatedMeters() []int {
	out := make([]int, 0, len(c.Meters))
	for i, m := range c.Meters {
		if m.Usage == UsageDeprecated {
			out = append(out, i)
		}
	}
	return out
}

// RubaiMeters returns flat indices of the rubaʿi pool only.
func (c *Catalog) RubaiMeters() []int {
	out := make([]int, 0, c.NumRubai)
	for i := c.NumRegular; i < c.NumRegular+c.NumRubai; i++ {
		out = append(out, i)
	}
	return out
}

// AllSearchable returns the default meter set find_meter uses when no
// explicit set is given: all preferred meters, then all deprecated,
// then all rubaʿi (spec.md §4.3). Special meters are never part of
// this slice — callers opt in via the -1 sentinel handled by the driver.
func (c *Catalog) AllSearchable() []int {
	out := make([]int, 0, c.NumMeters())
	for _, id := range append(c.PreferredMeters(), c.DeprecatedMeters()...) {
		if id < c.NumRegular {
			out = append(out, id)
		}
	}
	out = append(out, c.RubaiMeters()...)
	return out
}

// BuildCatalog loads the fixed tables. Catalog-integrity failures
// (length mismatches, a foot fragment with no dictionary entry) are
// programmer errors per spec.md §7 and panic at build time rather than
// being reported through the engine's error channel.
func BuildCatalog() *Catalog {
	c := &Catalog{
		Meters:     buildMeters(),
		Special:    buildSpecialMeters(),
		Feet:       buildFeet(),
		NumRegular: numRegularMeters,
		NumRubai:   numRubaiMeters,
		NumSpecial: numSpecialMeters,
	}

	if len(c.Meters) != c.NumRegular+c.NumRubai {
		panic(fmt.Sprintf("catalog: expected %d regular+rubai meters, built %d", c.NumRegular+c.NumRubai, len(c.Meters)))
	}
	if len(c.Special) != c.NumSpecial {
		panic(fmt.Sprintf("catalog: expected %d special meters, built %d", c.NumSpecial, len(c.Special)))
	}

	c.codeToFootName = make(map[string]string, len(c.Feet))
	c.footNameToCode = make(map[string]string, len(c.Feet))
	for _, f := range c.Feet {
		c.codeToFootName[f.Pattern] = f.Name
		c.footNameToCode[f.Name] = f.Pattern
	}

	c.nameToIndices = make(map[string][]int, len(c.Meters))
	for i, m := range c.Meters {
		c.nameToIndices[m.Name] = append(c.nameToIndices[m.Name], i)
	}

	// Catalog integrity: every foot fragment produced by splitting any
	// meter pattern on '/' and '+' must resolve in the foot-name
	// dictionary (spec.md §8 "Catalog integrity").
	for _, m := range c.Meters {
		for _, frag := range splitFootFragments(m.Pattern) {
			if _, ok := c.codeToFootName[frag]; !ok {
				panic(fmt.Sprintf("catalog: meter %q has foot fragment %q with no entry in the foot dictionary", m.Name, frag))
			}
		}
	}

	return c
}
