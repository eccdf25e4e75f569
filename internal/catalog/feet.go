package catalog

import "strings"

// splitFootFragments splits a meter pattern on both '+' and '/', the
// two separators spec.md §4.1/§4.5 treat as purely structural: '/' is
// always presentational, '+' marks a caesura but is still a fragment
// boundary when decomposing into feet.
func splitFootFragments(pattern string) []string {
	var frags []string
	for _, part := range strings.Split(pattern, "+") {
		for _, frag := range strings.Split(part, "/") {
			if frag != "" {
				frags = append(frags, frag)
			}
		}
	}
	return frags
}

// Afail splits a regular/rubaʿi meter pattern into its feet and joins
// their traditional names with spaces (spec.md §4.5, ported from
// aruuz/meters.py:afail).
func (c *Catalog) Afail(pattern string) string {
	var b strings.Builder
	for _, frag := range splitFootFragments(pattern) {
		name := c.codeToFootName[frag]
		if name == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
	}
	return b.String()
}

// AfailList is Afail but returning structured Foot values instead of a
// joined string, for callers that need the per-foot code alongside its
// name (e.g. the HTTP feet-level response).
func (c *Catalog) AfailList(pattern string) []Foot {
	var out []Foot
	for _, frag := range splitFootFragments(pattern) {
		name := c.codeToFootName[frag]
		if name == "" {
			continue
		}
		out = append(out, Foot{Pattern: frag, Name: name})
	}
	return out
}

// AfailHindi returns the catalog's hardcoded foot-name string for a
// special meter given its traditional name — the fallback spec.md §4.5
// requires when hindi_feet's greedy parse fails to reconstruct the
// expected foot count.
func (c *Catalog) AfailHindi(meterName string) string {
	for _, s := range c.Special {
		if s.Name == meterName {
			return s.Afail
		}
	}
	return ""
}
