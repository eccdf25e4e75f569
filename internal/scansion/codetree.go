package scansion

import (
	"sort"

	"github.com/tariquesani/aruuz-nigar/internal/catalog"
)

// codeNode is one node of the code tree (spec.md §4.2): a word's chosen
// scansion alternative, with one child per alternative of the next
// word. A node with no children belongs to the line's last word and is
// therefore a leaf.
type codeNode struct {
	loc      CodeLocation
	children []*codeNode
}

// buildTree enumerates the full cross product of per-word alternatives
// as a tree rooted at a sentinel root location (spec.md §4.2). The tree
// is always built in full by a plain recursive fan-out; pruning in the
// matching traversals only limits which subtrees they descend into.
func buildTree(line Line) *codeNode {
	root := &codeNode{loc: rootLocation()}
	var build func(node *codeNode, wordIdx int)
	build = func(node *codeNode, wordIdx int) {
		if wordIdx >= len(line.Words) {
			return
		}
		w := line.Words[wordIdx]
		for ci, code := range w.AllCodes() {
			child := &codeNode{loc: CodeLocation{
				Code:    code,
				WordRef: wordIdx,
				CodeRef: ci,
				Word:    w.Surface,
			}}
			node.children = append(node.children, child)
			build(child, wordIdx+1)
		}
	}
	build(root, 0)
	return root
}

func appendLoc(path ScanPath, loc CodeLocation) ScanPath {
	locs := make([]CodeLocation, len(path.Locations)+1)
	copy(locs, path.Locations)
	locs[len(locs)-1] = loc
	return ScanPath{Locations: locs}
}

func meterVariationsFor(cat *catalog.Catalog, meterIDs []int) map[int]meterVariations {
	out := make(map[int]meterVariations, len(meterIDs))
	for _, id := range meterIDs {
		m, ok := cat.MeterAt(id)
		if !ok {
			continue
		}
		out[id] = computeVariations(m.Pattern)
	}
	return out
}

func sortedIDs(live map[int]meterVariations) []int {
	out := make([]int, 0, len(live))
	for id := range live {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func pruneLive(live map[int]meterVariations, tentative, code string, accept func(mv meterVariations, tentative, code string) bool) map[int]meterVariations {
	out := make(map[int]meterVariations, len(live))
	for id, mv := range live {
		if accept(mv, tentative, code) {
			out[id] = mv
		}
	}
	return out
}

// ExactScan walks the code tree with online pruning (spec.md §4.2–§4.3):
// at every descent, a meter survives only if is_match holds for the
// word about to be appended; at each leaf, checkCodeLength is applied
// to the survivors to pick the ones whose full code matches one of the
// meter's four variations exactly. Every returned ScanPath carries the
// non-empty set of meters it satisfies.
func ExactScan(cat *catalog.Catalog, line Line, meterIDs []int) []ScanPath {
	root := buildTree(line)
	start := meterVariationsFor(cat, meterIDs)

	var results []ScanPath
	var walk func(node *codeNode, tentative string, path ScanPath, live map[int]meterVariations)
	walk = func(node *codeNode, tentative string, path ScanPath, live map[int]meterVariations) {
		if len(node.children) == 0 {
			survivors := make(map[int]meterVariations)
			for id, mv := range live {
				if checkCodeLength(mv, tentative) {
					survivors[id] = mv
				}
			}
			if len(survivors) == 0 {
				return
			}
			path.Meters = sortedIDs(survivors)
			results = append(results, path)
			return
		}
		for _, child := range node.children {
			next := pruneLive(live, tentative, child.loc.Code, isMatch)
			if len(next) == 0 {
				continue
			}
			walk(child, tentative+child.loc.Code, appendLoc(path, child.loc), next)
		}
	}
	walk(root, "", ScanPath{}, start)
	return results
}

// FreeVerseScan relaxes exact completion to prefix acceptance (spec.md
// §4.3): a meter survives a descent as long as the code accumulated so
// far remains a prefix of one of its four variations, and a leaf is
// accepted under the same test rather than requiring full-length
// equality.
func FreeVerseScan(cat *catalog.Catalog, line Line, meterIDs []int) []ScanPath {
	root := buildTree(line)
	start := meterVariationsFor(cat, meterIDs)

	prefixAccept := func(mv meterVariations, tentative, code string) bool {
		return isPrefixOfVariation(mv, tentative+code)
	}

	var results []ScanPath
	var walk func(node *codeNode, tentative string, path ScanPath, live map[int]meterVariations)
	walk = func(node *codeNode, tentative string, path ScanPath, live map[int]meterVariations) {
		if len(node.children) == 0 {
			if len(live) == 0 {
				return
			}
			path.Meters = sortedIDs(live)
			results = append(results, path)
			return
		}
		for _, child := range node.children {
			next := pruneLive(live, tentative, child.loc.Code, prefixAccept)
			if len(next) == 0 {
				continue
			}
			walk(child, tentative+child.loc.Code, appendLoc(path, child.loc), next)
		}
	}
	walk(root, "", ScanPath{}, start)
	return results
}

// collectLeafPaths enumerates every full root-to-leaf path with no
// pruning, for the fuzzy traversal, which scores each complete
// candidate code against every live meter rather than pruning mid-walk.
func collectLeafPaths(root *codeNode) []ScanPath {
	var results []ScanPath
	var walk func(node *codeNode, path ScanPath)
	walk = func(node *codeNode, path ScanPath) {
		if len(node.children) == 0 {
			results = append(results, path)
			return
		}
		for _, child := range node.children {
			walk(child, appendLoc(path, child.loc))
		}
	}
	walk(root, ScanPath{})
	return results
}

// FuzzyScan computes, for every full code produced by the line, the
// Levenshtein-with-wildcards distance to every requested meter's four
// variations, keeping those within errorParam (spec.md §4.3, §4.6).
// Unlike ExactScan/FreeVerseScan, fuzzy mode does no online pruning: a
// single substitution anywhere in the line must still be discoverable,
// so every leaf is scored against every meter.
func FuzzyScan(cat *catalog.Catalog, line Line, meterIDs []int, errorParam int) []ScanPath {
	root := buildTree(line)
	mvs := meterVariationsFor(cat, meterIDs)
	leaves := collectLeafPaths(root)

	var results []ScanPath
	for _, leaf := range leaves {
		full := leaf.Code()
		scores := make(map[int]int)
		for id, mv := range mvs {
			dist := levenshteinToMeter(mv, full)
			if dist <= errorParam {
				scores[id] = dist
			}
		}
		if len(scores) == 0 {
			continue
		}
		ids := make([]int, 0, len(scores))
		for id := range scores {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		leaf.Meters = ids
		leaf.Scores = scores
		results = append(results, leaf)
	}
	return results
}
