// Package aligner implements the standalone Levenshtein-with-wildcards
// alignment used both for fuzzy meter scoring and for producing
// corrective edit scripts (spec.md §4.6). It has no dependency on the
// catalog or the scansion trees — it operates purely on two strings.
package aligner

import "fmt"

// OpKind is the kind of edit operation in an EditOp script.
type OpKind int

const (
	OpMatch OpKind = iota
	OpSubstitute
	OpInsert
	OpDelete
)

func (k OpKind) String() string {
	switch k {
	case OpMatch:
		return "match"
	case OpSubstitute:
		return "substitute"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// EditOp is one step of the edit script aligning a pattern to a code.
// PatternPos is -1 for a delete (no pattern character is consumed).
// CodePos is never a sentinel: a delete's CodePos is the consumed code
// index, and an insert's CodePos is the code index it's inserted
// before, so every op can still be anchored against the code string
// (leverageOf and callers rendering the edit script rely on this).
type EditOp struct {
	Op          OpKind
	PatternPos  int
	CodePos     int
	PatternChar byte // 0 if not applicable
	CodeChar    byte // 0 if not applicable
}

// Leverage is a maximal contiguous code range, exclusive end, that is
// already "matched" against the pattern — i.e. covered by OpMatch ops.
type Leverage struct {
	Start, End int
}

// MatchChar reports whether pattern character p and code character c
// match at zero cost under the wildcard rules (spec.md §4.6):
//   - exact equality
//   - c == 'x' matches any p except '~'
//   - p == '~' matches c == '-'
func MatchChar(p, c byte) bool {
	if p == c || (c == 'x' && p != '~') {
		return true
	}
	if p == '~' && c == '-' {
		return true
	}
	return false
}

// Align computes the minimum edit distance between pattern and code
// under the wildcard match rules, returning the distance, the edit
// script, and the derived leverage ranges. Backtracking breaks ties
// diagonal > up > left, matching the source aligner exactly so that
// edit scripts are deterministic.
//
// Align never fails: degenerate inputs (empty strings) simply produce
// an all-insert or all-delete script, per spec.md §7.
func Align(pattern, code string) (int, []EditOp, []Leverage) {
	m, n := len(pattern), len(code)

	d := make([][]int, m+1)
	// move/kind per cell: 0=none (row/column 0), 1=diag-match, 2=diag-sub, 3=up-ins, 4=left-del
	bp := make([][]int8, m+1)
	for i := range d {
		d[i] = make([]int, n+1)
		bp[i] = make([]int8, n+1)
	}
	for i := 0; i <= m; i++ {
		d[i][0] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j] = j
	}

	const (
		bpNone = iota
		bpDiagMatch
		bpDiagSub
		bpUpIns
		bpLeftDel
	)

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			pc, cc := pattern[i-1], code[j-1]
			if MatchChar(pc, cc) {
				d[i][j] = d[i-1][j-1]
				bp[i][j] = bpDiagMatch
				continue
			}
			diag := d[i-1][j-1] + 1
			up := d[i-1][j] + 1
			left := d[i][j-1] + 1

			// Tie-break order: diagonal(substitute) > up(insert) > left(delete).
			best := diag
			kind := int8(bpDiagSub)
			if up < best {
				best = up
				kind = bpUpIns
			}
			if left < best {
				best = left
				kind = bpLeftDel
			}
			d[i][j] = best
			bp[i][j] = kind
		}
	}

	var rev []EditOp
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case j == 0:
			rev = append(rev, EditOp{Op: OpInsert, PatternPos: i - 1, CodePos: 0, PatternChar: pattern[i-1]})
			i--
		case i == 0:
			rev = append(rev, EditOp{Op: OpDelete, PatternPos: -1, CodePos: j - 1, CodeChar: code[j-1]})
			j--
		default:
			switch bp[i][j] {
			case bpDiagMatch:
				rev = append(rev, EditOp{Op: OpMatch, PatternPos: i - 1, CodePos: j - 1, PatternChar: pattern[i-1], CodeChar: code[j-1]})
				i--
				j--
			case bpDiagSub:
				rev = append(rev, EditOp{Op: OpSubstitute, PatternPos: i - 1, CodePos: j - 1, PatternChar: pattern[i-1], CodeChar: code[j-1]})
				i--
				j--
			case bpUpIns:
				rev = append(rev, EditOp{Op: OpInsert, PatternPos: i - 1, CodePos: j, PatternChar: pattern[i-1]})
				i--
			default: // bpLeftDel
				rev = append(rev, EditOp{Op: OpDelete, PatternPos: -1, CodePos: j - 1, CodeChar: code[j-1]})
				j--
			}
		}
	}

	ops := make([]EditOp, len(rev))
	for k, o := range rev {
		ops[len(rev)-1-k] = o
	}

	return d[m][n], ops, leverageOf(ops)
}

// leverageOf derives the maximal contiguous code ranges covered by
// match ops, sorted by (pattern pos, code pos) as the source does
// before merging adjacency.
func leverageOf(ops []EditOp) []Leverage {
	type pos struct{ pp, cp int }
	var matches []pos
	for _, o := range ops {
		if o.Op == OpMatch {
			matches = append(matches, pos{o.PatternPos, o.CodePos})
		}
	}
	if len(matches) == 0 {
		return nil
	}
	// ops are already produced in increasing (pattern,code) order by
	// construction, but sort defensively to match the source's explicit sort.
	for i := 1; i < len(matches); i++ {
		for k := i; k > 0 && less(matches[k], matches[k-1]); k-- {
			matches[k], matches[k-1] = matches[k-1], matches[k]
		}
	}

	var out []Leverage
	start, end := matches[0].cp, matches[0].cp+1
	for _, m := range matches[1:] {
		if m.cp == end {
			end = m.cp + 1
			continue
		}
		out = append(out, Leverage{start, end})
		start, end = m.cp, m.cp+1
	}
	out = append(out, Leverage{start, end})
	return out
}

func less(a, b struct{ pp, cp int }) bool {
	if a.pp != b.pp {
		return a.pp < b.pp
	}
	return a.cp < b.cp
}

// String renders an EditOp for debugging/log output.
func (o EditOp) String() string {
	pc, cc := "·", "·"
	if o.PatternChar != 0 {
		pc = string(o.PatternChar)
	}
	if o.CodeChar != 0 {
		cc = string(o.CodeChar)
	}
	return fmt.Sprintf("%s(pattern[%d]=%s, code[%d]=%s)", o.Op, o.PatternPos, pc, o.CodePos, cc)
}
