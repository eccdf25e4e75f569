package scansion

import (
	"fmt"
	"math"

	"github.com/tariquesani/aruuz-nigar/internal/catalog"
)

func patternsOf(feet []catalog.Foot) []string {
	out := make([]string, len(feet))
	for i, f := range feet {
		out[i] = f.Pattern
	}
	return out
}

// orderedMatchCount is the greedy left-to-right common-prefix length of
// lineFeet against meterFeet: the first position where they disagree
// stops the count (spec.md §4.7).
func orderedMatchCount(lineFeet, meterFeet []string) int {
	n := len(lineFeet)
	if len(meterFeet) < n {
		n = len(meterFeet)
	}
	count := 0
	for i := 0; i < n; i++ {
		if lineFeet[i] != meterFeet[i] {
			break
		}
		count++
	}
	return count
}

// ResolveDominant implements the exact multi-line dominance pass
// (spec.md §4.7): every distinct meter name among results is scored by
// summing, over every result bearing that name, the best
// ordered_match_count against any catalog pattern sharing the name.
// The highest-scoring name wins (ties broken by first encounter);
// only results for the winning name are returned.
func ResolveDominant(cat *catalog.Catalog, results []LineScansionResult) []LineScansionResult {
	if len(results) == 0 {
		return nil
	}

	var order []string
	seen := make(map[string]bool)
	scores := make(map[string]int)

	for _, r := range results {
		if !seen[r.MeterName] {
			seen[r.MeterName] = true
			order = append(order, r.MeterName)
		}

		lineFeet := patternsOf(r.Feet)
		best := 0
		for _, idx := range cat.IndicesByName(r.MeterName) {
			m, ok := cat.MeterAt(idx)
			if !ok {
				continue
			}
			meterFeet := patternsOf(cat.AfailList(m.Pattern))
			if c := orderedMatchCount(lineFeet, meterFeet); c > best {
				best = c
			}
		}
		scores[r.MeterName] += best
	}

	winner := order[0]
	winnerScore := scores[winner]
	for _, name := range order[1:] {
		if scores[name] > winnerScore {
			winner = name
			winnerScore = scores[name]
		}
	}

	var out []LineScansionResult
	for _, r := range results {
		if r.MeterName == winner {
			out = append(out, r)
		}
	}
	return out
}

// fuzzyGroupKey returns the grouping key for one fuzzy result under a
// given meter id: regular meters group by id, rubaʿi and special
// meters group by name (spec.md §4.7).
func fuzzyGroupKey(cat *catalog.Catalog, r LineScansionResultFuzzy, id int) (string, bool) {
	kind, _, err := cat.Classify(id)
	if err != nil {
		return "", false
	}
	if kind == catalog.KindRegular {
		return fmt.Sprintf("id:%d", id), true
	}
	return "name:" + r.MeterName, true
}

// aggregateFuzzyScores implements the §4.7 aggregator:
// exp(mean(log(score+1 if score==0 else score))) - zero_count. Lower
// is better; zero-heavy meters sit strictly below zero-free meters of
// equal geometric mean.
func aggregateFuzzyScores(scores []int) float64 {
	if len(scores) == 0 {
		return math.Inf(1)
	}
	var sumLog float64
	zeroCount := 0
	for _, s := range scores {
		term := float64(s)
		if s == 0 {
			zeroCount++
			term = 1
		}
		sumLog += math.Log(term)
	}
	mean := sumLog / float64(len(scores))
	return math.Exp(mean) - float64(zeroCount)
}

// ResolveDominantFuzzy is the fuzzy analogue of ResolveDominant: group
// results by meter id (regular) or name (rubaʿi/special), aggregate
// each group's scores, and keep the group with the lowest aggregate.
func ResolveDominantFuzzy(cat *catalog.Catalog, results []LineScansionResultFuzzy) []LineScansionResultFuzzy {
	if len(results) == 0 {
		return nil
	}

	type group struct {
		key    string
		scores []int
	}
	var order []string
	groups := make(map[string]*group)

	addScore := func(key string, score int) {
		g, ok := groups[key]
		if !ok {
			g = &group{key: key}
			groups[key] = g
			order = append(order, key)
		}
		g.scores = append(g.scores, score)
	}

	for _, r := range results {
		key, ok := fuzzyGroupKey(cat, r, r.MeterID)
		if !ok {
			continue
		}
		addScore(key, r.Score)
	}

	if len(order) == 0 {
		return nil
	}

	winner := order[0]
	winnerAgg := aggregateFuzzyScores(groups[winner].scores)
	for _, key := range order[1:] {
		agg := aggregateFuzzyScores(groups[key].scores)
		if agg < winnerAgg {
			winner = key
			winnerAgg = agg
		}
	}

	var out []LineScansionResultFuzzy
	for _, r := range results {
		key, ok := fuzzyGroupKey(cat, r, r.MeterID)
		if ok && key == winner {
			out = append(out, r)
		}
	}
	return out
}
