// Package search ranks line items across projects against free-text queries
// using weighted approximate matching over multiple fields.
package search

import (
	"vykaz/pkg/vykaz/models"
)

const (
	// minFragmentLen suppresses noise matches on single letters: a matched
	// fragment shorter than this never counts.
	minFragmentLen = 2
	// editTolerance is the fuzziness budget as a fraction of the clause
	// length. A five-letter clause tolerates two edits.
	editTolerance = 0.4
)

// maxEdits returns the edit budget for a clause of the given rune length.
func maxEdits(clauseLen int) int {
	return int(editTolerance * float64(clauseLen))
}

// matchFuzzy aligns a clause against a field text and returns the clause
// score (edits divided by clause length, 0 = exact) and the matched span.
// Reports false when the best alignment exceeds the edit budget or no
// window of minFragmentLen or more exists.
func matchFuzzy(clause, text []rune) (float64, models.Span, bool) {
	edits, span, ok := bestSubstringMatch(clause, text)
	if !ok || edits > maxEdits(len(clause)) {
		return 0, models.Span{}, false
	}
	return float64(edits) / float64(len(clause)), span, true
}

// bestSubstringMatch finds the substring of text closest to clause under
// edit distance. Alignment is location-agnostic: text before and after the
// matched window costs nothing. Ties prefer the leftmost window.
func bestSubstringMatch(clause, text []rune) (int, models.Span, bool) {
	m, n := len(clause), len(text)
	if m == 0 || n == 0 {
		return 0, models.Span{}, false
	}

	// Row-wise edit distance where row 0 is free: D[0][j] = 0 lets the
	// match start at any text offset. Start positions travel with the
	// costs so the winning window is recoverable without a full matrix.
	prev := make([]int, n+1)
	cur := make([]int, n+1)
	prevStart := make([]int, n+1)
	curStart := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prevStart[j] = j
	}

	for i := 1; i <= m; i++ {
		cur[0] = i
		curStart[0] = 0
		for j := 1; j <= n; j++ {
			cost := 1
			if clause[i-1] == text[j-1] {
				cost = 0
			}
			best, start := prev[j-1]+cost, prevStart[j-1]
			if v := cur[j-1] + 1; v < best {
				best, start = v, curStart[j-1]
			}
			if v := prev[j] + 1; v < best {
				best, start = v, prevStart[j]
			}
			cur[j], curStart[j] = best, start
		}
		prev, cur = cur, prev
		prevStart, curStart = curStart, prevStart
	}

	bestEdits, bestJ := -1, -1
	for j := 1; j <= n; j++ {
		if j-prevStart[j] < minFragmentLen {
			continue
		}
		if bestEdits < 0 || prev[j] < bestEdits {
			bestEdits, bestJ = prev[j], j
		}
	}
	if bestJ < 0 {
		return 0, models.Span{}, false
	}
	return bestEdits, models.Span{Start: prevStart[bestJ], End: bestJ}, true
}

// exactSpans returns every non-overlapping occurrence of clause in text.
func exactSpans(clause, text []rune) []models.Span {
	if len(clause) == 0 {
		return nil
	}
	var spans []models.Span
	for i := 0; i+len(clause) <= len(text); {
		if runesEqual(text[i:i+len(clause)], clause) {
			spans = append(spans, models.Span{Start: i, End: i + len(clause)})
			i += len(clause)
			continue
		}
		i++
	}
	return spans
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// containsRunes reports whether text contains clause as an exact substring.
func containsRunes(clause, text []rune) bool {
	for i := 0; i+len(clause) <= len(text); i++ {
		if runesEqual(text[i:i+len(clause)], clause) {
			return true
		}
	}
	return len(clause) == 0
}
