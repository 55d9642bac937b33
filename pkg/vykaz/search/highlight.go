package search

import (
	"sort"

	"vykaz/pkg/vykaz/models"
)

// ReconstructHighlights splits text into alternating fragments covering the
// given spans. Spans may arrive unsorted and overlapping as produced by
// matching; they are sorted, clamped to the text bounds and merged first.
// Empty fragments are omitted, so an empty span list yields the whole text
// as a single non-matching fragment. Spans are rune offsets.
func ReconstructHighlights(text string, spans []models.Span) []models.Fragment {
	runes := []rune(text)
	var frags []models.Fragment
	cur := 0
	for _, sp := range normalizeSpans(spans, len(runes)) {
		if sp.Start > cur {
			frags = append(frags, models.Fragment{Text: string(runes[cur:sp.Start])})
		}
		frags = append(frags, models.Fragment{Text: string(runes[sp.Start:sp.End]), IsMatch: true})
		cur = sp.End
	}
	if cur < len(runes) {
		frags = append(frags, models.Fragment{Text: string(runes[cur:])})
	}
	return frags
}

// normalizeSpans sorts spans by start offset, clamps them to [0, n) and
// merges overlapping or touching ranges.
func normalizeSpans(spans []models.Span, n int) []models.Span {
	clamped := make([]models.Span, 0, len(spans))
	for _, sp := range spans {
		if sp.Start < 0 {
			sp.Start = 0
		}
		if sp.End > n {
			sp.End = n
		}
		if sp.End <= sp.Start {
			continue
		}
		clamped = append(clamped, sp)
	}
	sort.Slice(clamped, func(i, j int) bool {
		if clamped[i].Start != clamped[j].Start {
			return clamped[i].Start < clamped[j].Start
		}
		return clamped[i].End < clamped[j].End
	})

	var merged []models.Span
	for _, sp := range clamped {
		if len(merged) > 0 && sp.Start <= merged[len(merged)-1].End {
			if sp.End > merged[len(merged)-1].End {
				merged[len(merged)-1].End = sp.End
			}
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}
