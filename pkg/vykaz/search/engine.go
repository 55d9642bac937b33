package search

import (
	"errors"
	"fmt"
	"sort"

	"vykaz/pkg/vykaz/models"
)

// ErrItemIdentity indicates duplicate item ids in the supplied collection.
// Hits are matched back to their owning project by item identity, so a
// duplicate makes re-association ambiguous.
var ErrItemIdentity = errors.New("duplicate item id")

// fieldWeights fixes each field's contribution to the item score. Code is
// the strongest identity signal; unit and group are weak secondary cues.
// The weights sum to 1.0.
var fieldWeights = []struct {
	field  models.Field
	weight float64
}{
	{models.FieldCode, 0.40},
	{models.FieldDescription, 0.30},
	{models.FieldFullDescription, 0.20},
	{models.FieldUnit, 0.05},
	{models.FieldGroup, 0.05},
}

// Candidate is one filtered item together with its ownership context.
type Candidate struct {
	Item        *models.Item
	ProjectID   string
	ProjectName string
	SheetName   string
}

// Flatten walks the project → sheet → item tree and collects the items
// passing every active filter. Every walked item's id is checked for
// uniqueness regardless of filtering; a duplicate fails with
// ErrItemIdentity.
func Flatten(projects []models.Project, f models.SearchFilters) ([]Candidate, error) {
	seen := make(map[string]string)
	var out []Candidate
	for pi := range projects {
		p := &projects[pi]
		allowed := projectAllowed(f, p.ID)
		for si := range p.Sheets {
			s := &p.Sheets[si]
			for ii := range s.Items {
				it := &s.Items[ii]
				if prev, dup := seen[it.ID]; dup {
					return nil, fmt.Errorf("%w: item %q owned by projects %q and %q",
						ErrItemIdentity, it.ID, prev, p.ID)
				}
				seen[it.ID] = p.ID
				if !allowed || !itemAllowed(f, it) {
					continue
				}
				out = append(out, Candidate{
					Item:        it,
					ProjectID:   p.ID,
					ProjectName: p.Name,
					SheetName:   s.Name,
				})
			}
		}
	}
	return out, nil
}

// Match scores every candidate against the query and returns the hits
// sorted ascending by score (0 = perfect, 1 = worst). Equal scores keep
// candidate order.
func Match(cands []Candidate, query string) []models.SearchResultItem {
	clauses := parseQuery(query)
	var positive, excluded []clause
	for _, cl := range clauses {
		if cl.kind == clauseExclude {
			excluded = append(excluded, cl)
		} else {
			positive = append(positive, cl)
		}
	}
	if len(positive) == 0 {
		return nil
	}

	var results []models.SearchResultItem
	for i := range cands {
		score, matches, ok := scoreCandidate(&cands[i], positive, excluded)
		if !ok {
			continue
		}
		results = append(results, models.SearchResultItem{
			Item:        *cands[i].Item,
			ProjectID:   cands[i].ProjectID,
			ProjectName: cands[i].ProjectName,
			SheetName:   cands[i].SheetName,
			Score:       score,
			Matches:     matches,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})
	return results
}

// fieldText is one weighted item field prepared for matching.
type fieldText struct {
	field  models.Field
	weight float64
	text   string
	folded []rune
}

func candidateFields(it *models.Item) []fieldText {
	group := ""
	if it.Group != nil {
		group = *it.Group
	}
	fields := make([]fieldText, 0, len(fieldWeights))
	for _, fw := range fieldWeights {
		var text string
		switch fw.field {
		case models.FieldCode:
			text = it.Code
		case models.FieldDescription:
			text = it.Description
		case models.FieldFullDescription:
			text = it.FullDescription
		case models.FieldUnit:
			text = it.Unit
		case models.FieldGroup:
			text = group
		}
		fields = append(fields, fieldText{
			field:  fw.field,
			weight: fw.weight,
			text:   text,
			folded: []rune(models.FoldText(text)),
		})
	}
	return fields
}

// scoreCandidate evaluates one item. Any exclusion hit or any positive
// clause matching no field at all rejects the item. The item score is the
// weighted sum of per-field scores, where a field's score averages its
// clause scores and counts 1.0 for every clause that missed the field.
func scoreCandidate(c *Candidate, positive, excluded []clause) (float64, []models.FieldMatch, bool) {
	fields := candidateFields(c.Item)

	for _, cl := range excluded {
		for _, ft := range fields {
			if len(ft.folded) > 0 && containsRunes(cl.text, ft.folded) {
				return 0, nil, false
			}
		}
	}

	type fieldHits struct {
		spans     []models.Span
		bestSpan  models.Span
		bestScore float64
		scoreSum  float64
		matched   int
	}
	hits := make([]fieldHits, len(fields))

	for _, cl := range positive {
		clauseHit := false
		for fi := range fields {
			ft := &fields[fi]
			if len(ft.folded) == 0 {
				continue
			}
			var (
				cs    float64
				spans []models.Span
			)
			switch cl.kind {
			case clauseExact:
				spans = exactSpans(cl.text, ft.folded)
			default:
				if fs, span, ok := matchFuzzy(cl.text, ft.folded); ok {
					cs = fs
					spans = []models.Span{span}
				}
			}
			if len(spans) == 0 {
				continue
			}
			clauseHit = true
			h := &hits[fi]
			if h.matched == 0 || cs < h.bestScore {
				h.bestScore = cs
				h.bestSpan = spans[0]
			}
			h.spans = append(h.spans, spans...)
			h.scoreSum += cs
			h.matched++
		}
		if !clauseHit {
			return 0, nil, false
		}
	}

	score := 0.0
	var matches []models.FieldMatch
	for fi, ft := range fields {
		h := hits[fi]
		fieldScore := (h.scoreSum + float64(len(positive)-h.matched)) / float64(len(positive))
		score += ft.weight * fieldScore
		if h.matched > 0 {
			runes := []rune(ft.text)
			matches = append(matches, models.FieldMatch{
				Field: ft.field,
				Match: string(runes[h.bestSpan.Start:h.bestSpan.End]),
				Spans: h.spans,
			})
		}
	}
	return score, matches, true
}
