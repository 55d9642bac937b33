package vykaz

import (
	"strings"

	"vykaz/pkg/vykaz/models"
	"vykaz/pkg/vykaz/search"
)

// Search ranks line items across all projects against a free-text query.
// Filters reject candidates before matching; results come back sorted by
// ascending score (0 = perfect). A blank or whitespace-only query returns
// an empty result with no error. Duplicate item ids in the supplied
// collection fail with ErrItemIdentity.
func Search(projects []models.Project, query string, filters models.SearchFilters) ([]models.SearchResultItem, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	cands, err := search.Flatten(projects, filters)
	if err != nil {
		return nil, err
	}
	return search.Match(cands, query), nil
}

// Suggestions returns query suggestions: the distinct group labels present
// in the projects unioned with fixed domain seed terms, sorted.
func Suggestions(projects []models.Project) []string {
	return search.Suggestions(projects)
}

// ReconstructHighlights splits a field text into alternating matched and
// unmatched fragments according to the given match spans.
func ReconstructHighlights(text string, spans []models.Span) []models.Fragment {
	return search.ReconstructHighlights(text, spans)
}
