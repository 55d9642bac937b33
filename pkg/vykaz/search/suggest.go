package search

import (
	"sort"

	"vykaz/pkg/vykaz/models"
)

// seedTerms are common construction-domain query starters, returned with
// the suggestions regardless of the data.
var seedTerms = []string{
	"beton",
	"elektroinstalace",
	"izolace",
	"malby",
	"omítky",
	"podlahy",
	"výkopy",
	"zdivo",
}

// Suggestions returns the distinct group labels present across all items,
// unioned with the fixed seed terms, sorted lexicographically.
func Suggestions(projects []models.Project) []string {
	set := make(map[string]struct{}, len(seedTerms))
	for _, t := range seedTerms {
		set[t] = struct{}{}
	}
	for pi := range projects {
		for si := range projects[pi].Sheets {
			items := projects[pi].Sheets[si].Items
			for ii := range items {
				if g := items[ii].Group; g != nil && *g != "" {
					set[*g] = struct{}{}
				}
			}
		}
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
