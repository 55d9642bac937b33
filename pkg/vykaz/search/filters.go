package search

import (
	"vykaz/pkg/vykaz/models"
)

// projectAllowed applies the project-id filter.
func projectAllowed(f models.SearchFilters, id string) bool {
	if len(f.ProjectIDs) == 0 {
		return true
	}
	for _, pid := range f.ProjectIDs {
		if pid == id {
			return true
		}
	}
	return false
}

// itemAllowed applies the item-level filters as a short-circuit AND.
// Absent filters impose no constraint.
func itemAllowed(f models.SearchFilters, it *models.Item) bool {
	grouped := it.Group != nil && *it.Group != ""
	if f.HasGroup != nil && *f.HasGroup != grouped {
		return false
	}
	if len(f.Groups) > 0 {
		if !grouped {
			return false
		}
		found := false
		for _, g := range f.Groups {
			if g == *it.Group {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.MinTotalPrice != nil && (it.TotalPrice == nil || *it.TotalPrice < *f.MinTotalPrice) {
		return false
	}
	if f.MaxTotalPrice != nil && (it.TotalPrice == nil || *it.TotalPrice > *f.MaxTotalPrice) {
		return false
	}
	return true
}
