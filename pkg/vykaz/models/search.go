package models

// Span is a half-open rune-index range [Start, End) within a field's text.
type Span struct {
	// Start is the inclusive start offset.
	Start int `json:"start"`
	// End is the exclusive end offset.
	End int `json:"end"`
}

// FieldMatch records where a query matched within one item field.
type FieldMatch struct {
	// Field is the matched logical field.
	Field Field `json:"field"`
	// Match is the matched substring of the field text.
	Match string `json:"match"`
	// Spans lists the matched ranges. Possibly unsorted and overlapping
	// as produced; ReconstructHighlights normalizes them.
	Spans []Span `json:"spans"`
}

// SearchResultItem is one ranked search hit. Transient, produced per query.
type SearchResultItem struct {
	// Item is the matched line item.
	Item Item `json:"item"`
	// ProjectID identifies the owning project.
	ProjectID string `json:"project_id"`
	// ProjectName is the owning project's display name.
	ProjectName string `json:"project_name"`
	// SheetName is the owning sheet's name.
	SheetName string `json:"sheet_name"`
	// Score ranks the hit: 0 is a perfect match, 1 the worst.
	Score float64 `json:"score"`
	// Matches lists per-field match details in field order.
	Matches []FieldMatch `json:"matches"`
}

// SearchFilters restricts the candidate set before matching. Zero-value
// fields impose no constraint.
type SearchFilters struct {
	// ProjectIDs limits results to the given projects.
	ProjectIDs []string `json:"project_ids,omitempty"`
	// Groups limits results to items carrying one of the given group labels.
	Groups []string `json:"groups,omitempty"`
	// MinTotalPrice is the inclusive lower total-price bound.
	MinTotalPrice *float64 `json:"min_total_price,omitempty"`
	// MaxTotalPrice is the inclusive upper total-price bound.
	MaxTotalPrice *float64 `json:"max_total_price,omitempty"`
	// HasGroup, when set, requires items to have (true) or lack (false)
	// a group label.
	HasGroup *bool `json:"has_group,omitempty"`
}

// Fragment is one segment of a highlighted text.
type Fragment struct {
	// Text is the fragment content.
	Text string `json:"text"`
	// IsMatch marks fragments covered by a match span.
	IsMatch bool `json:"is_match"`
}
