// Package vykaz provides structure detection for budget spreadsheets and
// weighted fuzzy search over parsed line items.
package vykaz

// Options configures structure detection.
type Options struct {
	// SheetName selects the sheet to analyze; empty selects the first sheet.
	SheetName string
	// IncludeReasons specifies whether results carry scoring explanations.
	// If nil, defaults to true.
	IncludeReasons *bool
}

// DefaultOptions returns default detection options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldIncludeReasons returns whether results carry scoring explanations.
func (o Options) ShouldIncludeReasons() bool {
	if o.IncludeReasons != nil {
		return *o.IncludeReasons
	}
	return true
}
