package vykaz

import (
	"sort"

	"github.com/tiendc/go-deepcopy"

	"vykaz/pkg/vykaz/detector"
	"vykaz/pkg/vykaz/models"
)

// DetectStructure infers the structure of a budget sheet and scores every
// catalog template against it. Results come back sorted by descending score;
// templates with equal scores keep catalog order.
//
// An unresolvable sheet selection fails with ErrSheetNotFound and an empty
// catalog with ErrEmptyCatalog. Finding no header row or code pattern is not
// an error; it yields low-confidence results with partial mappings.
func DetectStructure(wb *models.Workbook, catalog []models.ImportTemplate, opts Options) ([]models.DetectionResult, error) {
	if len(catalog) == 0 {
		return nil, &DetectionError{Sheet: opts.SheetName, Err: ErrEmptyCatalog}
	}
	grid, err := selectSheet(wb, opts.SheetName)
	if err != nil {
		return nil, err
	}

	scan := detector.Scan(grid)

	results := make([]models.DetectionResult, 0, len(catalog))
	for _, tpl := range catalog {
		res := detector.Score(scan, tpl)
		if !opts.ShouldIncludeReasons() {
			res.Reasons = nil
		}
		results = append(results, res)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

// selectSheet resolves the sheet reference; empty selects the first sheet.
func selectSheet(wb *models.Workbook, name string) (*models.SheetGrid, error) {
	if wb == nil || len(wb.Sheets) == 0 {
		return nil, &DetectionError{Sheet: name, Err: ErrSheetNotFound}
	}
	if name == "" {
		return &wb.Sheets[0], nil
	}
	grid, ok := wb.Sheet(name)
	if !ok {
		return nil, &DetectionError{Sheet: name, Err: ErrSheetNotFound}
	}
	return grid, nil
}

// ApplyDetectedConfig overlays a detection result onto a base import config:
// the detected first data row and column mappings replace base values, with
// detected columns winning on key conflicts. The base is deep copied first,
// so neither input is mutated and repeated application yields the same
// merged config.
func ApplyDetectedConfig(result models.DetectionResult, base models.ImportConfig) models.ImportConfig {
	var merged models.ImportConfig
	if err := deepcopy.Copy(&merged, &base); err != nil {
		merged = base
		merged.Columns = make(map[models.Field]int, len(base.Columns))
		for f, col := range base.Columns {
			merged.Columns[f] = col
		}
	}
	if merged.Columns == nil {
		merged.Columns = make(map[models.Field]int, len(result.Columns))
	}
	for f, col := range result.Columns {
		merged.Columns[f] = col
	}
	if result.FirstDataRow > 0 {
		merged.FirstDataRow = result.FirstDataRow
	}
	if merged.TemplateID == "" {
		merged.TemplateID = result.Template.ID
	}
	return merged
}
