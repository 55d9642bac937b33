package detector

import (
	"fmt"
	"sort"
	"strings"

	"vykaz/pkg/vykaz/models"
)

const (
	// headerScanRows bounds the header search to the leading rows. Header
	// rows in this domain always sit near the top of the sheet; rows
	// beyond the bound are never considered headers.
	headerScanRows = 20
	// headerScoreMin is the exclusive threshold a row must beat to qualify
	// as a header row: at least three distinct fields recognized.
	headerScoreMin = 2

	fieldPoints        = 15
	patternBonusPoints = 10
	maxScore           = 100

	scoreHigh   = 75
	scoreMedium = 50
)

// ScanResult carries what one pass over the leading rows learned.
type ScanResult struct {
	// HeaderRow is the 1-based header row index, 0 when none was found.
	HeaderRow int
	// Headers maps column index to the lowercased header cell text.
	Headers map[int]string
	// FirstDataRow is the 1-based row where data starts (2 by default).
	FirstDataRow int
	// Pattern is the code convention inferred from the sample, or unknown.
	Pattern models.CodePattern
	// Sample is the code cell text the pattern was inferred from.
	Sample string
}

// Scan locates the header row, the first data row and the code pattern of a
// sheet grid in a single bounded pass. Finding nothing is not an error: the
// zero findings (no header, first data row 2, unknown pattern) still make a
// usable low-confidence result.
func Scan(grid *models.SheetGrid) ScanResult {
	res := ScanResult{
		Headers:      make(map[int]string),
		FirstDataRow: 2,
		Pattern:      models.PatternUnknown,
	}

	for _, row := range grid.Rows {
		if row.R > headerScanRows {
			break
		}
		if res.HeaderRow == 0 {
			if headerScore(row) > headerScoreMin {
				res.HeaderRow = row.R
				for _, col := range row.Columns() {
					res.Headers[col] = strings.ToLower(row.Text(col))
				}
				res.FirstDataRow = row.R + 1
			}
			continue
		}

		// First non-empty row after the header: sample the code cell,
		// preferring column 1, falling back to column 2. One sample is
		// sufficient.
		sample := row.Text(1)
		if sample == "" {
			sample = row.Text(2)
		}
		res.Sample = strings.TrimSpace(sample)
		res.Pattern = InferPattern(sample)
		break
	}

	return res
}

// headerScore counts distinct logical fields recognized in a row.
func headerScore(row models.CellRow) int {
	score := 0
	for _, fk := range headerKeywords {
		for _, col := range row.Columns() {
			if matchesField(models.FoldText(row.Text(col)), fk) {
				score++
				break
			}
		}
	}
	return score
}

// Score rates one template against a scan result. Each resolved field is
// worth 15 points; a code pattern matching the template's standard family
// adds 10. The total is clamped to [0,100].
func Score(scan ScanResult, tpl models.ImportTemplate) models.DetectionResult {
	reasons := make([]string, 0, len(headerKeywords)+2)
	if scan.HeaderRow > 0 {
		reasons = append(reasons, fmt.Sprintf("header row found at row %d", scan.HeaderRow))
	} else {
		reasons = append(reasons, fmt.Sprintf("no header row found in the first %d rows", headerScanRows))
	}

	columns, fieldReasons := resolveColumns(scan.Headers)
	reasons = append(reasons, fieldReasons...)

	score := fieldPoints * len(columns)
	if scan.Pattern != models.PatternUnknown {
		switch {
		case string(scan.Pattern) == tpl.StandardType:
			score += patternBonusPoints
			reasons = append(reasons, fmt.Sprintf("code sample %q follows the %s convention", scan.Sample, scan.Pattern))
		case tpl.StandardType == "":
			reasons = append(reasons, fmt.Sprintf("code sample %q follows %s, template declares no convention", scan.Sample, scan.Pattern))
		default:
			reasons = append(reasons, fmt.Sprintf("code sample %q follows %s, template expects %s", scan.Sample, scan.Pattern, tpl.StandardType))
		}
	}
	if score > maxScore {
		score = maxScore
	}

	return models.DetectionResult{
		Template:     tpl,
		Score:        score,
		Confidence:   confidence(score),
		Columns:      columns,
		FirstDataRow: scan.FirstDataRow,
		Pattern:      scan.Pattern,
		Reasons:      reasons,
	}
}

// resolveColumns maps logical fields to header columns by keyword
// containment. Fields resolve in declared order; each takes its first
// matching unclaimed column in ascending column order, so a column serves
// at most one field and resolution is reproducible.
func resolveColumns(headers map[int]string) (map[models.Field]int, []string) {
	cols := make([]int, 0, len(headers))
	for col := range headers {
		cols = append(cols, col)
	}
	sort.Ints(cols)

	columns := make(map[models.Field]int)
	reasons := make([]string, 0, len(headerKeywords))
	claimed := make(map[int]bool)
	for _, fk := range headerKeywords {
		for _, col := range cols {
			if claimed[col] {
				continue
			}
			if matchesField(models.FoldText(headers[col]), fk) {
				columns[fk.field] = col
				claimed[col] = true
				reasons = append(reasons, fmt.Sprintf("%s column recognized at %s (%q)",
					fk.field, models.ColumnName(col), headers[col]))
				break
			}
		}
	}
	return columns, reasons
}

func confidence(score int) models.Confidence {
	switch {
	case score >= scoreHigh:
		return models.ConfidenceHigh
	case score >= scoreMedium:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}
