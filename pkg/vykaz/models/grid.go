// Package models defines data structures for budget workbook detection and search.
package models

import (
	"sort"
	"strconv"
)

// CellRow represents a single non-empty row of cells in a sheet grid.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (1-based, as string) to cell value.
	C map[string]interface{} `json:"c"`
}

// Value returns the raw value at the given 1-based column.
func (r CellRow) Value(col int) (interface{}, bool) {
	v, ok := r.C[strconv.Itoa(col)]
	return v, ok
}

// Text returns the string form of the value at the given 1-based column,
// or "" when the cell is empty.
func (r CellRow) Text(col int) string {
	v, ok := r.C[strconv.Itoa(col)]
	if !ok {
		return ""
	}
	return ValueText(v)
}

// Columns returns the populated column indexes in ascending order.
func (r CellRow) Columns() []int {
	cols := make([]int, 0, len(r.C))
	for k := range r.C {
		if c, err := strconv.Atoi(k); err == nil {
			cols = append(cols, c)
		}
	}
	sort.Ints(cols)
	return cols
}

// SheetGrid represents the decoded cell grid of a single sheet.
type SheetGrid struct {
	// Name is the sheet name as stored in the workbook.
	Name string `json:"name"`
	// Rows contains non-empty rows in ascending row order.
	Rows []CellRow `json:"rows,omitempty"`
	// MaxRow is the highest populated row index (1-based, 0 when empty).
	MaxRow int `json:"max_row"`
	// MaxCol is the highest populated column index (1-based, 0 when empty).
	MaxCol int `json:"max_col"`
}

// RowAt returns the row with the given 1-based index.
func (s *SheetGrid) RowAt(r int) (CellRow, bool) {
	for _, row := range s.Rows {
		if row.R == r {
			return row, true
		}
		if row.R > r {
			break
		}
	}
	return CellRow{}, false
}

// Workbook represents a decoded workbook as raw sheet grids.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets contains grids in workbook order.
	Sheets []SheetGrid `json:"sheets"`
}

// Sheet returns the grid with the given name.
func (w *Workbook) Sheet(name string) (*SheetGrid, bool) {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i], true
		}
	}
	return nil, false
}

// ValueText renders a cell value as text. Numbers use their shortest
// exact decimal form.
func ValueText(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return ""
	}
}

// ColumnName converts a 1-based column index to its letter form (1 → "A",
// 27 → "AA") for presentation in mappings and reasons.
func ColumnName(col int) string {
	if col < 1 {
		return ""
	}
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return name
}
