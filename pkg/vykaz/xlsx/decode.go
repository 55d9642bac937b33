// Package xlsx decodes Excel workbooks into plain sheet grids. It is the
// only package touching the xlsx format; detection, import and search all
// operate on the decoded grids.
package xlsx

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"vykaz/pkg/vykaz/models"
)

// Decode reads an .xlsx workbook file into sheet grids.
func Decode(path string) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeAll(f, filepath.Base(path))
}

// DecodeReader reads an .xlsx workbook from a stream, for callers holding
// an upload body rather than a file. The name is recorded as the book name.
func DecodeReader(r io.Reader, name string) (*models.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeAll(f, name)
}

func decodeAll(f *excelize.File, bookName string) (*models.Workbook, error) {
	wb := &models.Workbook{BookName: bookName}
	for _, sheetName := range f.GetSheetList() {
		grid, err := decodeSheet(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
		}
		wb.Sheets = append(wb.Sheets, grid)
	}
	return wb, nil
}

// decodeSheet extracts the non-empty rows of a sheet and tracks the grid
// extent.
func decodeSheet(f *excelize.File, sheetName string) (models.SheetGrid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.SheetGrid{}, err
	}

	grid := models.SheetGrid{Name: sheetName}
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1
		cellMap := make(map[string]interface{})
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellMap[strconv.Itoa(colIdx+1)] = parseValue(cellValue)
			if colIdx+1 > grid.MaxCol {
				grid.MaxCol = colIdx + 1
			}
		}
		if len(cellMap) == 0 {
			continue
		}
		grid.Rows = append(grid.Rows, models.CellRow{R: rowNum, C: cellMap})
		grid.MaxRow = rowNum
	}
	return grid, nil
}

// parseValue attempts to parse a cell value as a number. Returns int64 for
// integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
