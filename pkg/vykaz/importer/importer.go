// Package importer turns decoded sheet grids into parsed line items using
// an import config, typically one produced by structure detection.
package importer

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"vykaz/pkg/vykaz/models"
)

// Parser parses sheet grids into line items.
type Parser struct {
	logger zerolog.Logger
}

// New creates a Parser.
func New(logger zerolog.Logger) *Parser {
	return &Parser{logger: logger}
}

// ParseProject parses a workbook into a project named projectName. When the
// config selects a sheet only that sheet is parsed, otherwise every sheet is
// parsed with the same config.
func (p *Parser) ParseProject(wb *models.Workbook, cfg models.ImportConfig, projectName string) models.Project {
	proj := models.Project{ID: uuid.NewString(), Name: projectName}
	for i := range wb.Sheets {
		grid := &wb.Sheets[i]
		if cfg.SheetName != "" && grid.Name != cfg.SheetName {
			continue
		}
		proj.Sheets = append(proj.Sheets, p.ParseSheet(grid, cfg))
	}
	return proj
}

// ParseSheet walks a grid from the configured first data row and maps the
// configured columns onto items. Rows with a description but no code and no
// quantity are group labels; the label carries onto the items that follow.
// A missing row total is derived from quantity times unit price.
func (p *Parser) ParseSheet(grid *models.SheetGrid, cfg models.ImportConfig) models.Sheet {
	first := cfg.FirstDataRow
	if first < 1 {
		first = 2
	}
	codeCol := cfg.Columns[models.FieldCode]
	descCol := cfg.Columns[models.FieldDescription]
	unitCol := cfg.Columns[models.FieldUnit]
	qtyCol := cfg.Columns[models.FieldQuantity]
	priceCol := cfg.Columns[models.FieldUnitPrice]
	totalCol := cfg.Columns[models.FieldTotalPrice]

	sheet := models.Sheet{Name: grid.Name}
	var group *string
	for _, row := range grid.Rows {
		if row.R < first {
			continue
		}
		code := strings.TrimSpace(row.Text(codeCol))
		desc := strings.TrimSpace(row.Text(descCol))
		qty := numberAt(row, qtyCol)
		if code == "" && desc == "" {
			continue
		}
		if code == "" && qty == nil {
			label := desc
			group = &label
			continue
		}

		item := models.Item{
			ID:          uuid.NewString(),
			Code:        code,
			Description: desc,
			Unit:        strings.TrimSpace(row.Text(unitCol)),
			Group:       group,
			Quantity:    qty,
			UnitPrice:   numberAt(row, priceCol),
			TotalPrice:  numberAt(row, totalCol),
		}
		if item.TotalPrice == nil && item.Quantity != nil && item.UnitPrice != nil {
			total := *item.Quantity * *item.UnitPrice
			item.TotalPrice = &total
		}
		sheet.Items = append(sheet.Items, item)
	}

	p.logger.Debug().
		Str("sheet", grid.Name).
		Int("items", len(sheet.Items)).
		Msg("parsed sheet")
	return sheet
}

// numberAt reads a numeric cell, accepting already-typed numbers and
// Czech or English decimal text.
func numberAt(row models.CellRow, col int) *float64 {
	if col <= 0 {
		return nil
	}
	v, ok := row.Value(col)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case int64:
		f := float64(t)
		return &f
	case float64:
		f := t
		return &f
	case string:
		return parseNumber(t)
	}
	return nil
}

// parseNumber parses "1 234,56" and "1234.56" style decimals. Returns nil
// when the text is not a number.
func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', ' ':
		case ',':
			b.WriteRune('.')
		default:
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return nil
	}
	return &f
}
