package models

import (
	"testing"
)

func TestColumnName(t *testing.T) {
	tests := []struct {
		col      int
		expected string
	}{
		{1, "A"},
		{2, "B"},
		{26, "Z"},
		{27, "AA"},
		{28, "AB"},
		{52, "AZ"},
		{53, "BA"},
		{702, "ZZ"},
		{703, "AAA"},
		{0, ""},
		{-1, ""},
	}

	for _, tt := range tests {
		if got := ColumnName(tt.col); got != tt.expected {
			t.Errorf("ColumnName(%d) = %q, expected %q", tt.col, got, tt.expected)
		}
	}
}

func TestValueText(t *testing.T) {
	tests := []struct {
		value    interface{}
		expected string
	}{
		{"Beton", "Beton"},
		{int64(231112), "231112"},
		{12.5, "12.5"},
		{31250.0, "31250"},
		{true, "true"},
		{nil, ""},
		{[]int{1}, ""},
	}

	for _, tt := range tests {
		if got := ValueText(tt.value); got != tt.expected {
			t.Errorf("ValueText(%v) = %q, expected %q", tt.value, got, tt.expected)
		}
	}
}

func TestCellRow(t *testing.T) {
	row := CellRow{R: 3, C: map[string]interface{}{
		"1": "Kód",
		"3": int64(5),
		"2": 12.5,
	}}

	if got := row.Text(1); got != "Kód" {
		t.Errorf("Text(1) = %q, expected 'Kód'", got)
	}
	if got := row.Text(3); got != "5" {
		t.Errorf("Text(3) = %q, expected '5'", got)
	}
	if got := row.Text(9); got != "" {
		t.Errorf("Text(9) = %q, expected empty", got)
	}

	if v, ok := row.Value(2); !ok || v != 12.5 {
		t.Errorf("Value(2) = %v, %v, expected 12.5, true", v, ok)
	}
	if _, ok := row.Value(9); ok {
		t.Error("Value(9) should not exist")
	}

	cols := row.Columns()
	if len(cols) != 3 || cols[0] != 1 || cols[1] != 2 || cols[2] != 3 {
		t.Errorf("Columns() = %v, expected [1 2 3]", cols)
	}
}

func TestSheetGridRowAt(t *testing.T) {
	grid := SheetGrid{
		Name: "List1",
		Rows: []CellRow{
			{R: 1, C: map[string]interface{}{"1": "a"}},
			{R: 4, C: map[string]interface{}{"1": "b"}},
		},
	}

	if row, ok := grid.RowAt(4); !ok || row.Text(1) != "b" {
		t.Errorf("RowAt(4) = %v, %v", row, ok)
	}
	if _, ok := grid.RowAt(2); ok {
		t.Error("RowAt(2) should not exist")
	}
	if _, ok := grid.RowAt(9); ok {
		t.Error("RowAt(9) should not exist")
	}
}

func TestWorkbookSheet(t *testing.T) {
	wb := Workbook{
		BookName: "rozpocet.xlsx",
		Sheets: []SheetGrid{
			{Name: "Krycí list"},
			{Name: "Rozpočet"},
		},
	}

	if sheet, ok := wb.Sheet("Rozpočet"); !ok || sheet.Name != "Rozpočet" {
		t.Errorf("Sheet('Rozpočet') = %v, %v", sheet, ok)
	}
	if _, ok := wb.Sheet("List99"); ok {
		t.Error("Sheet('List99') should not exist")
	}
}

func TestDetectableFields(t *testing.T) {
	fields := DetectableFields()
	expected := []Field{FieldCode, FieldDescription, FieldUnit, FieldQuantity, FieldUnitPrice, FieldTotalPrice}

	if len(fields) != len(expected) {
		t.Fatalf("Expected %d fields, got %d", len(expected), len(fields))
	}
	for i, f := range expected {
		if fields[i] != f {
			t.Errorf("Field %d = %q, expected %q", i, fields[i], f)
		}
	}
}
