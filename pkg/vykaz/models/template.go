package models

// Field identifies a logical column of a budget sheet.
type Field string

const (
	// FieldCode is the line-item code column.
	FieldCode Field = "code"
	// FieldDescription is the short description column.
	FieldDescription Field = "description"
	// FieldUnit is the unit-of-measure column.
	FieldUnit Field = "unit"
	// FieldQuantity is the quantity column.
	FieldQuantity Field = "quantity"
	// FieldUnitPrice is the price-per-unit column.
	FieldUnitPrice Field = "unit_price"
	// FieldTotalPrice is the row total column.
	FieldTotalPrice Field = "total_price"

	// FieldFullDescription is the long item description. Search-only;
	// never resolved as a detected column.
	FieldFullDescription Field = "full_description"
	// FieldGroup is the item group label. Search-only.
	FieldGroup Field = "group"
)

// DetectableFields returns the logical fields structure detection resolves,
// in declared order. The order decides ties when one header cell satisfies
// several fields.
func DetectableFields() []Field {
	return []Field{
		FieldCode,
		FieldDescription,
		FieldUnit,
		FieldQuantity,
		FieldUnitPrice,
		FieldTotalPrice,
	}
}

// ImportTemplate describes one known budget-sheet layout family. Templates
// are read-only catalog entries supplied externally.
type ImportTemplate struct {
	// ID is the catalog identifier.
	ID string `json:"id" yaml:"id"`
	// Name is the human-readable template name.
	Name string `json:"name" yaml:"name"`
	// StandardType is the coding-standard family the template expects
	// (urs, rts, otskp, cpv).
	StandardType string `json:"standard_type" yaml:"standard_type"`
}

// ImportConfig holds the column layout used when parsing a sheet into items.
type ImportConfig struct {
	// TemplateID is the catalog identifier of the template in use, if any.
	TemplateID string `json:"template_id,omitempty" yaml:"template_id,omitempty"`
	// SheetName selects the sheet to parse; empty means the first sheet.
	SheetName string `json:"sheet_name,omitempty" yaml:"sheet_name,omitempty"`
	// FirstDataRow is the 1-based row where line items start.
	FirstDataRow int `json:"first_data_row" yaml:"first_data_row"`
	// Columns maps logical fields to 1-based column indexes.
	Columns map[Field]int `json:"columns" yaml:"columns"`
}
