package models

// Item is a parsed budget line item. Identity is assigned externally;
// detection and search only read items.
type Item struct {
	// ID is an opaque identifier assigned by the importing caller.
	ID string `json:"id"`
	// Code is the line-item code (e.g. "231112").
	Code string `json:"code"`
	// Description is the short description.
	Description string `json:"description"`
	// FullDescription is the long description, if any.
	FullDescription string `json:"full_description,omitempty"`
	// Unit is the unit of measure (e.g. "m3").
	Unit string `json:"unit,omitempty"`
	// Group is the group/category label, nil when the item is ungrouped.
	Group *string `json:"group,omitempty"`
	// Quantity is the measured quantity, if present.
	Quantity *float64 `json:"quantity,omitempty"`
	// UnitPrice is the price per unit, if present.
	UnitPrice *float64 `json:"unit_price,omitempty"`
	// TotalPrice is the row total, parsed or derived, nil when unknown.
	TotalPrice *float64 `json:"total_price,omitempty"`
}

// Sheet owns an ordered sequence of items parsed from one workbook sheet.
type Sheet struct {
	// Name is the source sheet name.
	Name string `json:"name"`
	// Items lists the sheet's line items in source order.
	Items []Item `json:"items"`
}

// Project owns an ordered sequence of sheets. Ownership is strictly
// tree-shaped: project → sheet → item.
type Project struct {
	// ID is an opaque identifier assigned externally.
	ID string `json:"id"`
	// Name is the project display name.
	Name string `json:"name"`
	// Sheets lists the project's sheets in import order.
	Sheets []Sheet `json:"sheets"`
}
