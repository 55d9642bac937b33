// Package detector infers budget-sheet structure: header row position,
// column meanings, the first data row, and the line-item code convention.
package detector

import (
	"strings"

	"vykaz/pkg/vykaz/models"
)

// fieldKeywords binds one logical field to its known header synonyms.
type fieldKeywords struct {
	field    models.Field
	keywords []string
}

// headerKeywords lists header synonyms per logical field, Czech and English,
// diacritic-folded lowercase. Source spreadsheets are not language-normalized,
// so both languages score. Declared field order decides which field claims a
// column when several fields match it.
var headerKeywords = []fieldKeywords{
	{models.FieldCode, []string{"kod", "code", "cislo polozky", "item no"}},
	{models.FieldDescription, []string{"popis", "description", "nazev", "text"}},
	{models.FieldUnit, []string{"mj", "m.j.", "merna jednotka", "unit"}},
	{models.FieldQuantity, []string{"mnozstvi", "vymera", "quantity", "pocet"}},
	{models.FieldUnitPrice, []string{"jednotkova cena", "cena/mj", "j.cena", "unit price", "cena"}},
	{models.FieldTotalPrice, []string{"celkem", "cena celkem", "total", "naklady"}},
}

// matchesField reports whether a folded header text contains any of the
// field's keywords.
func matchesField(folded string, fk fieldKeywords) bool {
	for _, kw := range fk.keywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}
