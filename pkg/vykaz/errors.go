package vykaz

import (
	"errors"
	"fmt"

	"vykaz/pkg/vykaz/search"
)

// ErrSheetNotFound indicates the selected sheet reference does not resolve.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrEmptyCatalog indicates detection was invoked with an empty template catalog.
var ErrEmptyCatalog = errors.New("empty template catalog")

// ErrItemIdentity indicates the supplied item collection breaks id uniqueness,
// so search hits cannot be re-associated with their owning project.
var ErrItemIdentity = search.ErrItemIdentity

// DetectionError represents an input-shape failure during structure detection.
type DetectionError struct {
	Sheet string
	Err   error
}

func (e *DetectionError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("structure detection: %v", e.Err)
	}
	return fmt.Sprintf("structure detection in sheet %q: %v", e.Sheet, e.Err)
}

func (e *DetectionError) Unwrap() error {
	return e.Err
}
