package careers

import "errors"

var (
	// ErrEmptyCatalog indicates the catalog source contained no careers.
	ErrEmptyCatalog = errors.New("career catalog is empty")
)
