package justification

import "errors"

var (
	ErrJustificationNotFound = errors.New("justification not found")
	ErrInvalidCategory       = errors.New("unknown justification category")
	ErrInvertedRange         = errors.New("date_end is before date_start")
)
