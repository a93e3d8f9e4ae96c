package schedule

import "errors"

var (
	ErrOverrideNotFound = errors.New("schedule override not found")
	ErrInvalidScope     = errors.New("scope must be group or department")
)
