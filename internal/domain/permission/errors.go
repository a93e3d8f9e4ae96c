package permission

import "errors"

var (
	ErrPermissionNotFound = errors.New("permission not found")
	ErrInvertedWindow     = errors.New("from time is after to time")
)
