package group

import "errors"

var (
	ErrPortfolioNotFound   = errors.New("portfolio not found")
	ErrPortfolioCodeExists = errors.New("portfolio code already exists")
	ErrGroupNotFound       = errors.New("group not found")
	ErrGroupCodeExists     = errors.New("group code already exists")
	ErrGroupHasMembers     = errors.New("group still has members assigned")
)
