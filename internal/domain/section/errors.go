package section

import "errors"

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrManagerNotFound = errors.New("manager not found in this organization")
)
