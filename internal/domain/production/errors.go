package production

import "errors"

var (
	ErrEntryNotFound   = errors.New("production entry not found")
	ErrWorkerNotFound  = errors.New("worker not found in this organization")
	ErrStyleNotFound   = errors.New("style not found in this organization")
	ErrInvalidQuantity = errors.New("quantity must be non-negative")
)
