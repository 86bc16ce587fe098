package worker

import "errors"

var (
	ErrWorkerNotFound  = errors.New("worker not found")
	ErrManualIDExists  = errors.New("a worker with this manual ID already exists in the organization")
	ErrInvalidManualID = errors.New("invalid manual ID format")
	ErrSectionNotFound = errors.New("section not found in this organization")
)
