package project

import "errors"

var (
	// ErrInvalidRange indicates a reorder index outside the scene sequence.
	ErrInvalidRange = errors.New("scene index out of range")
)
