package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a draft or patch failed validation.
	ErrInvalidInput = errors.New("invalid scene input")
	// ErrUnknownTag indicates a shot tag outside its closed set. It wraps ErrInvalidInput.
	ErrUnknownTag = fmt.Errorf("%w: unknown tag", ErrInvalidInput)
)
