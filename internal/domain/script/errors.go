package script

import "errors"

var (
	// ErrInvalidInput indicates an invalid generation request.
	ErrInvalidInput = errors.New("invalid script request")
	// ErrTierRestricted indicates the user's tier lacks script generation.
	ErrTierRestricted = errors.New("script generation requires a pro tier")
)
