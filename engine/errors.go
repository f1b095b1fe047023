package engine

import "errors"

var (
	// ErrInvalidDimension indicates non-positive rows or cols at construction.
	ErrInvalidDimension = errors.New("engine: grid dimensions must be positive")
	// ErrInvalidParameter indicates an out-of-range argument, such as a seeding
	// density outside [0, 1] or a negative step count.
	ErrInvalidParameter = errors.New("engine: parameter out of range")
)
