package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid was requested with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrOutOfRange indicates a position lies outside the grid bounds.
	ErrOutOfRange = errors.New("grid: position out of range")
)
