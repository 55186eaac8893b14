package grid

import "errors"

var (
	// ErrBadDimension indicates a non-positive grid dimension.
	ErrBadDimension = errors.New("grid: dimension must be positive")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrEmptyGrid indicates Parse received no rows or an empty row.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonSquare indicates Parse received rows whose length differs from the row count.
	ErrNonSquare = errors.New("grid: input must be square")
	// ErrUnknownGlyph indicates Parse met a character it cannot classify.
	ErrUnknownGlyph = errors.New("grid: unknown cell glyph")
	// ErrDuplicateEndpoint indicates more than one Start or End cell in Parse input.
	ErrDuplicateEndpoint = errors.New("grid: start and end must each appear at most once")
)
