package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
	// ErrInvalidEdit indicates an obstruction edit that is not allowed.
	ErrInvalidEdit = errors.New("gridgraph: invalid obstruction edit")
)
