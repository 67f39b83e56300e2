package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrLabelRange indicates an integer cell value that does not fit in a Label.
	ErrLabelRange = errors.New("gridgraph: cell value out of label range [0,255]")
)
