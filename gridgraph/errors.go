package gridgraph

import "errors"

// ErrHorseMissing indicates the input grid contains no 'H' cell.
var ErrHorseMissing = errors.New("gridgraph: grid contains no horse ('H') cell")

// ErrInvalidGridShape indicates the grid's rows are not all the same length.
var ErrInvalidGridShape = errors.New("gridgraph: rows have differing lengths")

// ErrInvalidCharacter indicates a grid byte outside the alphabet {'.', '#', 'H'}.
var ErrInvalidCharacter = errors.New("gridgraph: character outside {'.', '#', 'H'}")
