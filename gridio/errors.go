package gridio

import "errors"

// ErrEmptyGrid indicates the input held no non-blank lines at all, so
// there are no rows for gridgraph to flood-fill from.
var ErrEmptyGrid = errors.New("gridio: grid has no rows")
