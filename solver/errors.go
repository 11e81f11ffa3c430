package solver

import "errors"

// ErrNodeLimitReached indicates the search aborted after visiting the
// configured node limit (see WithNodeLimit) before proving optimality. The
// Result returned alongside this error is the best candidate found so far;
// it is always a valid, feasible enclosure, just not provably optimal.
var ErrNodeLimitReached = errors.New("solver: node limit reached before search completed")
