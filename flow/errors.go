package flow

import "errors"

// ErrNodeOutOfRange indicates AddEdge was called with an endpoint outside
// [0, NodeCount()).
var ErrNodeOutOfRange = errors.New("flow: node index out of range")

// ErrCapacityVectorLength indicates a caller-supplied capacity vector's
// length does not match the number of edges in the template.
var ErrCapacityVectorLength = errors.New("flow: capacity vector length mismatch")
