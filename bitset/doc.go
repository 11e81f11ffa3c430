// Package bitset implements a fixed-width bitset over a dense integer index
// space, backed by a packed []uint64 word array.
//
// It is the hot-path primitive shared by gridgraph, mincut, and solver: every
// reachable-region mask, wallable/boundary flag set, and search-branch state
// is a BitSet. Two bitsets combined with a binary operation (Union,
// Intersect, Intersects, SubsetOf) must share the same width; this is not
// re-validated per call on the hot path, only in tests and in Equal.
package bitset
