// Package solver implements the branch-and-bound search that maximizes the
// horse's enclosed reachable area under a wall budget.
//
// Solve is the single public entry point. Internally, dfs explores the
// state space of (deleted, forced, k_rem) triples: at each node it computes
// a reachable-area upper bound via flood fill, asks mincut for the smallest
// wall-set currently separating the horse from the boundary, evaluates that
// candidate wall-set against the running best, and — unless the budget or
// the cut is exhausted — branches on the cut's first cell by either forcing
// it into the enclosure or committing it as a wall. A value-addressed memo
// table (keyed on bitset content, not pointer identity) prevents
// re-exploring equivalent states reached by different branch orders.
package solver
