// Package mincut answers the separation query the search driver poses at
// every branch node: given the cells already committed as walls (deleted)
// and the cells committed to stay inside the enclosure (forced), does a
// wall-set of size at most k_rem separate the horse from the grid boundary?
//
// Separate patches a clone of the graph's base flow capacities for the
// current (deleted, forced) pair, runs bounded max-flow up to k_rem+1, and
// — only if flow does not exceed k_rem — extracts one minimum cut via
// residual reachability from the sink, restricted to cell edges (the only
// unit-capacity edges; adjacency and source/sink edges carry INF and can
// never appear in a cut of size <= k_rem).
package mincut
