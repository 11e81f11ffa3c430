// Package gridgraph builds the dense-index graph and flow template the
// solver searches over, from a parsed grid and a horse coordinate.
//
// Building proceeds in two phases: first, a breadth-first flood fill from
// the horse over cells matching '.' or 'H' assigns each surviving cell a
// dense index (the horse is always index 0); second, the flow.Network
// template is constructed by node-splitting each index i into in(i)=2i and
// out(i)=2i+1, wiring adjacency, boundary, and super-source/sink edges per
// the capacities described in Graph's doc comment.
//
// If the horse itself lies on the grid boundary, no enclosure is possible
// for any wall budget; Build reports this via Graph.HorseOnBoundary rather
// than constructing a flow template at all.
package gridgraph
