// Package flow implements a unit-style maximum-flow engine over a fixed
// dense integer node space, represented as an edge-list residual graph.
//
// Unlike a general-purpose flow library operating on a named/string-keyed
// graph, Network is built once per query workload and reused across many
// max-flow computations against independently mutated capacity vectors: the
// template (node count, edges, their endpoints and reverse-edge indices,
// and base capacities) is immutable after construction, while each call site
// clones the base capacity vector and patches it before calling MaxflowLimit.
// This lets mincut re-run max-flow hundreds of times per search without
// rebuilding the graph, per the "flow-template sharing" discipline the
// solver's search loop depends on.
//
// Two primitives cover everything the solver needs:
//
//   - MaxflowLimit performs bounded BFS augmenting-path search, pushing flow
//     one unit at a time until either no augmenting path remains or a caller
//     supplied limit is reached. Bounding by limit avoids wasted work when
//     the caller only needs to know whether flow exceeds a budget.
//   - ResidualReachableFrom performs a reverse BFS over residual edges with
//     positive capacity, used to extract a minimum cut once max-flow
//     saturates.
package flow
