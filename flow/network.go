package flow

import "github.com/so298/enclose-solver/bitset"

// Network is an edge-list residual graph over nodes 0..NodeCount()-1.
// It is immutable once built: AddEdge is the only mutator, and is expected
// to be called entirely during setup. Per-query capacities live outside the
// Network, in a []int vector the caller clones from BaseCapacities.
type Network struct {
	n int

	to      []int // to[e] = edge e's destination node
	from    []int // from[e] = edge e's source node
	rev     []int // rev[e] = index of e's reverse (twin) edge
	baseCap []int // baseCap[e] = template capacity of edge e

	adj   [][]int // adj[u] = outgoing edge ids from u, insertion order
	inAdj [][]int // inAdj[v] = incoming edge ids into v, insertion order
}

// New allocates a Network template over the given node count. Edges are
// added afterward via AddEdge.
// Complexity: O(nodeCount).
func New(nodeCount int) *Network {
	return &Network{
		n:     nodeCount,
		adj:   make([][]int, nodeCount),
		inAdj: make([][]int, nodeCount),
	}
}

// NodeCount returns the number of nodes in the template.
func (net *Network) NodeCount() int {
	return net.n
}

// AddEdge appends a directed edge u->v with capacity cap and its reverse
// twin (capacity 0), returning the forward edge's id. The reverse edge's id
// is always the forward id + 1.
// Complexity: O(1) amortized.
func (net *Network) AddEdge(u, v, cap int) int {
	if u < 0 || u >= net.n || v < 0 || v >= net.n {
		panic(ErrNodeOutOfRange)
	}

	fwd := len(net.to)
	net.to = append(net.to, v)
	net.from = append(net.from, u)
	net.rev = append(net.rev, fwd+1)
	net.baseCap = append(net.baseCap, cap)

	bwd := len(net.to)
	net.to = append(net.to, u)
	net.from = append(net.from, v)
	net.rev = append(net.rev, fwd)
	net.baseCap = append(net.baseCap, 0)

	net.adj[u] = append(net.adj[u], fwd)
	net.adj[v] = append(net.adj[v], bwd)

	net.inAdj[v] = append(net.inAdj[v], fwd)
	net.inAdj[u] = append(net.inAdj[u], bwd)

	return fwd
}

// BaseCapacities returns a defensive copy of the template's base capacity
// vector, for a caller to clone-and-patch per query.
// Complexity: O(edges).
func (net *Network) BaseCapacities() []int {
	out := make([]int, len(net.baseCap))
	copy(out, net.baseCap)
	return out
}

// MaxflowLimit runs bounded BFS augmenting-path search from source to sink
// against the caller-supplied, caller-owned capacity vector caps, pushing
// flow one unit per augmenting path until either no path remains or limit
// units have been pushed. It mutates caps in place (decrementing forward
// edges, incrementing their reverse twins along each augmenting path) and
// returns the flow actually pushed.
//
// Edge exploration order is the insertion order of each node's adjacency
// list, so the result is deterministic across runs with identical input.
// Complexity: O(limit * E) in the worst case (one BFS per unit of flow).
func (net *Network) MaxflowLimit(source, sink int, caps []int, limit int) int {
	pushed := 0
	parentEdge := make([]int, net.n)

	for pushed < limit {
		for i := range parentEdge {
			parentEdge[i] = -1
		}
		parentEdge[source] = -2 // mark source visited, no incoming edge

		queue := make([]int, 0, net.n)
		queue = append(queue, source)

		for qi := 0; qi < len(queue) && parentEdge[sink] == -1; qi++ {
			u := queue[qi]
			for _, e := range net.adj[u] {
				if caps[e] <= 0 {
					continue
				}
				v := net.to[e]
				if parentEdge[v] != -1 {
					continue
				}
				parentEdge[v] = e
				if v == sink {
					break
				}
				queue = append(queue, v)
			}
		}

		if parentEdge[sink] == -1 {
			break
		}

		for v := sink; v != source; {
			e := parentEdge[v]
			caps[e]--
			caps[net.rev[e]]++
			v = net.from[e]
		}
		pushed++
	}

	return pushed
}

// ResidualReachableFrom performs a reverse BFS from sink over residual
// edges with positive capacity (walking each node's incoming-edge list
// backward), returning the set of nodes that can reach sink in the
// residual graph defined by caps.
// Complexity: O(V + E).
func (net *Network) ResidualReachableFrom(sink int, caps []int) *bitset.BitSet {
	reach := bitset.New(net.n)
	reach.Set(sink)

	queue := make([]int, 0, net.n)
	queue = append(queue, sink)

	for qi := 0; qi < len(queue); qi++ {
		v := queue[qi]
		for _, e := range net.inAdj[v] {
			if caps[e] <= 0 {
				continue
			}
			u := net.from[e]
			if reach.Test(u) {
				continue
			}
			reach.Set(u)
			queue = append(queue, u)
		}
	}

	return reach
}
