package mincut

import (
	"github.com/so298/enclose-solver/bitset"
	"github.com/so298/enclose-solver/gridgraph"
)

// Separate answers whether a wall-set of size <= kRem separates the horse
// from the boundary, given that every index in deleted is already walled
// and every index in forced must remain non-wallable and inside the
// enclosure. deleted and forced must be disjoint bitsets of width g.N; the
// horse index must be in forced.
//
// On success, it returns (cut, true) where cut is a minimum wall-set (of
// size <= kRem) disjoint from deleted and forced such that walling
// deleted ∪ cut disconnects the horse from every boundary cell. On failure
// (contradiction between deleted/forced, or no such separator exists) it
// returns (nil, false).
//
// Precondition: g.HorseOnBoundary is false (callers must special-case
// boundary horses before reaching the search loop).
// Complexity: O((kRem+1) * E) for the bounded max-flow, plus O(V+E) for the
// residual reachability scan.
func Separate(g *gridgraph.Graph, deleted, forced *bitset.BitSet, kRem int) (*bitset.BitSet, bool) {
	caps := g.Network.BaseCapacities()

	contradiction := false
	deleted.ForEachSetBit(func(i int) {
		caps[g.CellEdge[i]] = 0
	})
	forced.ForEachSetBit(func(i int) {
		if deleted.Test(i) {
			contradiction = true
			return
		}
		caps[g.CellEdge[i]] = g.INF
		caps[g.SourceEdge[i]] = g.INF
	})
	if contradiction {
		return nil, false
	}

	pushed := g.Network.MaxflowLimit(g.Source, g.Sink, caps, kRem+1)
	if pushed > kRem {
		return nil, false
	}

	reach := g.Network.ResidualReachableFrom(g.Sink, caps)

	cut := bitset.New(g.N)
	for i := 0; i < g.N; i++ {
		if !g.Wallable[i] || deleted.Test(i) || forced.Test(i) {
			continue
		}
		inReach := reach.Test(gridgraph.In(i))
		outReach := reach.Test(gridgraph.Out(i))
		if !inReach && outReach {
			cut.Set(i)
		}
	}

	return cut, true
}
