package solver

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/so298/enclose-solver/bitset"
	"github.com/so298/enclose-solver/gridgraph"
	"github.com/so298/enclose-solver/mincut"
)

// progressInterval is how many dfs nodes elapse between debug trace lines.
// Logging on every node would dominate the hot path; a fixed stride keeps
// the overhead to a modulo check for callers that never attach a logger.
const progressInterval = 4096

// Solve searches for a set of at most k wall placements on '.' cells of
// grid that does not wall the horse ('H'), leaves the horse unable to
// reach the grid boundary, and maximizes the horse's reachable area. It
// returns the best such placement found.
//
// If k < 0, Solve returns a zero Result and a nil error without inspecting
// grid further. If grid has no 'H' cell, rows of differing length, or a
// byte outside {'.', '#', 'H'}, Solve returns a zero Result and the
// corresponding gridgraph error. If the horse already sits on the grid
// boundary, no positive k can enclose it; Solve returns Result{Area: 0}
// with a nil error.
//
// ctx is checked once per dfs node; if it is cancelled before the search
// completes, Solve returns its best candidate so far alongside ctx.Err().
// Complexity: worst-case exponential in the wall-budget k, bounded in
// practice by the upper-bound pruning and memoization described in the
// package doc comment.
func Solve(ctx context.Context, grid []string, k int, opts ...Option) (Result, error) {
	if k < 0 {
		return Result{}, nil
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	g, err := gridgraph.Build(grid, k)
	if err != nil {
		return Result{}, err
	}
	if g.HorseOnBoundary {
		return Result{Area: 0}, nil
	}

	o.logger.Debugf("solve: cells=%d k=%d", g.N, k)

	st := &searchState{
		g:         g,
		logger:    o.logger,
		nodeLimit: o.nodeLimit,
		visited:   make(map[string]struct{}),
		bestArea:  0,
		bestWalls: bitset.New(g.N),
	}

	deleted := bitset.New(g.N)
	forced := bitset.New(g.N)
	forced.Set(gridgraph.HorseIndex)

	searchErr := st.dfs(ctx, deleted, forced, k)

	walls := collectWalls(g, st.bestWalls)
	result := Result{Area: st.bestArea, Walls: walls}

	o.logger.Debugf("solve: done nodes=%d best_area=%d walls=%d", st.nodes, st.bestArea, len(walls))

	if searchErr != nil {
		return result, searchErr
	}
	return result, nil
}

// searchState carries the mutable bookkeeping shared across one dfs
// recursion tree: the running best candidate, the visited-state memo, and
// node-count bookkeeping for the optional node limit and progress logging.
type searchState struct {
	g         *gridgraph.Graph
	logger    Logger
	nodeLimit int

	nodes     int
	visited   map[string]struct{}
	bestArea  int
	bestWalls *bitset.BitSet
}

// dfs explores one node of the branch-and-bound search: deleted is the set
// of cells already committed as walls, forced is the set of cells that must
// remain inside the enclosure (always including the horse), and kRem is the
// number of further walls still available. It mirrors the five-step shape
// spec'd for the search driver:
//
//  1. bound: a flood fill from the horse over cells not in deleted gives an
//     upper bound on any area reachable from this state; prune if it can't
//     beat the running best, or if some forced cell has fallen out of
//     reach.
//  2. oracle: ask mincut for the smallest wall-set (of size <= kRem) that
//     separates the horse from the boundary given deleted and forced.
//     Prune if none exists.
//  3. candidate: deleted union the oracle's cut is a feasible enclosure;
//     flood fill it and record it as the new best if it doesn't escape the
//     boundary and beats the running best.
//  4. termination: if kRem is exhausted or the cut is already empty, there
//     is nothing left to branch on.
//  5. branch: pick the cut's first cell and recurse twice, once forcing it
//     into the enclosure and once committing it as a wall.
func (st *searchState) dfs(ctx context.Context, deleted, forced *bitset.BitSet, kRem int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	st.nodes++
	if st.nodeLimit > 0 && st.nodes > st.nodeLimit {
		return fmt.Errorf("solver: stopped after %d nodes: %w", st.nodes, ErrNodeLimitReached)
	}
	if st.nodes%progressInterval == 0 {
		st.logger.Debugf("dfs: nodes=%d best_area=%d k_rem=%d", st.nodes, st.bestArea, kRem)
	}

	key := stateKey(deleted, forced, kRem)
	if _, seen := st.visited[key]; seen {
		return nil
	}
	st.visited[key] = struct{}{}

	reached, upperBound := floodFill(st.g, deleted)
	if upperBound <= st.bestArea {
		return nil
	}
	if !forced.SubsetOf(reached) {
		return nil
	}

	cut, ok := mincut.Separate(st.g, deleted, forced, kRem)
	if !ok {
		return nil
	}

	candidate := deleted.Union(cut)
	candReached, candArea := floodFill(st.g, candidate)
	if !candReached.Intersects(st.g.Boundary) && candArea > st.bestArea {
		st.bestArea = candArea
		st.bestWalls = candidate
		st.logger.Debugf("dfs: new best area=%d walls=%d", candArea, candidate.Popcount())
	}

	if kRem == 0 || cut.Empty() {
		return nil
	}
	v := cut.FirstSetBit()

	forcedNext := forced.Clone()
	forcedNext.Set(v)
	if err := st.dfs(ctx, deleted, forcedNext, kRem); err != nil {
		return err
	}

	deletedNext := deleted.Clone()
	deletedNext.Set(v)
	return st.dfs(ctx, deletedNext, forced, kRem-1)
}

// floodFill returns the set of cells reachable from the horse through
// cells not in blocked, and its popcount.
// Complexity: O(V+E) over the region graph.
func floodFill(g *gridgraph.Graph, blocked *bitset.BitSet) (*bitset.BitSet, int) {
	reached := bitset.New(g.N)
	if blocked.Test(gridgraph.HorseIndex) {
		return reached, 0
	}

	reached.Set(gridgraph.HorseIndex)
	queue := make([]int, 1, g.N)
	queue[0] = gridgraph.HorseIndex

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.Adj[u] {
			if blocked.Test(v) || reached.Test(v) {
				continue
			}
			reached.Set(v)
			queue = append(queue, v)
		}
	}
	return reached, reached.Popcount()
}

// stateKey builds the memo key for a (deleted, forced, kRem) triple. Keying
// on bitset content rather than object identity is what lets states
// reached by different branch orders collapse onto the same memo entry.
func stateKey(deleted, forced *bitset.BitSet, kRem int) string {
	return deleted.Key() + "|" + forced.Key() + "|" + strconv.Itoa(kRem)
}

// collectWalls converts a wall bitset into sorted Coordinates.
func collectWalls(g *gridgraph.Graph, walls *bitset.BitSet) []Coordinate {
	out := make([]Coordinate, 0, walls.Popcount())
	walls.ForEachSetBit(func(i int) {
		out = append(out, g.Coords[i])
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
