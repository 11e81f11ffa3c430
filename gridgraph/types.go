package gridgraph

import (
	"fmt"

	"github.com/so298/enclose-solver/bitset"
	"github.com/so298/enclose-solver/flow"
)

// HorseIndex is the dense index always assigned to the horse cell.
const HorseIndex = 0

// Coordinate is a (row, col) position in the original grid.
type Coordinate struct {
	Row, Col int
}

// String renders a Coordinate as "(r,c)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Less reports whether c sorts strictly before other, lexicographically by
// (Row, Col).
func (c Coordinate) Less(other Coordinate) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// Graph is the dense-index representation of a grid's horse-reachable
// region, plus the flow template built over it. It is immutable once
// returned by Build.
type Graph struct {
	// N is the number of open cells reachable from the horse.
	N int
	// Coords maps index -> original (row, col).
	Coords []Coordinate
	// Wallable[i] is true iff cell i was '.' in the input.
	Wallable []bool
	// Boundary marks indices lying on the grid's outermost row or column.
	Boundary *bitset.BitSet
	// Adj[i] lists the cardinal-neighbor indices of cell i within the
	// index space, in the fixed direction order down, up, right, left.
	Adj [][]int

	// HorseOnBoundary is true when the horse itself sits on the grid
	// boundary; no enclosure is possible for any k, and Network is nil.
	HorseOnBoundary bool

	// Network is the node-split flow template: nil iff HorseOnBoundary.
	Network *flow.Network
	// Source and Sink are the super-source/sink node ids in Network.
	Source, Sink int
	// INF is the sentinel capacity k+1 used for every non-unit edge in
	// Network, larger than any feasible cut of size <= k.
	INF int
	// CellEdge[i] is the edge id of in(i)->out(i), for mincut to patch.
	CellEdge []int
	// SourceEdge[i] is the edge id of Source->out(i), for mincut to patch
	// when i enters the forced set.
	SourceEdge []int
}

// In returns the node id in(i) = 2i within Network.
func In(i int) int { return 2 * i }

// Out returns the node id out(i) = 2i+1 within Network.
func Out(i int) int { return 2*i + 1 }
