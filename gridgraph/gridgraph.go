package gridgraph

import (
	"github.com/so298/enclose-solver/bitset"
	"github.com/so298/enclose-solver/flow"
)

var cardinalOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func isOpenCell(ch byte) bool {
	return ch == '.' || ch == 'H'
}

// Build validates the grid's shape and alphabet, locates the horse, flood
// fills the horse-reachable open-cell region into a dense index space, and
// (unless the horse sits on the boundary) constructs the node-split flow
// template for that region with INF = k+1.
//
// Returns ErrInvalidGridShape if rows differ in length, ErrInvalidCharacter
// if any byte falls outside {'.', '#', 'H'}, or ErrHorseMissing if no 'H'
// is present. k must be >= 0.
// Complexity: O(R*C) for the flood fill and edge construction.
func Build(grid []string, k int) (*Graph, error) {
	if err := validateShape(grid); err != nil {
		return nil, err
	}
	if err := validateAlphabet(grid); err != nil {
		return nil, err
	}

	rows := len(grid)
	cols := 0
	if rows > 0 {
		cols = len(grid[0])
	}

	hr, hc := -1, -1
	for r := 0; r < rows && hr == -1; r++ {
		for c := 0; c < cols; c++ {
			if grid[r][c] == 'H' {
				hr, hc = r, c
				break
			}
		}
	}
	if hr == -1 {
		return nil, ErrHorseMissing
	}

	idxOf := make(map[[2]int]int, rows*4)
	coords := make([]Coordinate, 0, rows*4)

	idxOf[[2]int{hr, hc}] = HorseIndex
	coords = append(coords, Coordinate{hr, hc})
	queue := []([2]int){{hr, hc}}

	for qi := 0; qi < len(queue); qi++ {
		r, c := queue[qi][0], queue[qi][1]
		for _, d := range cardinalOffsets {
			nr, nc := r+d[0], c+d[1]
			if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
				continue
			}
			if !isOpenCell(grid[nr][nc]) {
				continue
			}
			key := [2]int{nr, nc}
			if _, seen := idxOf[key]; seen {
				continue
			}
			id := len(coords)
			idxOf[key] = id
			coords = append(coords, Coordinate{nr, nc})
			queue = append(queue, key)
		}
	}

	n := len(coords)
	adj := make([][]int, n)
	wallable := make([]bool, n)
	boundary := bitset.New(n)

	for i, coord := range coords {
		r, c := coord.Row, coord.Col
		if r == 0 || r == rows-1 || c == 0 || c == cols-1 {
			boundary.Set(i)
		}
		wallable[i] = grid[r][c] == '.'

		for _, d := range cardinalOffsets {
			nr, nc := r+d[0], c+d[1]
			if j, ok := idxOf[[2]int{nr, nc}]; ok {
				adj[i] = append(adj[i], j)
			}
		}
	}

	g := &Graph{
		N:        n,
		Coords:   coords,
		Wallable: wallable,
		Boundary: boundary,
		Adj:      adj,
	}

	if boundary.Test(HorseIndex) {
		g.HorseOnBoundary = true
		return g, nil
	}

	inf := k + 1
	nodeCount := 2*n + 2
	source := 2 * n
	sink := 2*n + 1

	net := flow.New(nodeCount)
	cellEdge := make([]int, n)
	sourceEdge := make([]int, n)

	for i := 0; i < n; i++ {
		cap := 1
		if i == HorseIndex || !wallable[i] {
			cap = inf
		}
		cellEdge[i] = net.AddEdge(In(i), Out(i), cap)
	}

	for i := 0; i < n; i++ {
		for _, j := range adj[i] {
			net.AddEdge(Out(i), In(j), inf)
		}
	}

	for i := 0; i < n; i++ {
		if boundary.Test(i) {
			net.AddEdge(Out(i), sink, inf)
		}
	}

	for i := 0; i < n; i++ {
		cap := 0
		if i == HorseIndex {
			cap = inf
		}
		sourceEdge[i] = net.AddEdge(source, Out(i), cap)
	}

	g.Network = net
	g.Source = source
	g.Sink = sink
	g.INF = inf
	g.CellEdge = cellEdge
	g.SourceEdge = sourceEdge

	return g, nil
}

func validateShape(grid []string) error {
	if len(grid) == 0 {
		return nil
	}
	width := len(grid[0])
	for _, row := range grid {
		if len(row) != width {
			return ErrInvalidGridShape
		}
	}
	return nil
}

func validateAlphabet(grid []string) error {
	for _, row := range grid {
		for i := 0; i < len(row); i++ {
			ch := row[i]
			if ch != '.' && ch != '#' && ch != 'H' {
				return ErrInvalidCharacter
			}
		}
	}
	return nil
}
