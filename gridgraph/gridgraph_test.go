package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/so298/enclose-solver/gridgraph"
)

func TestBuild_HorseMissing(t *testing.T) {
	_, err := gridgraph.Build([]string{"...", "...", "..."}, 6)
	if !errors.Is(err, gridgraph.ErrHorseMissing) {
		t.Fatalf("err = %v; want ErrHorseMissing", err)
	}
}

func TestBuild_InvalidShape(t *testing.T) {
	_, err := gridgraph.Build([]string{"...", ".H"}, 6)
	if !errors.Is(err, gridgraph.ErrInvalidGridShape) {
		t.Fatalf("err = %v; want ErrInvalidGridShape", err)
	}
}

func TestBuild_InvalidCharacter(t *testing.T) {
	_, err := gridgraph.Build([]string{".H.", ".X."}, 6)
	if !errors.Is(err, gridgraph.ErrInvalidCharacter) {
		t.Fatalf("err = %v; want ErrInvalidCharacter", err)
	}
}

func TestBuild_HorseOnBoundaryShortCircuits(t *testing.T) {
	g, err := gridgraph.Build([]string{"H..", "...", "..."}, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.HorseOnBoundary {
		t.Fatalf("HorseOnBoundary = false; want true")
	}
	if g.Network != nil {
		t.Errorf("Network should be nil when horse is on boundary")
	}
}

func TestBuild_IndexingAndAttributes(t *testing.T) {
	grid := []string{
		"...",
		".H.",
		"...",
	}
	g, err := gridgraph.Build(grid, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.N != 9 {
		t.Fatalf("N = %d; want 9", g.N)
	}
	if g.Coords[gridgraph.HorseIndex] != (gridgraph.Coordinate{Row: 1, Col: 1}) {
		t.Errorf("horse coord = %v; want (1,1)", g.Coords[gridgraph.HorseIndex])
	}
	if g.Wallable[gridgraph.HorseIndex] {
		t.Errorf("horse cell reported wallable")
	}
	// every other cell in this all-open grid is wallable
	wallableCount := 0
	for i, w := range g.Wallable {
		if w {
			wallableCount++
		}
		_ = i
	}
	if wallableCount != 8 {
		t.Errorf("wallable count = %d; want 8", wallableCount)
	}
	// corners and edge midpoints are boundary, center (horse) is not
	if g.Boundary.Test(gridgraph.HorseIndex) {
		t.Errorf("horse incorrectly marked boundary")
	}
	if g.Boundary.Popcount() != 8 {
		t.Errorf("boundary popcount = %d; want 8", g.Boundary.Popcount())
	}
	if g.Network == nil {
		t.Fatalf("Network is nil; want constructed template")
	}
}

func TestBuild_PreBlockedCellsExcludedFromIndexSpace(t *testing.T) {
	grid := []string{
		"....",
		".H#.",
		"..#.",
		"....",
	}
	g, err := gridgraph.Build(grid, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range g.Coords {
		if grid[c.Row][c.Col] == '#' {
			t.Errorf("pre-blocked cell %v present in index space", c)
		}
	}
}

func TestBuild_AdjacencySymmetric(t *testing.T) {
	grid := []string{
		"...",
		".H.",
		"...",
	}
	g, err := gridgraph.Build(grid, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, neighbors := range g.Adj {
		for _, j := range neighbors {
			found := false
			for _, back := range g.Adj[j] {
				if back == i {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("adjacency not symmetric: %d -> %d but not back", i, j)
			}
		}
	}
}
