package mincut_test

import (
	"testing"

	"github.com/so298/enclose-solver/bitset"
	"github.com/so298/enclose-solver/gridgraph"
	"github.com/so298/enclose-solver/mincut"
)

func TestSeparate_MinimalEnclosureOfFourNeighbors(t *testing.T) {
	grid := []string{
		".....",
		".....",
		"..H..",
		".....",
		".....",
	}
	g, err := gridgraph.Build(grid, 4)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	deleted := bitset.New(g.N)
	forced := bitset.New(g.N)
	forced.Set(gridgraph.HorseIndex)

	cut, ok := mincut.Separate(g, deleted, forced, 4)
	if !ok {
		t.Fatalf("Separate reported infeasible; want a 4-wall separator")
	}
	if cut.Popcount() != 4 {
		t.Errorf("cut.Popcount() = %d; want 4 (the horse's 4 neighbors)", cut.Popcount())
	}
	cut.ForEachSetBit(func(i int) {
		if !g.Wallable[i] {
			t.Errorf("cut contains non-wallable index %d", i)
		}
	})
}

func TestSeparate_InfeasibleWithZeroBudget(t *testing.T) {
	grid := []string{
		"...",
		".H.",
		"...",
	}
	g, err := gridgraph.Build(grid, 0)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	deleted := bitset.New(g.N)
	forced := bitset.New(g.N)
	forced.Set(gridgraph.HorseIndex)

	_, ok := mincut.Separate(g, deleted, forced, 0)
	if ok {
		t.Fatalf("Separate reported feasible with k_rem=0 on an unenclosed 3x3 grid")
	}
}

func TestSeparate_ContradictionWhenForcedAndDeletedOverlap(t *testing.T) {
	grid := []string{
		"...",
		".H.",
		"...",
	}
	g, err := gridgraph.Build(grid, 4)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	// pick some non-horse wallable index to put in both sets
	var victim = -1
	for i := 0; i < g.N; i++ {
		if i != gridgraph.HorseIndex && g.Wallable[i] {
			victim = i
			break
		}
	}
	if victim == -1 {
		t.Fatalf("no wallable non-horse cell found")
	}

	deleted := bitset.New(g.N)
	deleted.Set(victim)
	forced := bitset.New(g.N)
	forced.Set(gridgraph.HorseIndex)
	forced.Set(victim)

	_, ok := mincut.Separate(g, deleted, forced, 4)
	if ok {
		t.Fatalf("Separate reported feasible for a contradictory deleted/forced pair")
	}
}

func TestSeparate_CutRespectsPreBlockedCells(t *testing.T) {
	// The '#' cells already help wall off the horse, so fewer fresh walls
	// should be needed than on the fully-open equivalent.
	grid := []string{
		"....",
		".H#.",
		"..#.",
		"....",
	}
	g, err := gridgraph.Build(grid, 3)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	deleted := bitset.New(g.N)
	forced := bitset.New(g.N)
	forced.Set(gridgraph.HorseIndex)

	cut, ok := mincut.Separate(g, deleted, forced, 3)
	if !ok {
		t.Fatalf("Separate reported infeasible; want a <=3-wall separator given pre-blocked help")
	}
	if cut.Popcount() > 3 {
		t.Errorf("cut.Popcount() = %d; want <= 3", cut.Popcount())
	}
}
