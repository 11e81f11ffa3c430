package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/so298/enclose-solver/gridio"
	"github.com/so298/enclose-solver/solver"
)

// runOnce parses a grid, solves it, and prints the result according to
// cfg, per a single invocation of the command.
func runOnce(ctx context.Context, cfg *Config, logger *logrus.Logger, _ []string) error {
	grid, err := readGrid(cfg.File)
	if err != nil {
		return err
	}

	res, solveErr := solver.Solve(ctx, grid, cfg.Walls, solver.WithLogger(logger))

	if cfg.JSON {
		return gridio.Encode(os.Stdout, gridio.NewJSONResult(res.Area, res.Walls, solveErr))
	}
	if solveErr != nil {
		return solveErr
	}

	fmt.Printf("area: %d\n", res.Area)
	fmt.Printf("walls: %d\n", len(res.Walls))
	for _, w := range res.Walls {
		fmt.Printf("  %s\n", w)
	}
	if cfg.Render {
		for _, line := range gridio.Render(grid, res.Walls) {
			fmt.Println(line)
		}
	}
	return nil
}

// readGrid reads the grid from path, or from stdin when path is empty.
func readGrid(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return gridio.ParseGrid(r)
}
