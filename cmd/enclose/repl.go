package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"

	"github.com/so298/enclose-solver/gridio"
	"github.com/so298/enclose-solver/solver"
)

// replState carries the REPL's session: the last loaded grid and the last
// computed result, so "solve" and "render" can be issued as separate
// commands against the same grid.
type replState struct {
	grid []string
	res  solver.Result
}

// runRepl drives an interactive session accepting "load PATH", "solve K",
// "render", and "quit" commands against a single loaded grid.
func runRepl(cfg *Config, logger *logrus.Logger) {
	rl, err := readline.New("enclose> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer rl.Close()

	st := &replState{}
	if cfg.File != "" {
		if grid, err := readGrid(cfg.File); err != nil {
			fmt.Fprintln(os.Stderr, err)
		} else {
			st.grid = grid
			fmt.Printf("loaded %d rows from %s\n", len(grid), cfg.File)
		}
	}

	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "load":
			if len(fields) != 2 {
				fmt.Println("usage: load PATH")
				continue
			}
			grid, err := readGrid(fields[1])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			st.grid = grid
			fmt.Printf("loaded %d rows from %s\n", len(grid), fields[1])

		case "solve":
			if st.grid == nil {
				fmt.Println("no grid loaded; use: load PATH")
				continue
			}
			k := cfg.Walls
			if len(fields) == 2 {
				parsed, err := strconv.Atoi(fields[1])
				if err != nil {
					fmt.Println("usage: solve K")
					continue
				}
				k = parsed
			}
			res, err := solver.Solve(context.Background(), st.grid, k, solver.WithLogger(logger))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
			st.res = res
			fmt.Printf("area: %d, walls: %d\n", res.Area, len(res.Walls))

		case "render":
			if st.grid == nil {
				fmt.Println("no grid loaded; use: load PATH")
				continue
			}
			for _, row := range gridio.Render(st.grid, st.res.Walls) {
				fmt.Println(row)
			}

		case "quit", "exit":
			return

		default:
			fmt.Printf("unknown command %q; expected load, solve, render, quit\n", fields[0])
		}
	}
}
