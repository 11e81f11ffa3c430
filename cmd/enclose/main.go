// Command enclose computes the largest area a horse can be left with after
// placing at most k walls on open cells of a grid, without walling the
// horse itself or leaving it able to reach the grid's boundary.
package main

import (
	"context"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

// Config holds every flag enclose accepts. go-flags reads the struct tags
// below; see parseFlags.
type Config struct {
	Walls       int    `short:"k" long:"walls" default:"6" description:"maximum number of walls to place"`
	JSON        bool   `long:"json" description:"print the result as a JSON object instead of plain text"`
	File        string `long:"file" description:"read the grid from PATH instead of stdin"`
	Render      bool   `long:"render" description:"print the grid with walls ('X') and enclosure ('&') overlaid"`
	Verbose     bool   `long:"verbose" description:"enable structured debug logging of the search"`
	CPUProfile  string `long:"cpuprofile" description:"write a CPU profile to DIR while solving"`
	Interactive bool   `long:"interactive" description:"drop into an interactive REPL instead of solving once"`
}

func main() {
	cfg, args, err := parseFlags(os.Args[1:])
	if err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := newLogger(cfg.Verbose)

	if cfg.CPUProfile != "" {
		stop := startCPUProfile(cfg.CPUProfile)
		defer stop()
	}

	if cfg.Interactive {
		runRepl(cfg, logger)
		return
	}

	if err := runOnce(context.Background(), cfg, logger, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
