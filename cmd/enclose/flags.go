package main

import (
	flags "github.com/jessevdk/go-flags"
)

// parseFlags parses os.Args[1:] into a Config, returning any positional
// arguments go-flags left over (unused today, reserved for a future
// positional grid-file argument).
func parseFlags(argv []string) (*Config, []string, error) {
	cfg := &Config{}
	parser := flags.NewParser(cfg, flags.Default)
	rest, err := parser.ParseArgs(argv)
	if err != nil {
		return nil, nil, err
	}
	return cfg, rest, nil
}
