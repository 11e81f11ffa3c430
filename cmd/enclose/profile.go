package main

import "github.com/pkg/profile"

// startCPUProfile begins writing a CPU profile under dir (cpu.pprof) and
// returns a func that stops it. dir is created by pkg/profile if needed.
func startCPUProfile(dir string) func() {
	p := profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.NoShutdownHook)
	return p.Stop
}
