package main

import "github.com/sirupsen/logrus"

// newLogger returns a logrus.Logger at debug level when verbose is set,
// info level otherwise, satisfying solver.Logger either way.
func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
