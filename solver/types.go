package solver

import "github.com/so298/enclose-solver/gridgraph"

// Coordinate is a (row, col) position in the original grid.
type Coordinate = gridgraph.Coordinate

// Result is the outcome of a Solve call: the largest reachable area the
// horse can be left with, and the wall placements that achieve it, sorted
// lexicographically by (Row, Col).
type Result struct {
	Area  int
	Walls []Coordinate
}

// Logger is the subset of logrus.Logger's interface solver needs for trace
// logging. Solve's default options use a no-op implementation, so passing
// WithLogger is always optional.
type Logger interface {
	Debugf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}

// options collects the values every Option mutates. Not exported: callers
// only ever see the Option constructors below.
type options struct {
	logger    Logger
	nodeLimit int
}

func defaultOptions() *options {
	return &options{
		logger:    noopLogger{},
		nodeLimit: 0,
	}
}

// Option configures a Solve call. See WithLogger and WithNodeLimit.
type Option func(*options)

// WithLogger attaches a structured logger (e.g. *logrus.Logger) that
// receives periodic search-progress trace lines at debug level.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithNodeLimit caps the number of dfs nodes Solve will visit before giving
// up and returning its best candidate so far alongside ErrNodeLimitReached.
// A limit of 0 (the default) means unbounded.
func WithNodeLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.nodeLimit = n
		}
	}
}
