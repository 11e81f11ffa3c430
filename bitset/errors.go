package bitset

import "errors"

// ErrWidthMismatch indicates two bitsets of differing width were combined.
var ErrWidthMismatch = errors.New("bitset: width mismatch")
