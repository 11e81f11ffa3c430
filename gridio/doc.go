// Package gridio handles the external concerns around a grid: reading it
// from a newline-delimited text buffer, rendering a solved enclosure back
// to text, and the JSON transport envelope used by the CLI's -json mode.
// None of it is part of the optimization core; it exists so cmd/enclose
// doesn't have to know about io.Reader framing or ASCII art.
package gridio
