package gridio

import (
	"encoding/json"
	"io"

	"github.com/so298/enclose-solver/gridgraph"
)

// JSONResult is the wire envelope for the CLI's -json mode. Error is
// omitted on success; Walls is omitted (via Area/Walls being the zero
// value) when a result never got computed.
type JSONResult struct {
	Area  int      `json:"area"`
	Walls [][2]int `json:"walls"`
	Error string   `json:"error,omitempty"`
}

// NewJSONResult builds a JSONResult from a coordinate list, ready to
// encode. A nil or empty walls slice encodes as an empty JSON array.
func NewJSONResult(area int, walls []gridgraph.Coordinate, err error) JSONResult {
	pairs := make([][2]int, len(walls))
	for i, w := range walls {
		pairs[i] = [2]int{w.Row, w.Col}
	}
	jr := JSONResult{Area: area, Walls: pairs}
	if err != nil {
		jr.Error = err.Error()
	}
	return jr
}

// Encode writes jr to w as a single JSON object.
func Encode(w io.Writer, jr JSONResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jr)
}

// Decode reads a single JSONResult from r.
func Decode(r io.Reader) (JSONResult, error) {
	var jr JSONResult
	err := json.NewDecoder(r).Decode(&jr)
	return jr, err
}
