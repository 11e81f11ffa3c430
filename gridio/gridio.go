package gridio

import (
	"bufio"
	"io"
	"strings"

	"github.com/so298/enclose-solver/gridgraph"
)

// ParseGrid reads r line by line, strips a trailing '\r' from each line
// (tolerating CRLF input), and drops blank lines. It returns ErrEmptyGrid
// if no non-blank line remains.
// Complexity: O(size of r).
func ParseGrid(r io.Reader) ([]string, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	return rows, nil
}

// ValidateShape reports gridgraph.ErrInvalidGridShape if grid's rows are
// not all the same length. It is a convenience for callers that want to
// fail fast before the rest of the solve pipeline runs.
func ValidateShape(grid []string) error {
	if len(grid) == 0 {
		return nil
	}
	width := len(grid[0])
	for _, row := range grid {
		if len(row) != width {
			return gridgraph.ErrInvalidGridShape
		}
	}
	return nil
}

// ValidateAlphabet reports gridgraph.ErrInvalidCharacter if any byte in
// grid falls outside {'.', '#', 'H'}.
func ValidateAlphabet(grid []string) error {
	for _, row := range grid {
		for i := 0; i < len(row); i++ {
			ch := row[i]
			if ch != '.' && ch != '#' && ch != 'H' {
				return gridgraph.ErrInvalidCharacter
			}
		}
	}
	return nil
}

// Render overlays an 'X' at each wall coordinate onto a copy of grid, then
// flood-fills from 'H' over {'.', 'H'} cells (blocked by 'X' and '#'),
// marking every reached '.' cell as '&'. The result visualizes both the
// wall placement and the horse's resulting enclosure.
func Render(grid []string, walls []gridgraph.Coordinate) []string {
	rows := len(grid)
	cols := 0
	if rows > 0 {
		cols = len(grid[0])
	}

	board := make([][]byte, rows)
	for r, row := range grid {
		board[r] = []byte(row)
	}
	for _, w := range walls {
		if w.Row >= 0 && w.Row < rows && w.Col >= 0 && w.Col < cols {
			board[w.Row][w.Col] = 'X'
		}
	}

	hr, hc := -1, -1
	for r := 0; r < rows && hr == -1; r++ {
		for c := 0; c < cols; c++ {
			if board[r][c] == 'H' {
				hr, hc = r, c
				break
			}
		}
	}
	if hr != -1 {
		visited := make(map[[2]int]bool)
		queue := [][2]int{{hr, hc}}
		visited[[2]int{hr, hc}] = true
		deltas := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
		for qi := 0; qi < len(queue); qi++ {
			r, c := queue[qi][0], queue[qi][1]
			for _, d := range deltas {
				nr, nc := r+d[0], c+d[1]
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					continue
				}
				ch := board[nr][nc]
				if ch != '.' && ch != 'H' {
					continue
				}
				key := [2]int{nr, nc}
				if visited[key] {
					continue
				}
				visited[key] = true
				queue = append(queue, key)
				if ch == '.' {
					board[nr][nc] = '&'
				}
			}
		}
	}

	out := make([]string, rows)
	for r, row := range board {
		out[r] = string(row)
	}
	return out
}
