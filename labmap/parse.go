package labmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/patrol/gridgraph"
	"github.com/katalvlaran/patrol/guard"
)

// Map is a parsed lab map: the grid and the guard's start state.
type Map struct {
	Grid  *gridgraph.Grid
	Guard guard.Agent
}

// Parse reads a lab map from r.
func Parse(r io.Reader) (*Map, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("labmap: read: %w", err)
	}
	return ParseLines(lines)
}

// ParseString parses a lab map held in s.
func ParseString(s string) (*Map, error) {
	return Parse(strings.NewReader(s))
}

// ParseLines parses one map row per element of lines.
func ParseLines(lines []string) (*Map, error) {
	rows := make([]string, len(lines))
	for i, l := range lines {
		rows[i] = strings.TrimRight(l, " \t\r")
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	width := len([]rune(rows[0]))
	cells := make([][]gridgraph.Cell, len(rows))
	var (
		start  guard.Agent
		guards int
	)
	for y, line := range rows {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("labmap: row %d has %d tiles, want %d: %w", y, len(runes), width, ErrNonRectangular)
		}
		cells[y] = make([]gridgraph.Cell, width)
		for x, r := range runes {
			switch r {
			case '.':
				cells[y][x] = gridgraph.Open
			case '#':
				cells[y][x] = gridgraph.Obstruction
			default:
				h, ok := guard.HeadingFromRune(r)
				if !ok {
					return nil, fmt.Errorf("labmap: %q at row %d col %d: %w", r, y, x, ErrUnknownTile)
				}
				guards++
				if guards > 1 {
					return nil, fmt.Errorf("labmap: second guard at row %d col %d: %w", y, x, ErrMultipleGuards)
				}
				start = guard.New(gridgraph.Position{Row: y, Col: x}, h)
				cells[y][x] = gridgraph.Open
			}
		}
	}
	if guards == 0 {
		return nil, ErrNoGuard
	}

	g, err := gridgraph.NewGrid(cells)
	if err != nil {
		return nil, fmt.Errorf("labmap: %w", err)
	}
	return &Map{Grid: g, Guard: start}, nil
}
