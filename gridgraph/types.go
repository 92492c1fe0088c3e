// Package gridgraph defines core types for the gridgraph subpackage of
// github.com/katalvlaran/patrol.
package gridgraph

import "fmt"

// Cell is the kind of a single grid cell.
type Cell uint8

const (
	// Open cells can be walked through.
	Open Cell = iota
	// Obstruction cells block forward movement.
	Obstruction
)

// String returns the map rune for c.
func (c Cell) String() string {
	if c == Obstruction {
		return "#"
	}
	return "."
}

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// Add returns p shifted by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Less orders positions row-major.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is a rectangular map of cells. It is immutable once built.
// Width and Height define dimensions; cells holds the base map row-major.
// A grid derived through WithObstruction shares cells with its base and
// records the single changed cell in override.
type Grid struct {
	Width, Height int
	cells         []Cell
	override      int // row-major index turned into an Obstruction, or -1
}
