package gridgraph

import "fmt"

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	flat := make([]Cell, 0, w*h)
	for y, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
		flat = append(flat, row...)
	}

	return &Grid{Width: w, Height: h, cells: flat, override: -1}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Col >= 0 && p.Col < g.Width && p.Row >= 0 && p.Row < g.Height
}

// CellAt returns the cell at p, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) CellAt(p Position) (Cell, error) {
	if !g.InBounds(p) {
		return Open, fmt.Errorf("%v in %dx%d grid: %w", p, g.Width, g.Height, ErrOutOfBounds)
	}

	return g.at(g.Index(p)), nil
}

// IsObstruction reports whether p is an in-bounds Obstruction.
func (g *Grid) IsObstruction(p Position) bool {
	return g.InBounds(p) && g.at(g.Index(p)) == Obstruction
}

func (g *Grid) at(i int) Cell {
	if i == g.override {
		return Obstruction
	}
	return g.cells[i]
}

// WithObstruction returns a grid equal to g except that the cell at p is an
// Obstruction. The result shares storage with g; neither is mutated.
// Returns ErrOutOfBounds for a position outside the grid and ErrInvalidEdit
// when p already holds an Obstruction.
// Complexity: O(1).
func (g *Grid) WithObstruction(p Position) (*Grid, error) {
	c, err := g.CellAt(p)
	if err != nil {
		return nil, err
	}
	if c == Obstruction {
		return nil, fmt.Errorf("%v already blocked: %w", p, ErrInvalidEdit)
	}
	if g.override >= 0 {
		// Fold the previous override into a private copy so every grid
		// carries at most one override.
		flat := make([]Cell, len(g.cells))
		copy(flat, g.cells)
		flat[g.override] = Obstruction
		return &Grid{Width: g.Width, Height: g.Height, cells: flat, override: g.Index(p)}, nil
	}

	return &Grid{Width: g.Width, Height: g.Height, cells: g.cells, override: g.Index(p)}, nil
}

// Obstructions counts Obstruction cells.
// Complexity: O(W×H).
func (g *Grid) Obstructions() int {
	n := 0
	for i := range g.cells {
		if g.at(i) == Obstruction {
			n++
		}
	}
	return n
}

// Rows returns a deep copy of the grid as a 2D slice.
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.Height)
	for y := 0; y < g.Height; y++ {
		rows[y] = make([]Cell, g.Width)
		for x := 0; x < g.Width; x++ {
			rows[y][x] = g.at(y*g.Width + x)
		}
	}
	return rows
}

// Index maps p to a row‑major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.Width + p.Col
}

// Coordinate converts a row‑major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.Width, Col: idx % g.Width}
}
