package guard

import "github.com/katalvlaran/patrol/gridgraph"

// Heading is the direction the agent faces.
type Heading uint8

// Headings in clockwise order; TurnRight relies on this ordering.
const (
	North Heading = iota
	East
	South
	West
)

// NumHeadings is the number of distinct headings.
const NumHeadings = 4

// Delta is a unit displacement in (row, col).
type Delta struct {
	DRow, DCol int
}

var deltas = [NumHeadings]Delta{
	North: {DRow: -1},
	East:  {DCol: 1},
	South: {DRow: 1},
	West:  {DCol: -1},
}

var runes = [NumHeadings]rune{North: '^', East: '>', South: 'v', West: '<'}

// Forward returns the unit delta for h. North decreases the row.
func Forward(h Heading) Delta {
	return deltas[h&3]
}

// TurnRight returns the heading 90° clockwise of h.
func TurnRight(h Heading) Heading {
	return (h + 1) % NumHeadings
}

// Rune returns the map marker for h.
func (h Heading) Rune() rune {
	return runes[h&3]
}

func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

// HeadingFromRune parses a map marker (^ > v <).
func HeadingFromRune(r rune) (Heading, bool) {
	for h, m := range runes {
		if m == r {
			return Heading(h), true
		}
	}
	return North, false
}

// Agent is a position plus heading.
type Agent struct {
	Pos     gridgraph.Position
	Heading Heading
}

// New returns an agent at pos facing h.
func New(pos gridgraph.Position, h Heading) Agent {
	return Agent{Pos: pos, Heading: h}
}

// Ahead returns the cell directly in front of the agent. It may lie
// outside the grid.
func (a Agent) Ahead() gridgraph.Position {
	d := Forward(a.Heading)
	return a.Pos.Add(d.DRow, d.DCol)
}

// Turned returns a copy of a rotated 90° clockwise in place.
func (a Agent) Turned() Agent {
	return Agent{Pos: a.Pos, Heading: TurnRight(a.Heading)}
}

// Moved returns a copy of a advanced one cell along its heading.
func (a Agent) Moved() Agent {
	return Agent{Pos: a.Ahead(), Heading: a.Heading}
}
