package labmap

import (
	"bufio"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/patrol/gridgraph"
	"github.com/katalvlaran/patrol/guard"
	"github.com/katalvlaran/patrol/simulate"
)

// RenderOption configures Render.
type RenderOption func(*renderOptions)

type renderOptions struct {
	visited simulate.PositionSet
	loops   map[gridgraph.Position]struct{}
	agent   *guard.Agent
	hide    bool
	color   bool
}

// WithVisited marks the cells in visited with X.
func WithVisited(visited simulate.PositionSet) RenderOption {
	return func(o *renderOptions) {
		o.visited = visited
	}
}

// WithLoops marks loop-inducing obstruction positions with O.
func WithLoops(loops []gridgraph.Position) RenderOption {
	return func(o *renderOptions) {
		o.loops = make(map[gridgraph.Position]struct{}, len(loops))
		for _, p := range loops {
			o.loops[p] = struct{}{}
		}
	}
}

// WithAgent draws a instead of the map's start guard.
func WithAgent(a guard.Agent) RenderOption {
	return func(o *renderOptions) {
		o.agent = &a
	}
}

// WithoutAgent omits the guard marker, e.g. after it left the grid.
func WithoutAgent() RenderOption {
	return func(o *renderOptions) {
		o.hide = true
	}
}

// WithColor enables or disables ANSI colours regardless of the terminal.
func WithColor(enabled bool) RenderOption {
	return func(o *renderOptions) {
		o.color = enabled
	}
}

// palette holds one colour per marker.
type palette struct {
	wall, visit, loop, agent *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		wall:  color.New(color.FgHiBlack),
		visit: color.New(color.FgYellow),
		loop:  color.New(color.FgHiMagenta, color.Bold),
		agent: color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.wall, p.visit, p.loop, p.agent} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Render writes m to w, one row per line.
func Render(w io.Writer, m *Map, opts ...RenderOption) error {
	o := renderOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	a := m.Guard
	if o.agent != nil {
		a = *o.agent
	}
	pal := newPalette(o.color)

	bw := bufio.NewWriter(w)
	g := m.Grid
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := gridgraph.Position{Row: y, Col: x}
			var s string
			_, isLoop := o.loops[p]
			switch {
			case !o.hide && p == a.Pos:
				s = pal.agent.Sprint(string(a.Heading.Rune()))
			case isLoop:
				s = pal.loop.Sprint("O")
			case g.IsObstruction(p):
				s = pal.wall.Sprint("#")
			case o.visited.Has(p):
				s = pal.visit.Sprint("X")
			default:
				s = "."
			}
			if _, err := bw.WriteString(s); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String renders m without colours or overlays.
func (m *Map) String() string {
	var sb strings.Builder
	_ = Render(&sb, m)
	return sb.String()
}
