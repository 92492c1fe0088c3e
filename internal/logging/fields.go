package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/katalvlaran/patrol/gridgraph"
	"github.com/katalvlaran/patrol/guard"
	"github.com/katalvlaran/patrol/simulate"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// With applies fields to e in order.
func With(e *bolt.Event, fields ...Field) *bolt.Event {
	for _, f := range fields {
		e = f(e)
	}
	return e
}

// Position adds row and col fields under prefix.
func Position(prefix string, p gridgraph.Position) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int(prefix+"_row", p.Row).Int(prefix+"_col", p.Col)
	}
}

// Agent adds the agent's position and heading.
func Agent(a guard.Agent) Field {
	return func(e *bolt.Event) *bolt.Event {
		return Position("pos", a.Pos)(e).Str("heading", a.Heading.String())
	}
}

// Outcome adds an outcome field.
func Outcome(o simulate.Outcome) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("outcome", o.String())
	}
}

// Grid adds the grid dimensions.
func Grid(g *gridgraph.Grid) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("width", g.Width).Int("height", g.Height).Int("obstructions", g.Obstructions())
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// Component adds a component field for categorization.
func Component(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("component", name)
	}
}
