package guard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/gridgraph"
	"github.com/katalvlaran/patrol/guard"
)

// TestTurnRight walks a full clockwise revolution.
func TestTurnRight(t *testing.T) {
	a := guard.New(gridgraph.Position{Row: 1, Col: 1}, guard.North)
	want := []guard.Heading{guard.East, guard.South, guard.West, guard.North}
	for _, h := range want {
		a = a.Turned()
		require.Equal(t, h, a.Heading)
	}
	require.Equal(t, gridgraph.Position{Row: 1, Col: 1}, a.Pos, "turning must not move the agent")
}

// TestForward checks each unit delta and that opposite headings cancel.
func TestForward(t *testing.T) {
	require.Equal(t, guard.Delta{DRow: -1}, guard.Forward(guard.North))
	require.Equal(t, guard.Delta{DCol: 1}, guard.Forward(guard.East))
	require.Equal(t, guard.Delta{DRow: 1}, guard.Forward(guard.South))
	require.Equal(t, guard.Delta{DCol: -1}, guard.Forward(guard.West))

	for h := guard.North; h < guard.NumHeadings; h++ {
		d := guard.Forward(h)
		back := guard.Forward(guard.TurnRight(guard.TurnRight(h)))
		require.Equal(t, 0, d.DRow+back.DRow, "heading %v", h)
		require.Equal(t, 0, d.DCol+back.DCol, "heading %v", h)
	}
}

// TestAheadAndMoved checks that Ahead may leave the grid and Moved keeps the heading.
func TestAheadAndMoved(t *testing.T) {
	a := guard.New(gridgraph.Position{}, guard.North)
	require.Equal(t, gridgraph.Position{Row: -1, Col: 0}, a.Ahead())

	b := guard.New(gridgraph.Position{Row: 2, Col: 3}, guard.West).Moved()
	require.Equal(t, guard.New(gridgraph.Position{Row: 2, Col: 2}, guard.West), b)
}

// TestHeadingRunes round-trips the four markers and rejects others.
func TestHeadingRunes(t *testing.T) {
	for _, r := range "^>v<" {
		h, ok := guard.HeadingFromRune(r)
		require.True(t, ok, "rune %q", r)
		require.Equal(t, r, h.Rune())
	}
	_, ok := guard.HeadingFromRune('#')
	require.False(t, ok)
	require.Equal(t, "west", guard.West.String())
}
