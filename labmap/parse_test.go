package labmap_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/gridgraph"
	"github.com/katalvlaran/patrol/guard"
	"github.com/katalvlaran/patrol/labmap"
)

// TestParse_Small loads the 3×2 map and checks cells and guard.
func TestParse_Small(t *testing.T) {
	m, err := labmap.ParseString(".#.\n.^.\n")
	require.NoError(t, err)
	require.Equal(t, 3, m.Grid.Width)
	require.Equal(t, 2, m.Grid.Height)
	require.Equal(t, [][]gridgraph.Cell{
		{gridgraph.Open, gridgraph.Obstruction, gridgraph.Open},
		{gridgraph.Open, gridgraph.Open, gridgraph.Open},
	}, m.Grid.Rows())
	require.Equal(t, guard.New(gridgraph.Position{Row: 1, Col: 1}, guard.North), m.Guard)
}

// TestParse_Headings reads each guard marker.
func TestParse_Headings(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want guard.Heading
	}{
		{"..^", guard.North},
		{"..>", guard.East},
		{"..v", guard.South},
		{"..<", guard.West},
	} {
		m, err := labmap.ParseString(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, m.Guard.Heading, tc.in)
		require.Equal(t, gridgraph.Position{Row: 0, Col: 2}, m.Guard.Pos, tc.in)
	}
}

// TestParse_Whitespace trims trailing blanks and CRLF endings.
func TestParse_Whitespace(t *testing.T) {
	m, err := labmap.ParseString("..#  \r\n.^.\r\n\n\n")
	require.NoError(t, err)
	require.Equal(t, 3, m.Grid.Width)
	require.Equal(t, 2, m.Grid.Height)
}

// TestParse_Errors covers every load-time failure.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", labmap.ErrEmptyInput},
		{"BlankOnly", "\n\n", labmap.ErrEmptyInput},
		{"NoGuard", "...\n.#.\n", labmap.ErrNoGuard},
		{"TwoGuards", "^..\n..>\n", labmap.ErrMultipleGuards},
		{"Ragged", "...\n.^\n", labmap.ErrNonRectangular},
		{"UnknownTile", "..x\n.^.\n", labmap.ErrUnknownTile},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := labmap.ParseString(tc.in)
			if !errors.Is(err, tc.err) {
				t.Errorf("ParseString(%q) error = %v; want %v", tc.in, err, tc.err)
			}
		})
	}
	require.True(t, errors.Is(labmap.ErrNonRectangular, gridgraph.ErrNonRectangular))
}

// TestParseLines matches ParseString on the joined input.
func TestParseLines(t *testing.T) {
	lines := []string{".#....", ".^...#", "#.....", "....#."}
	a, err := labmap.ParseLines(lines)
	require.NoError(t, err)
	b, err := labmap.ParseString(strings.Join(lines, "\n"))
	require.NoError(t, err)
	require.Equal(t, a.Grid.Rows(), b.Grid.Rows())
	require.Equal(t, a.Guard, b.Guard)
}
