package labmap

import (
	"errors"

	"github.com/katalvlaran/patrol/gridgraph"
)

var (
	// ErrEmptyInput indicates the input holds no map rows.
	ErrEmptyInput = errors.New("labmap: empty input")
	// ErrUnknownTile indicates a rune outside the map alphabet.
	ErrUnknownTile = errors.New("labmap: unknown tile")
	// ErrNoGuard indicates the map has no guard marker.
	ErrNoGuard = errors.New("labmap: no guard on map")
	// ErrMultipleGuards indicates more than one guard marker.
	ErrMultipleGuards = errors.New("labmap: more than one guard on map")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = gridgraph.ErrNonRectangular
)
