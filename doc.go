// Package patrol simulates a lab guard walking a 2D map and finds the
// places where one extra obstruction would trap the guard forever.
//
// 🚀 What is patrol?
//
//	A small, deterministic simulation toolkit:
//		• Grid storage with O(1) single-cell "what if" edits
//		• A step-by-step simulator with exact cycle detection
//		• A parallel search over every cell on the guard's route
//		• A text map reader/renderer and a CLI on top
//
// ✨ Rules of the patrol
//
//   - The guard walks straight ahead.
//   - Something blocking the way makes the guard turn right, in place.
//   - Stepping off the map ends the patrol.
//   - Returning to a cell already left in the same heading means the
//     patrol repeats forever.
//
// Under the hood, everything is organized in subpackages:
//
//	gridgraph/ - Grid, Cell, Position; bounds checks and obstruction overrides
//	guard/     - Heading and Agent movement arithmetic
//	simulate/  - the step state machine, visited cells and edges, Outcome
//	search/    - loop-inducing obstruction search (errgroup fan-out)
//	labmap/    - text map parsing and rendering
//	cmd/patrol - the command-line front end
//
// Quick ASCII example:
//
//	.#....
//	.^...#
//	#.....
//	....#.
//
// traps the guard in a rectangle: up is blocked, so it turns east, runs to
// the wall, and keeps turning until it is back where it started, facing east.
//
//	go install github.com/katalvlaran/patrol/cmd/patrol@latest
package patrol
