// Package gridgraph stores a rectangular 2D map of cells for the patrol
// simulator and answers bounds-checked lookups against it.
//
// What:
//
//   - Grid wraps a rectangular map of Open and Obstruction cells.
//   - Position addresses a cell by (Row, Col); Row grows southwards.
//   - WithObstruction derives a grid that differs from its base in one cell,
//     sharing the base storage instead of copying it.
//
// Why:
//
//   - The obstruction search re-runs the simulator once per candidate cell.
//     A per-candidate deep copy costs O(W×H); the override costs O(1).
//
// Complexity:
//
//   - NewGrid:         O(W×H) time and memory.
//   - CellAt, InBounds: O(1).
//   - WithObstruction: O(1) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: position lies outside [0,Height)×[0,Width).
//   - ErrInvalidEdit: the requested edit would not change the grid.
package gridgraph
