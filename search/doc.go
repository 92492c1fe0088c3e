// Package search counts the single-cell obstructions that trap the guard in
// an endless patrol.
//
// Only cells on the guard's original route can change its outcome: an
// obstruction anywhere else is never reached. So the candidate universe is
// the visited set of the unmodified run, minus the start cell (the guard is
// standing there) and minus existing obstructions.
//
// Each candidate is evaluated independently on its own one-cell override of
// the grid with a fresh simulator, which makes the search an embarrassingly
// parallel map-reduce. Candidates are fanned out over a bounded errgroup;
// the first simulator error cancels the rest and is returned.
//
// Complexity:
//
//   - Time:   O(V·S) for V candidates and S steps per run, divided by workers.
//   - Memory: O(workers·W·H) for the per-run bitmaps.
package search
