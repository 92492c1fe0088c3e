// Package labmap reads the textual lab map into a gridgraph.Grid plus the
// guard's start state, and writes grids back out as text.
//
// Map alphabet:
//
//	.        open floor
//	#        obstruction
//	^ > v <  open floor holding the guard, facing N, E, S or W
//
// Exactly one guard marker must appear. Rows must share one length after
// trailing whitespace is trimmed; trailing blank lines are ignored.
//
// Rendering adds two markers on top of the alphabet above:
//
//	X  a cell the guard visited
//	O  an obstruction that would trap the guard in a loop
package labmap
