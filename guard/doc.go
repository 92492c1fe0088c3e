// Package guard holds the movement arithmetic of the patrolling agent:
// a Position on the grid, a Heading, and the two moves the agent can make.
//
// The agent never inspects the grid itself; it only knows the cell ahead of
// it and how to turn. Deciding between the two is the simulator's job.
//
//	      North (^)
//	West (<)  +  East (>)
//	      South (v)
//
// Turning is always clockwise: North → East → South → West → North.
package guard
