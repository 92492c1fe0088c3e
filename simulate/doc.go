// Package simulate drives the patrolling agent across a gridgraph.Grid one
// step at a time and classifies the run as either leaving the grid or
// looping forever.
//
// Step rule (evaluated while the run is Running):
//
//  1. next := cell ahead of the agent.
//  2. next outside the grid       → Exited (terminal).
//  3. next is an Obstruction      → turn right in place; nothing recorded.
//     A fourth consecutive in-place turn brings the agent back to the state
//     it started turning from → CycleDetected (terminal).
//  4. otherwise record the edge (position, heading) before moving.
//     The edge was recorded earlier → CycleDetected (terminal).
//     Else move onto next and mark it visited.
//
// Movement is a deterministic function of (position, heading), so a repeated
// edge proves the run repeats forever. At most W×H×4 edges exist, which
// bounds every run; WithMaxSteps adds an explicit ceiling on top.
//
// Lifecycle (Running → Exited | CycleDetected) is held by a statekit
// interpreter. State, Step and the Result's Outcome all read it, and its
// final states ignore further events, so a finished run stays finished.
//
// Complexity:
//
//   - Time:   O(S) for S steps, S ≤ 16×W×H + O(1).
//   - Memory: O(W×H) for the visited and edge bitmaps.
package simulate
