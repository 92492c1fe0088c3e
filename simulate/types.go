package simulate

import (
	"context"
	"errors"
	"sort"

	"github.com/katalvlaran/patrol/gridgraph"
	"github.com/katalvlaran/patrol/guard"
)

// Sentinel errors for simulation.
var (
	// ErrGridNil is returned when a nil grid is passed to New.
	ErrGridNil = errors.New("simulate: grid is nil")

	// ErrAgentOutOfBounds indicates the start position lies outside the grid.
	ErrAgentOutOfBounds = errors.New("simulate: agent starts out of bounds")

	// ErrAgentBlocked indicates the start position is an Obstruction.
	ErrAgentBlocked = errors.New("simulate: agent starts on an obstruction")

	// ErrStepLimit is returned when a run exceeds its step ceiling without
	// terminating. The step rule guarantees termination, so hitting it is a bug.
	ErrStepLimit = errors.New("simulate: step limit exceeded")

	// ErrInternal wraps invariant violations inside the step loop.
	ErrInternal = errors.New("simulate: internal invariant violated")
)

// State is the lifecycle state of a run.
type State uint8

const (
	// StateRunning: the agent is still on the grid.
	StateRunning State = iota
	// StateExited: the agent stepped off the grid.
	StateExited
	// StateCycleDetected: the agent repeated a (position, heading) state.
	StateCycleDetected
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateExited:
		return "exited"
	case StateCycleDetected:
		return "cycle_detected"
	}
	return "unknown"
}

// Outcome is the terminal classification of a run.
type Outcome uint8

const (
	// Exited means the agent left the grid.
	Exited Outcome = iota
	// Cycle means the agent would patrol forever.
	Cycle
)

func (o Outcome) String() string {
	if o == Cycle {
		return "cycle"
	}
	return "exited"
}

// Edge is a (position, heading) pair recorded the instant before a move.
type Edge struct {
	Pos     gridgraph.Position
	Heading guard.Heading
}

// Action is what a single step did.
type Action uint8

const (
	// ActionMove: the agent stepped onto the cell ahead.
	ActionMove Action = iota
	// ActionTurn: blocked ahead, the agent turned right in place.
	ActionTurn
	// ActionExit: the cell ahead is off the grid; the run ended.
	ActionExit
	// ActionCycle: the agent repeated a state; the run ended.
	ActionCycle
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionTurn:
		return "turn"
	case ActionExit:
		return "exit"
	case ActionCycle:
		return "cycle"
	}
	return "unknown"
}

// StepEvent describes one step for the OnStep trace sink.
type StepEvent struct {
	Step   int         // 1-based step number
	Action Action      // what happened
	From   guard.Agent // agent before the step
	To     guard.Agent // agent after the step
}

// PositionSet is a set of grid positions.
type PositionSet map[gridgraph.Position]struct{}

// Has reports whether p is in the set.
func (s PositionSet) Has(p gridgraph.Position) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of positions in the set.
func (s PositionSet) Len() int { return len(s) }

// Sorted returns the positions in row-major order.
func (s PositionSet) Sorted() []gridgraph.Position {
	out := make([]gridgraph.Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Result captures a finished run.
type Result struct {
	// Outcome is the terminal classification.
	Outcome Outcome

	// Visited holds every cell the agent occupied, start included.
	Visited PositionSet

	// Steps counts calls to Step that did work, including the terminal one.
	Steps int

	// Moves and Turns split Steps by action; the terminal step is in neither.
	Moves, Turns int

	// Final is the agent state when the run ended. For Exited it is the
	// last in-bounds state.
	Final guard.Agent

	// Trail lists recorded edges in order. Only filled with WithTrail.
	// When a repeated edge ends the run it is appended last.
	Trail []Edge
}

// Option configures a Simulator.
type Option func(*Options)

// Options holds configurable parameters for a run.
type Options struct {
	// Ctx allows cancellation; checked periodically in the step loop.
	Ctx context.Context

	// OnStep, if non-nil, is invoked after every step.
	OnStep func(StepEvent)

	// MaxSteps caps the number of steps. Zero derives the ceiling from the
	// grid size.
	MaxSteps int

	// Trail records the ordered edge sequence in Result.Trail.
	Trail bool
}

// DefaultOptions returns Options with:
//   - Background context
//   - no trace sink
//   - grid-derived step ceiling
//   - no trail recording
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnStep:   nil,
		MaxSteps: 0,
		Trail:    false,
	}
}

// WithContext sets the context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep installs fn as the per-step trace sink.
func WithOnStep(fn func(StepEvent)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithMaxSteps sets an explicit step ceiling. Non-positive values restore
// the grid-derived default.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxSteps = n
	}
}

// WithTrail enables recording of the ordered edge sequence.
func WithTrail() Option {
	return func(o *Options) {
		o.Trail = true
	}
}
