package simulate

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"

	"github.com/katalvlaran/patrol/gridgraph"
	"github.com/katalvlaran/patrol/guard"
)

// ctxCheckMask sets how often the step loop polls the context.
const ctxCheckMask = 1<<10 - 1

// Simulator owns the mutable state of a single run: the agent, the visited
// cells and the recorded edges. The grid is only read.
type Simulator struct {
	grid  *gridgraph.Grid
	start guard.Agent
	agent guard.Agent
	opts  Options
	life  *runLifecycle

	visited  []bool  // per cell index
	nVisited int
	edges    []uint8 // per cell index, bit h set when (cell, h) was recorded

	inPlace     int // consecutive turns without moving
	steps       int
	moves       int
	turns       int
	maxSteps    int
	trail       []Edge
	resultCache *Result
}

// New prepares a run of agent over grid. The start cell is marked visited.
// Returns ErrGridNil, ErrAgentOutOfBounds or ErrAgentBlocked for unusable
// inputs.
func New(grid *gridgraph.Grid, agent guard.Agent, opts ...Option) (*Simulator, error) {
	if grid == nil {
		return nil, ErrGridNil
	}
	c, err := grid.CellAt(agent.Pos)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAgentOutOfBounds, err)
	}
	if c == gridgraph.Obstruction {
		return nil, fmt.Errorf("%w: %v", ErrAgentBlocked, agent.Pos)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	life, err := startLifecycle()
	if err != nil {
		return nil, err
	}

	n := grid.Width * grid.Height
	s := &Simulator{
		grid:     grid,
		start:    agent,
		agent:    agent,
		opts:     o,
		life:     life,
		visited:  make([]bool, n),
		edges:    make([]uint8, n),
		maxSteps: o.MaxSteps,
	}
	if s.maxSteps == 0 {
		// Every move consumes a fresh edge (≤ 4n), each is preceded by at
		// most three turns, plus the terminal step.
		s.maxSteps = 4*guard.NumHeadings*n + guard.NumHeadings
	}
	s.visit(agent.Pos)

	return s, nil
}

// Simulate runs agent over grid to completion.
func Simulate(grid *gridgraph.Grid, agent guard.Agent, opts ...Option) (Result, error) {
	s, err := New(grid, agent, opts...)
	if err != nil {
		return Result{}, err
	}
	return s.Run()
}

// State returns the current lifecycle state.
func (s *Simulator) State() State { return s.life.state() }

// Agent returns the current agent.
func (s *Simulator) Agent() guard.Agent { return s.agent }

// Step advances the run by one step and returns the resulting state.
// Calling Step on a finished run is a no-op.
func (s *Simulator) Step() (State, error) {
	if st := s.life.state(); st != StateRunning {
		return st, nil
	}
	if s.steps >= s.maxSteps {
		return StateRunning, fmt.Errorf("%w: %d steps from %v", ErrStepLimit, s.steps, s.start)
	}
	if s.steps&ctxCheckMask == 0 {
		if err := s.opts.Ctx.Err(); err != nil {
			return StateRunning, fmt.Errorf("simulate: %w", err)
		}
	}
	s.steps++
	from := s.agent
	next := from.Ahead()

	// 1) Leaving the grid.
	if !s.grid.InBounds(next) {
		return s.terminate(eventExit, ActionExit, from)
	}
	cell, err := s.grid.CellAt(next)
	if err != nil {
		return StateRunning, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 2) Blocked: turn in place. Boxed in on all four sides, the next turn
	// would restore the state the agent started turning from.
	if cell == gridgraph.Obstruction {
		if s.inPlace == guard.NumHeadings-1 {
			return s.terminate(eventCycle, ActionCycle, from)
		}
		s.agent = from.Turned()
		s.turns++
		s.inPlace++
		s.emit(ActionTurn, from)
		return StateRunning, nil
	}

	// 3) Open: record the edge, then move.
	s.inPlace = 0
	idx := s.grid.Index(from.Pos)
	bit := uint8(1) << from.Heading
	if s.opts.Trail {
		s.trail = append(s.trail, Edge{Pos: from.Pos, Heading: from.Heading})
	}
	if s.edges[idx]&bit != 0 {
		return s.terminate(eventCycle, ActionCycle, from)
	}
	s.edges[idx] |= bit
	s.agent = from.Moved()
	s.moves++
	s.visit(s.agent.Pos)
	s.emit(ActionMove, from)

	return StateRunning, nil
}

// Run steps until the run terminates and returns its result.
// Calling Run again returns the same result.
func (s *Simulator) Run() (Result, error) {
	for {
		st, err := s.Step()
		if err != nil {
			return Result{}, err
		}
		if st != StateRunning {
			break
		}
	}
	return s.result(), nil
}

func (s *Simulator) terminate(event statekit.EventType, a Action, from guard.Agent) (State, error) {
	st, err := s.life.finish(event)
	if err != nil {
		return st, err
	}
	s.emit(a, from)
	return st, nil
}

func (s *Simulator) visit(p gridgraph.Position) {
	i := s.grid.Index(p)
	if !s.visited[i] {
		s.visited[i] = true
		s.nVisited++
	}
}

func (s *Simulator) emit(a Action, from guard.Agent) {
	if s.opts.OnStep == nil {
		return
	}
	s.opts.OnStep(StepEvent{Step: s.steps, Action: a, From: from, To: s.agent})
}

func (s *Simulator) result() Result {
	if s.resultCache != nil {
		return *s.resultCache
	}
	visited := make(PositionSet, s.nVisited)
	for i, ok := range s.visited {
		if ok {
			visited[s.grid.Coordinate(i)] = struct{}{}
		}
	}
	r := Result{
		Outcome: s.life.outcome(),
		Visited: visited,
		Steps:   s.steps,
		Moves:   s.moves,
		Turns:   s.turns,
		Final:   s.agent,
		Trail:   s.trail,
	}
	s.resultCache = &r
	return r
}
