package search

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/patrol/gridgraph"
	"github.com/katalvlaran/patrol/guard"
	"github.com/katalvlaran/patrol/simulate"
)

// Candidates returns the cells of visited that may be turned into an
// obstruction: everything except the start cell and existing obstructions,
// in row-major order.
func Candidates(grid *gridgraph.Grid, start guard.Agent, visited simulate.PositionSet) []gridgraph.Position {
	out := make([]gridgraph.Position, 0, len(visited))
	for _, p := range visited.Sorted() {
		if p == start.Pos || !grid.InBounds(p) || grid.IsObstruction(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Evaluate blocks candidate and reports how the patrol from start ends.
// Returns ErrStartCandidate (also matching gridgraph.ErrInvalidEdit) when
// candidate is the start cell.
func Evaluate(grid *gridgraph.Grid, start guard.Agent, candidate gridgraph.Position, opts ...simulate.Option) (simulate.Outcome, error) {
	if grid == nil {
		return simulate.Exited, ErrGridNil
	}
	if candidate == start.Pos {
		return simulate.Exited, fmt.Errorf("%w: %w", ErrStartCandidate, gridgraph.ErrInvalidEdit)
	}
	edited, err := grid.WithObstruction(candidate)
	if err != nil {
		return simulate.Exited, err
	}
	res, err := simulate.Simulate(edited, start, opts...)
	if err != nil {
		return simulate.Exited, err
	}
	return res.Outcome, nil
}

// Find evaluates every candidate derived from visited and collects those
// that make the patrol loop.
func Find(grid *gridgraph.Grid, start guard.Agent, visited simulate.PositionSet, opts ...Option) (Result, error) {
	if grid == nil {
		return Result{}, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cands := Candidates(grid, start, visited)
	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)
	// The group context goes last so it wins over any caller-supplied one.
	simOpts := append(append([]simulate.Option{}, o.Simulate...), simulate.WithContext(ctx))

	var (
		count     atomic.Uint64
		evaluated atomic.Int64
		mu        sync.Mutex
		loops     []gridgraph.Position
	)
	for _, c := range cands {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			out, err := Evaluate(grid, start, c, simOpts...)
			if err != nil {
				return fmt.Errorf("search: candidate %v: %w", c, err)
			}
			evaluated.Add(1)
			if out == simulate.Cycle {
				count.Add(1)
				mu.Lock()
				loops = append(loops, c)
				mu.Unlock()
			}
			if o.OnCandidate != nil {
				o.OnCandidate(c, out)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	if err := o.Ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("search: %w", err)
	}

	sort.Slice(loops, func(i, j int) bool { return loops[i].Less(loops[j]) })
	return Result{Count: count.Load(), Loops: loops, Evaluated: int(evaluated.Load())}, nil
}

// CountCycleInducingObstructions returns how many candidates derived from
// visited turn the patrol from start into a cycle.
func CountCycleInducingObstructions(grid *gridgraph.Grid, start guard.Agent, visited simulate.PositionSet, opts ...Option) (uint64, error) {
	res, err := Find(grid, start, visited, opts...)
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}

// Run simulates the unmodified patrol, requires it to exit, and searches
// its route. It returns the baseline run alongside the search result.
func Run(grid *gridgraph.Grid, start guard.Agent, opts ...Option) (simulate.Result, Result, error) {
	if grid == nil {
		return simulate.Result{}, Result{}, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	simOpts := append(append([]simulate.Option{}, o.Simulate...), simulate.WithContext(o.Ctx))
	base, err := simulate.Simulate(grid, start, simOpts...)
	if err != nil {
		return simulate.Result{}, Result{}, fmt.Errorf("search: baseline: %w", err)
	}
	if base.Outcome != simulate.Exited {
		return base, Result{}, ErrBaselineCycle
	}
	res, err := Find(grid, start, base.Visited, opts...)
	if err != nil {
		return base, Result{}, err
	}
	return base, res, nil
}
