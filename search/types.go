package search

import (
	"context"
	"errors"
	"runtime"

	"github.com/katalvlaran/patrol/gridgraph"
	"github.com/katalvlaran/patrol/simulate"
)

// Sentinel errors for the obstruction search.
var (
	// ErrGridNil is returned when a nil grid is passed in.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrBaselineCycle indicates the unmodified patrol already loops, so
	// there is no exiting route to perturb.
	ErrBaselineCycle = errors.New("search: baseline patrol does not exit")

	// ErrStartCandidate indicates an attempt to block the guard's start cell.
	ErrStartCandidate = errors.New("search: candidate is the guard's start cell")
)

// Result summarises a search.
type Result struct {
	// Count is the number of candidates that produce a cycle.
	Count uint64

	// Loops lists those candidates in row-major order.
	Loops []gridgraph.Position

	// Evaluated is the number of candidates simulated.
	Evaluated int
}

// Option configures a search.
type Option func(*Options)

// Options holds configurable parameters for a search.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Workers bounds concurrent simulations; defaults to GOMAXPROCS.
	Workers int

	// OnCandidate, if non-nil, is called once per evaluated candidate.
	// It may be called from several goroutines at once.
	OnCandidate func(p gridgraph.Position, o simulate.Outcome)

	// Simulate is passed to every simulator run.
	Simulate []simulate.Option
}

// DefaultOptions returns Options with a background context, one worker per
// available CPU, no progress hook and default simulator options.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
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

// WithWorkers bounds concurrency. Values below 1 keep the default.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithOnCandidate installs a progress hook.
func WithOnCandidate(fn func(p gridgraph.Position, o simulate.Outcome)) Option {
	return func(o *Options) {
		o.OnCandidate = fn
	}
}

// WithSimulateOptions forwards opts to every simulator run.
func WithSimulateOptions(opts ...simulate.Option) Option {
	return func(o *Options) {
		o.Simulate = append(o.Simulate, opts...)
	}
}
