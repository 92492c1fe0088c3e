package logging

import (
	"sync/atomic"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/katalvlaran/patrol/gridgraph"
	"github.com/katalvlaran/patrol/simulate"
)

// StepTracer returns a simulator trace sink that logs every step at trace
// level.
func StepTracer(l *bolt.Logger) func(simulate.StepEvent) {
	return func(ev simulate.StepEvent) {
		With(l.Trace(), Component("simulate"), Agent(ev.To)).
			Int("step", ev.Step).
			Str("action", ev.Action.String()).
			Msg("step")
	}
}

// CandidateProgress returns a search progress hook that logs each
// evaluated candidate at debug level with a running count. It is safe for
// concurrent use.
func CandidateProgress(l *bolt.Logger, total int) func(gridgraph.Position, simulate.Outcome) {
	var done atomic.Int64
	return func(p gridgraph.Position, o simulate.Outcome) {
		n := done.Add(1)
		With(l.Debug(), Component("search"), Position("candidate", p), Outcome(o)).
			Int64("done", n).
			Int("total", total).
			Msg("candidate evaluated")
	}
}
