package simulate

import (
	"fmt"
	"sync"

	"github.com/felixgeelhaar/statekit"
)

// Lifecycle state IDs as StateID type for statekit.
const (
	stateRunning statekit.StateID = "running"
	stateExited  statekit.StateID = "exited"
	stateCycle   statekit.StateID = "cycle_detected"
)

// Terminal events.
const (
	eventExit  statekit.EventType = "EXIT"
	eventCycle statekit.EventType = "CYCLE"
)

// lifecycle is the statekit context of one run.
type lifecycle struct {
	terminal statekit.EventType
}

// recordTerminal stores the event that ended the run.
// statekit hands actions a pointer to the context, hence **lifecycle.
func recordTerminal(ctx **lifecycle, event statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	(*ctx).terminal = event.Type
}

// newLifecycleMachine builds the run statechart:
//
//	running --EXIT--> exited (final)
//	running --CYCLE-> cycle_detected (final)
func newLifecycleMachine() (*statekit.MachineConfig[*lifecycle], error) {
	return statekit.NewMachine[*lifecycle]("patrol").
		WithInitial(stateRunning).
		WithContext(&lifecycle{}).
		WithAction("recordTerminal", recordTerminal).
		State(stateRunning).
			On(eventExit).Target(stateExited).Do("recordTerminal").
			On(eventCycle).Target(stateCycle).Do("recordTerminal").
			Done().
		State(stateExited).
			Final().
			Done().
		State(stateCycle).
			Final().
			Done().
		Build()
}

// lifecycleMachine is shared by every run; interpreters only read it.
var lifecycleMachine = sync.OnceValues(newLifecycleMachine)

// runLifecycle wraps a started interpreter bound to a private context.
type runLifecycle struct {
	interp *statekit.Interpreter[*lifecycle]
}

func startLifecycle() (*runLifecycle, error) {
	machine, err := lifecycleMachine()
	if err != nil {
		return nil, fmt.Errorf("simulate: build lifecycle: %w", err)
	}
	interp := statekit.NewInterpreter(machine)
	// The machine's default context is shared; give this run its own.
	interp.UpdateContext(func(c **lifecycle) {
		*c = &lifecycle{}
	})
	interp.Start()
	return &runLifecycle{interp: interp}, nil
}

// state reports where the interpreter currently is.
func (r *runLifecycle) state() State {
	return stateFromMachine(r.interp.State().Value)
}

// outcome classifies a finished run by the event that ended it.
func (r *runLifecycle) outcome() Outcome {
	if r.interp.State().Context.terminal == eventCycle {
		return Cycle
	}
	return Exited
}

// finish sends a terminal event and returns the state the interpreter
// settled in. A run that is already final ignores the event, which is
// reported as ErrInternal.
func (r *runLifecycle) finish(event statekit.EventType) (State, error) {
	r.interp.Send(statekit.Event{Type: event})

	st := r.interp.State()
	if st.Context.terminal != event || !r.interp.Done() {
		return stateFromMachine(st.Value), fmt.Errorf("%w: lifecycle in %q after %s", ErrInternal, st.Value, event)
	}
	return stateFromMachine(st.Value), nil
}

func stateFromMachine(id statekit.StateID) State {
	switch id {
	case stateExited:
		return StateExited
	case stateCycle:
		return StateCycleDetected
	}
	return StateRunning
}
