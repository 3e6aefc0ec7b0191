package tasklist

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// Lifecycle states of one reconciliation round. Untyped strings so they
// convert directly to statekit.StateID.
const (
	OpStateIdle           = "idle"
	OpStateApplying       = "applying"
	OpStateAwaitingRemote = "awaiting_remote"
	OpStateConfirmed      = "confirmed"
	OpStateRolledBack     = "rolled_back"
)

// Events accepted by the operation state machine.
const (
	OpEventApply    = "apply"
	OpEventDispatch = "dispatch"
	OpEventConfirm  = "confirm"
	OpEventReject   = "reject"
)

// OpContext carries state data.
type OpContext struct {
	Key OpKey
}

// OpStateMachine tracks the lifecycle of a single reconciliation round:
// idle -> applying -> awaiting_remote -> confirmed | rolled_back, with
// rejection possible from applying (validation failure) and awaiting_remote
// (remote failure or timeout). Both confirmed and rolled_back are terminal.
type OpStateMachine struct {
	interpreter *statekit.Interpreter[OpContext]
}

// NewOpStateMachine builds the machine for one operation key.
func NewOpStateMachine(key OpKey) (*OpStateMachine, error) {
	builder := statekit.NewMachine[OpContext]("roadmap-op").
		WithInitial(statekit.StateID(OpStateIdle)).
		WithContext(OpContext{Key: key})

	builder.State(OpStateIdle).
		On(OpEventApply).Target(OpStateApplying).
		Done()

	builder.State(OpStateApplying).
		On(OpEventDispatch).Target(OpStateAwaitingRemote).
		On(OpEventReject).Target(OpStateRolledBack).
		Done()

	builder.State(OpStateAwaitingRemote).
		On(OpEventConfirm).Target(OpStateConfirmed).
		On(OpEventReject).Target(OpStateRolledBack).
		Done()

	builder.State(OpStateConfirmed).Done()
	builder.State(OpStateRolledBack).Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build op state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &OpStateMachine{interpreter: interpreter}, nil
}

// Transition attempts to advance the operation.
func (m *OpStateMachine) Transition(event string) error {
	before := m.Current()
	m.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := m.Current()

	if before != after {
		return nil
	}
	// In statekit an event that matches no transition leaves the state
	// unchanged, so no change means the event was invalid here.
	return fmt.Errorf("event %q is not valid in state %q", event, before)
}

// Current returns the current state name.
func (m *OpStateMachine) Current() string {
	return string(m.interpreter.State().Value)
}

// IsTerminal returns true once the operation reached confirmed or rolled_back.
func (m *OpStateMachine) IsTerminal() bool {
	switch m.Current() {
	case OpStateConfirmed, OpStateRolledBack:
		return true
	default:
		return false
	}
}
