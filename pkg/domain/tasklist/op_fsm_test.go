package tasklist_test

import (
	"testing"

	"github.com/garvitthakral/GrindChain/pkg/domain/tasklist"
)

func newOp(t *testing.T) *tasklist.OpStateMachine {
	t.Helper()
	op, err := tasklist.NewOpStateMachine(tasklist.OpKey{TaskID: "t1", Position: 0})
	if err != nil {
		t.Fatalf("NewOpStateMachine failed: %v", err)
	}
	return op
}

func TestOpStateMachineConfirmPath(t *testing.T) {
	op := newOp(t)
	if op.Current() != tasklist.OpStateIdle {
		t.Fatalf("initial state = %s, want idle", op.Current())
	}

	for _, event := range []string{tasklist.OpEventApply, tasklist.OpEventDispatch, tasklist.OpEventConfirm} {
		if err := op.Transition(event); err != nil {
			t.Fatalf("transition %s failed: %v", event, err)
		}
	}
	if op.Current() != tasklist.OpStateConfirmed {
		t.Errorf("final state = %s, want confirmed", op.Current())
	}
	if !op.IsTerminal() {
		t.Error("confirmed should be terminal")
	}
}

func TestOpStateMachineRejectPaths(t *testing.T) {
	// Validation failure: rejected while applying.
	op := newOp(t)
	if err := op.Transition(tasklist.OpEventApply); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if err := op.Transition(tasklist.OpEventReject); err != nil {
		t.Fatalf("reject while applying failed: %v", err)
	}
	if op.Current() != tasklist.OpStateRolledBack {
		t.Errorf("state = %s, want rolled_back", op.Current())
	}

	// Remote failure: rejected while awaiting the server.
	op = newOp(t)
	_ = op.Transition(tasklist.OpEventApply)
	_ = op.Transition(tasklist.OpEventDispatch)
	if err := op.Transition(tasklist.OpEventReject); err != nil {
		t.Fatalf("reject while awaiting remote failed: %v", err)
	}
	if !op.IsTerminal() {
		t.Error("rolled_back should be terminal")
	}
}

func TestOpStateMachineInvalidTransitions(t *testing.T) {
	op := newOp(t)

	if err := op.Transition(tasklist.OpEventConfirm); err == nil {
		t.Error("confirm from idle should be rejected")
	}
	if err := op.Transition(tasklist.OpEventDispatch); err == nil {
		t.Error("dispatch from idle should be rejected")
	}

	_ = op.Transition(tasklist.OpEventApply)
	_ = op.Transition(tasklist.OpEventDispatch)
	_ = op.Transition(tasklist.OpEventConfirm)

	if err := op.Transition(tasklist.OpEventApply); err == nil {
		t.Error("terminal state should accept no events")
	}
}
