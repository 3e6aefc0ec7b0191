package task_test

import (
	"encoding/json"
	"testing"

	"github.com/garvitthakral/GrindChain/pkg/domain/task"
)

func TestTaskPriorityIsValid(t *testing.T) {
	for _, p := range []task.TaskPriority{task.PriorityUnspecified, task.PriorityLow, task.PriorityMedium, task.PriorityHigh} {
		if !p.IsValid() {
			t.Errorf("priority %q should be valid", p)
		}
	}
	if task.TaskPriority("urgent").IsValid() {
		t.Error("unknown priority should be invalid")
	}
}

func TestTaskPriorityOrdering(t *testing.T) {
	if !task.PriorityHigh.IsHigherThan(task.PriorityMedium) {
		t.Error("high should outrank medium")
	}
	if !task.PriorityLow.IsHigherThan(task.PriorityUnspecified) {
		t.Error("low should outrank unspecified")
	}
	if task.PriorityMedium.Compare(task.PriorityMedium) != 0 {
		t.Error("equal priorities should compare 0")
	}
}

func TestParseTaskPriority(t *testing.T) {
	p, err := task.ParseTaskPriority("high")
	if err != nil {
		t.Fatalf("ParseTaskPriority failed: %v", err)
	}
	if p != task.PriorityHigh {
		t.Errorf("got %q, want high", p)
	}

	p, err = task.ParseTaskPriority("")
	if err != nil {
		t.Fatalf("empty priority should parse: %v", err)
	}
	if p != task.PriorityUnspecified {
		t.Errorf("got %q, want unspecified", p)
	}

	if _, err := task.ParseTaskPriority("asap"); err == nil {
		t.Error("expected error for unknown priority")
	}
}

func TestTaskPriorityJSON(t *testing.T) {
	var tk task.Task
	if err := json.Unmarshal([]byte(`{"id":"t1","priority":"medium"}`), &tk); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if tk.Priority != task.PriorityMedium {
		t.Errorf("got %q, want medium", tk.Priority)
	}

	if err := json.Unmarshal([]byte(`{"id":"t1","priority":"whenever"}`), &tk); err == nil {
		t.Error("expected error for invalid priority in JSON")
	}

	data, err := json.Marshal(task.PriorityHigh)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"high"` {
		t.Errorf("got %s, want \"high\"", data)
	}
}

func TestTaskPriorityDisplayName(t *testing.T) {
	if got := task.PriorityUnspecified.DisplayName(); got != "None" {
		t.Errorf("got %q, want None", got)
	}
	if got := task.PriorityHigh.DisplayName(); got != "High" {
		t.Errorf("got %q, want High", got)
	}
}
