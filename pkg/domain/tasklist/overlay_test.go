package tasklist_test

import (
	"errors"
	"testing"

	"github.com/garvitthakral/GrindChain/pkg/domain/task"
	"github.com/garvitthakral/GrindChain/pkg/domain/tasklist"
)

func seedOverlay(t *testing.T) *tasklist.Overlay {
	t.Helper()
	o := tasklist.NewOverlay()
	o.Reseed([]task.Task{
		{
			ID:    "t1",
			Title: "Ship the thing",
			RoadmapItems: []task.RoadmapItem{
				{Text: "a", Completed: false},
				{Text: "b", Completed: false},
			},
		},
		{
			ID:    "t2",
			Title: "No roadmap here",
		},
	})
	return o
}

func TestApplyToggleRecomputesProgress(t *testing.T) {
	o := seedOverlay(t)

	updated, err := o.ApplyToggle("t1", 0, true)
	if err != nil {
		t.Fatalf("ApplyToggle failed: %v", err)
	}
	if !updated.RoadmapItems[0].Completed {
		t.Error("item 0 should be completed")
	}
	if updated.RoadmapItems[1].Completed {
		t.Error("item 1 should be untouched")
	}
	if updated.OverallProgress != 50 {
		t.Errorf("OverallProgress = %d, want 50", updated.OverallProgress)
	}
	if updated.Completed {
		t.Error("task should not be completed at 50%")
	}

	updated, err = o.ApplyToggle("t1", 1, true)
	if err != nil {
		t.Fatalf("second ApplyToggle failed: %v", err)
	}
	if updated.OverallProgress != 100 || !updated.Completed {
		t.Errorf("got progress=%d completed=%v, want 100/true", updated.OverallProgress, updated.Completed)
	}
}

func TestApplyToggleValidation(t *testing.T) {
	o := seedOverlay(t)

	if _, err := o.ApplyToggle("missing", 0, true); !errors.Is(err, tasklist.ErrTaskNotFound) {
		t.Errorf("unknown task: got %v, want ErrTaskNotFound", err)
	}
	if _, err := o.ApplyToggle("t2", 0, true); !errors.Is(err, tasklist.ErrNoRoadmap) {
		t.Errorf("empty roadmap: got %v, want ErrNoRoadmap", err)
	}
	if _, err := o.ApplyToggle("t1", 2, true); !errors.Is(err, tasklist.ErrPositionOutOfRange) {
		t.Errorf("position past end: got %v, want ErrPositionOutOfRange", err)
	}
	if _, err := o.ApplyToggle("t1", -1, true); !errors.Is(err, tasklist.ErrPositionOutOfRange) {
		t.Errorf("negative position: got %v, want ErrPositionOutOfRange", err)
	}

	// Failed applies leave the overlay untouched.
	got, _ := o.Find("t1")
	if got.RoadmapItems[0].Completed || got.OverallProgress != 0 {
		t.Error("failed apply mutated the overlay")
	}
}

func TestApplyToggleDoesNotLeakIntoOldViews(t *testing.T) {
	o := seedOverlay(t)

	before := o.Tasks()
	if _, err := o.ApplyToggle("t1", 0, true); err != nil {
		t.Fatalf("ApplyToggle failed: %v", err)
	}

	if before[0].RoadmapItems[0].Completed {
		t.Error("mutation visible through previously obtained view")
	}
	if before[0].OverallProgress != 0 {
		t.Error("derived fields changed in previously obtained view")
	}

	after := o.Tasks()
	if !after[0].RoadmapItems[0].Completed || after[0].OverallProgress != 50 {
		t.Error("mutation missing from fresh view")
	}
}

func TestApplyToggleIdempotent(t *testing.T) {
	o := seedOverlay(t)

	first, err := o.ApplyToggle("t1", 0, true)
	if err != nil {
		t.Fatalf("ApplyToggle failed: %v", err)
	}
	second, err := o.ApplyToggle("t1", 0, true)
	if err != nil {
		t.Fatalf("repeated ApplyToggle failed: %v", err)
	}
	if first.OverallProgress != second.OverallProgress || second.OverallProgress != 50 {
		t.Errorf("repeated apply changed the result: %d vs %d", first.OverallProgress, second.OverallProgress)
	}

	// Toggling back restores the original value and progress.
	restored, err := o.ApplyToggle("t1", 0, false)
	if err != nil {
		t.Fatalf("ApplyToggle back failed: %v", err)
	}
	if restored.RoadmapItems[0].Completed || restored.OverallProgress != 0 {
		t.Errorf("round trip did not restore: completed=%v progress=%d", restored.RoadmapItems[0].Completed, restored.OverallProgress)
	}
}

func TestReplaceTaskKeepsServerDerivedFields(t *testing.T) {
	o := seedOverlay(t)

	// The server may weight items differently; its numbers win verbatim.
	canonical := task.Task{
		ID:    "t1",
		Title: "Ship the thing",
		RoadmapItems: []task.RoadmapItem{
			{Text: "a", Completed: true},
			{Text: "b", Completed: false},
		},
		OverallProgress: 62,
		Completed:       false,
	}
	if err := o.ReplaceTask(canonical); err != nil {
		t.Fatalf("ReplaceTask failed: %v", err)
	}

	got, ok := o.Find("t1")
	if !ok {
		t.Fatal("t1 missing after replace")
	}
	if got.OverallProgress != 62 {
		t.Errorf("OverallProgress = %d, want server's 62", got.OverallProgress)
	}
}

func TestReplaceTaskValidation(t *testing.T) {
	o := seedOverlay(t)

	if err := o.ReplaceTask(task.Task{ID: ""}); !errors.Is(err, tasklist.ErrMissingTaskID) {
		t.Errorf("got %v, want ErrMissingTaskID", err)
	}
	if err := o.ReplaceTask(task.Task{ID: "missing"}); !errors.Is(err, tasklist.ErrTaskNotFound) {
		t.Errorf("got %v, want ErrTaskNotFound", err)
	}
}

func TestReseedDiscardsSpeculativeEdits(t *testing.T) {
	o := seedOverlay(t)
	if _, err := o.ApplyToggle("t1", 0, true); err != nil {
		t.Fatalf("ApplyToggle failed: %v", err)
	}

	o.Reseed([]task.Task{{ID: "t1", RoadmapItems: []task.RoadmapItem{{Text: "a"}}}})

	got, _ := o.Find("t1")
	if got.RoadmapItems[0].Completed {
		t.Error("reseed kept a speculative edit")
	}
	if o.Len() != 1 {
		t.Errorf("Len = %d, want 1", o.Len())
	}
}
