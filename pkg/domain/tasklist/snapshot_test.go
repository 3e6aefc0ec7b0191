package tasklist_test

import (
	"testing"

	"github.com/garvitthakral/GrindChain/pkg/domain/task"
	"github.com/garvitthakral/GrindChain/pkg/domain/tasklist"
)

func TestSnapshotStoreReplaceIsWholesale(t *testing.T) {
	store := tasklist.NewSnapshotStore()
	store.Replace([]task.Task{{ID: "t1"}, {ID: "t2"}})
	if store.Len() != 2 {
		t.Fatalf("Len = %d, want 2", store.Len())
	}

	store.Replace([]task.Task{{ID: "t3"}})
	got := store.Tasks()
	if len(got) != 1 || got[0].ID != "t3" {
		t.Errorf("replace should discard the previous collection, got %v", got)
	}
}

func TestSnapshotStoreIsolatesCallers(t *testing.T) {
	input := []task.Task{{ID: "t1", RoadmapItems: []task.RoadmapItem{{Text: "a"}}}}
	store := tasklist.NewSnapshotStore()
	store.Replace(input)

	// Mutating the input after Replace must not reach the snapshot.
	input[0].RoadmapItems[0].Completed = true
	if store.Tasks()[0].RoadmapItems[0].Completed {
		t.Error("snapshot shares state with the input slice")
	}

	// Mutating a returned view must not reach the snapshot either.
	view := store.Tasks()
	view[0].RoadmapItems[0].Completed = true
	if store.Tasks()[0].RoadmapItems[0].Completed {
		t.Error("snapshot shares state with a returned view")
	}
}
