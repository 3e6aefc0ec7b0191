// Package tasklist holds the confirmed/speculative split of the task
// collection: the snapshot store, the overlay it seeds, and the
// pending-operation tracker that serializes per-item mutations.
package tasklist

import "github.com/garvitthakral/GrindChain/pkg/domain/task"

// SnapshotStore holds the last task collection confirmed by the server. It is
// the rollback source of truth and is only ever replaced wholesale, never
// edited in place.
type SnapshotStore struct {
	tasks []task.Task
}

// NewSnapshotStore returns an empty snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Replace swaps in a new confirmed collection. The input is deep-copied so
// later caller mutations cannot reach the stored snapshot.
func (s *SnapshotStore) Replace(tasks []task.Task) {
	s.tasks = task.CloneAll(tasks)
}

// Tasks returns a deep copy of the confirmed collection.
func (s *SnapshotStore) Tasks() []task.Task {
	return task.CloneAll(s.tasks)
}

// Len returns the number of confirmed tasks.
func (s *SnapshotStore) Len() int {
	return len(s.tasks)
}
