package tasklist

import (
	"strings"

	"github.com/garvitthakral/GrindChain/pkg/domain/task"
)

// Overlay is the locally displayed, possibly unconfirmed task collection. It
// is seeded from the snapshot and carries speculative roadmap toggles until
// the server confirms them or a rollback discards them.
type Overlay struct {
	tasks []task.Task
}

// NewOverlay returns an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Reseed replaces the overlay contents from a confirmed collection,
// discarding any speculative edits. Refresh wins over pending optimism.
func (o *Overlay) Reseed(tasks []task.Task) {
	o.tasks = task.CloneAll(tasks)
}

// Tasks returns a deep copy of the overlay for rendering. Mutations applied
// after this call are invisible through the returned slice.
func (o *Overlay) Tasks() []task.Task {
	return task.CloneAll(o.tasks)
}

// Find returns a copy of the task with the given identifier.
func (o *Overlay) Find(taskID string) (task.Task, bool) {
	for _, t := range o.tasks {
		if t.ID == taskID {
			return t.Clone(), true
		}
	}
	return task.Task{}, false
}

// Len returns the number of tasks in the overlay.
func (o *Overlay) Len() int {
	return len(o.tasks)
}

// ApplyToggle speculatively sets the completed flag of one roadmap item and
// rederives the task's progress fields. On any validation failure the overlay
// is left untouched and the error describes the rejection. The updated task
// copy is returned on success.
func (o *Overlay) ApplyToggle(taskID string, position int, completed bool) (task.Task, error) {
	next, updated, err := applyToggle(o.tasks, taskID, position, completed)
	if err != nil {
		return task.Task{}, err
	}
	o.tasks = next
	return updated, nil
}

// ReplaceTask swaps in the canonical server copy of one task, superseding the
// speculative recomputation. The server may derive progress differently; its
// values are kept as-is.
func (o *Overlay) ReplaceTask(canonical task.Task) error {
	if strings.TrimSpace(canonical.ID) == "" {
		return ErrMissingTaskID
	}
	for i, t := range o.tasks {
		if t.ID == canonical.ID {
			next := make([]task.Task, len(o.tasks))
			copy(next, o.tasks)
			next[i] = canonical.Clone()
			o.tasks = next
			return nil
		}
	}
	return ErrTaskNotFound
}

// applyToggle is the pure mutation applier: it produces a new collection with
// exactly one task replaced, sharing every other element with the input. It
// performs no I/O and is deterministic, so repeated application with the same
// inputs yields the same result.
func applyToggle(tasks []task.Task, taskID string, position int, completed bool) ([]task.Task, task.Task, error) {
	idx := -1
	for i, t := range tasks {
		if t.ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, task.Task{}, ErrTaskNotFound
	}
	if len(tasks[idx].RoadmapItems) == 0 {
		return nil, task.Task{}, ErrNoRoadmap
	}
	if position < 0 || position >= len(tasks[idx].RoadmapItems) {
		return nil, task.Task{}, ErrPositionOutOfRange
	}

	updated := tasks[idx].Clone()
	updated.RoadmapItems[position].Completed = completed
	updated.RecomputeProgress()

	next := make([]task.Task, len(tasks))
	copy(next, tasks)
	next[idx] = updated

	return next, updated.Clone(), nil
}
