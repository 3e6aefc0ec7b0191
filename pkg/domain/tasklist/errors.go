package tasklist

import "errors"

var (
	// ErrTaskNotFound indicates the addressed task is not in the overlay.
	ErrTaskNotFound = errors.New("tasklist: task not found")
	// ErrNoRoadmap indicates the addressed task has no roadmap items.
	ErrNoRoadmap = errors.New("tasklist: task has no roadmap items")
	// ErrPositionOutOfRange indicates the item position is outside the roadmap.
	ErrPositionOutOfRange = errors.New("tasklist: roadmap position out of range")
	// ErrMissingTaskID indicates a task without an identifier was offered to
	// the overlay. Such tasks must never enter it.
	ErrMissingTaskID = errors.New("tasklist: task has no identifier")
)
