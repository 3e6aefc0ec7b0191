// Package events defines the engine notifications delivered to the
// presentation layer after successful reconciliation.
package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/garvitthakral/GrindChain/pkg/domain/task"
)

// DomainEvent is the base interface for all engine events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// BaseEvent provides common fields for all events.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	TaskID    string    `json:"task_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) AggregateID() string   { return e.TaskID }
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

// Event type names.
const (
	TypeTaskUpdated = "task.updated"
	TypeTaskDeleted = "task.deleted"
)

// TaskUpdated is dispatched when the server confirmed a roadmap mutation and
// the canonical task replaced the speculative one.
type TaskUpdated struct {
	BaseEvent
	Task task.Task `json:"task"`
}

// NewTaskUpdated creates a TaskUpdated event carrying the canonical task.
func NewTaskUpdated(t task.Task) *TaskUpdated {
	return &TaskUpdated{
		BaseEvent: BaseEvent{
			ID:        uuid.NewString(),
			Type:      TypeTaskUpdated,
			TaskID:    t.ID,
			Timestamp: time.Now(),
		},
		Task: t,
	}
}

// TaskDeleted is dispatched when the server confirmed a task deletion. The
// snapshot owner, not the engine, removes the task from the confirmed
// collection in response.
type TaskDeleted struct {
	BaseEvent
}

// NewTaskDeleted creates a TaskDeleted event for the given task.
func NewTaskDeleted(taskID string) *TaskDeleted {
	return &TaskDeleted{
		BaseEvent: BaseEvent{
			ID:        uuid.NewString(),
			Type:      TypeTaskDeleted,
			TaskID:    taskID,
			Timestamp: time.Now(),
		},
	}
}
