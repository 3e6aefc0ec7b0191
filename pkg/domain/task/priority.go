package task

import (
	"encoding/json"
	"fmt"
)

// TaskPriority is the urgency attached to a task. The empty value means the
// creator never picked one; it is valid and sorts below low.
type TaskPriority string

const (
	PriorityUnspecified TaskPriority = ""
	PriorityLow         TaskPriority = "low"
	PriorityMedium      TaskPriority = "medium"
	PriorityHigh        TaskPriority = "high"
)

// priorityOrder defines the ordering of priorities (higher order = higher priority).
var priorityOrder = map[TaskPriority]int{
	PriorityLow:    1,
	PriorityMedium: 2,
	PriorityHigh:   3,
}

// AllTaskPriorities returns the named priorities, highest first.
func AllTaskPriorities() []TaskPriority {
	return []TaskPriority{PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid returns true if the priority is one of the known values.
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityUnspecified, PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the priority.
func (p TaskPriority) String() string {
	return string(p)
}

// Order returns the numeric order of the priority (higher = more important).
// Unspecified is 0.
func (p TaskPriority) Order() int {
	return priorityOrder[p]
}

// Compare compares this priority to another.
// Returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p TaskPriority) Compare(other TaskPriority) int {
	switch {
	case p.Order() < other.Order():
		return -1
	case p.Order() > other.Order():
		return 1
	default:
		return 0
	}
}

// IsHigherThan returns true if this priority is higher than the other.
func (p TaskPriority) IsHigherThan(other TaskPriority) bool {
	return p.Compare(other) > 0
}

// DisplayName returns a human-readable display name for the priority.
func (p TaskPriority) DisplayName() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityUnspecified:
		return "None"
	default:
		return string(p)
	}
}

// ParseTaskPriority parses a string into a TaskPriority. The empty string
// parses to PriorityUnspecified.
func ParseTaskPriority(s string) (TaskPriority, error) {
	priority := TaskPriority(s)
	if !priority.IsValid() {
		return "", fmt.Errorf("invalid task priority: %s", s)
	}
	return priority, nil
}

// MarshalJSON implements json.Marshaler.
func (p TaskPriority) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(p))
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *TaskPriority) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	priority := TaskPriority(str)
	if !priority.IsValid() {
		return fmt.Errorf("invalid task priority: %s", str)
	}
	*p = priority
	return nil
}
