// Package task defines the task aggregate shared by the snapshot store and
// the speculative overlay, plus the derived-field and assignment rules.
package task

import (
	"fmt"
	"strings"
	"time"
)

// Task is one entry in the user's task list.
type Task struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Priority        TaskPriority    `json:"priority"`
	Duration        string          `json:"duration,omitempty"`
	AIGenerated     bool            `json:"aiGenerated"`
	GroupTask       bool            `json:"groupTask"`
	CreatedBy       string          `json:"createdBy,omitempty"`
	AssignedTo      string          `json:"assignedTo,omitempty"`
	RoadmapItems    []RoadmapItem   `json:"roadmapItems"`
	OverallProgress int             `json:"overallProgress"`
	Completed       bool            `json:"completed"`
	TaskHeaders     []TaskHeader    `json:"taskHeaders,omitempty"`
	Milestones      []Milestone     `json:"milestones,omitempty"`
	Resources       *ResourceBundle `json:"resources,omitempty"`
}

// RoadmapItem is one checklist entry of a task's roadmap. Items are addressed
// by position within the slice, not by identifier.
type RoadmapItem struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// TaskHeader is a sub-assignment of a group task. An empty AssignedTo means
// the sub-assignment is unassigned.
type TaskHeader struct {
	Title      string `json:"title"`
	AssignedTo string `json:"assignedTo,omitempty"`
}

// Milestone is an optional dated checkpoint attached to a task.
type Milestone struct {
	Title   string     `json:"title"`
	DueDate *time.Time `json:"dueDate,omitempty"`
}

// ResourceBundle groups learning resources attached to a task.
type ResourceBundle struct {
	Free []Resource `json:"free"`
	Paid []Resource `json:"paid"`
}

// Resource is a single external learning resource.
type Resource struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Platform    string `json:"platform,omitempty"`
	Description string `json:"description,omitempty"`
}

// GroupMember resolves assignee references to display names. Supplied by the
// group-membership source, never owned by the engine.
type GroupMember struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Validate reports whether the task may enter the snapshot or overlay.
// A task without an identifier is invalid.
func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("task %q: missing identifier", t.Title)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("task %s: invalid priority %q", t.ID, string(t.Priority))
	}
	return nil
}

// Clone returns a deep copy of the task. Views handed to the presentation
// layer are always clones so overlay mutations stay invisible through them.
func (t Task) Clone() Task {
	out := t
	if t.RoadmapItems != nil {
		out.RoadmapItems = make([]RoadmapItem, len(t.RoadmapItems))
		copy(out.RoadmapItems, t.RoadmapItems)
	}
	if t.TaskHeaders != nil {
		out.TaskHeaders = make([]TaskHeader, len(t.TaskHeaders))
		copy(out.TaskHeaders, t.TaskHeaders)
	}
	if t.Milestones != nil {
		out.Milestones = make([]Milestone, len(t.Milestones))
		for i, m := range t.Milestones {
			out.Milestones[i] = m
			if m.DueDate != nil {
				due := *m.DueDate
				out.Milestones[i].DueDate = &due
			}
		}
	}
	if t.Resources != nil {
		bundle := ResourceBundle{}
		if t.Resources.Free != nil {
			bundle.Free = make([]Resource, len(t.Resources.Free))
			copy(bundle.Free, t.Resources.Free)
		}
		if t.Resources.Paid != nil {
			bundle.Paid = make([]Resource, len(t.Resources.Paid))
			copy(bundle.Paid, t.Resources.Paid)
		}
		out.Resources = &bundle
	}
	return out
}

// CloneAll deep-copies a task collection.
func CloneAll(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
