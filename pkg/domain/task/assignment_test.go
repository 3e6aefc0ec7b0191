package task_test

import (
	"testing"

	"github.com/garvitthakral/GrindChain/pkg/domain/task"
)

func TestIsAssignedToActorNoActor(t *testing.T) {
	tk := task.Task{
		ID:         "t1",
		AssignedTo: "u1",
		GroupTask:  true,
		TaskHeaders: []task.TaskHeader{
			{Title: "backend", AssignedTo: "u2"},
		},
	}
	// Absent actor is always false regardless of task shape.
	if task.IsAssignedToActor(tk, "") {
		t.Error("empty actor must never match")
	}
	if task.IsAssignedToActor(task.Task{}, "") {
		t.Error("empty actor on zero task must never match")
	}
}

func TestIsAssignedToActorDirect(t *testing.T) {
	tk := task.Task{ID: "t1", AssignedTo: "u1"}
	if !task.IsAssignedToActor(tk, "u1") {
		t.Error("direct assignment should match")
	}
	if task.IsAssignedToActor(tk, "u2") {
		t.Error("other actor should not match")
	}
}

func TestIsAssignedToActorGroupHeaders(t *testing.T) {
	tk := task.Task{
		ID:        "t1",
		GroupTask: true,
		TaskHeaders: []task.TaskHeader{
			{Title: "design", AssignedTo: ""},
			{Title: "backend", AssignedTo: "u2"},
		},
	}
	if !task.IsAssignedToActor(tk, "u2") {
		t.Error("group header assignment should match")
	}
	if task.IsAssignedToActor(tk, "u3") {
		t.Error("actor absent from headers should not match")
	}

	// Headers only count for group tasks.
	tk.GroupTask = false
	if task.IsAssignedToActor(tk, "u2") {
		t.Error("headers of a non-group task should be ignored")
	}
}

func TestResolveAssigneeName(t *testing.T) {
	members := []task.GroupMember{
		{ID: "u1", Username: "alex"},
		{ID: "u2", Username: "sam"},
	}

	if got := task.ResolveAssigneeName(task.TaskHeader{AssignedTo: "u2"}, members); got != "sam" {
		t.Errorf("got %q, want sam", got)
	}
	if got := task.ResolveAssigneeName(task.TaskHeader{AssignedTo: ""}, members); got != task.UnassignedName {
		t.Errorf("got %q, want %q", got, task.UnassignedName)
	}
	if got := task.ResolveAssigneeName(task.TaskHeader{AssignedTo: "ghost"}, members); got != task.UnassignedName {
		t.Errorf("unknown reference: got %q, want %q", got, task.UnassignedName)
	}
	if got := task.ResolveAssigneeName(task.TaskHeader{AssignedTo: "u1"}, nil); got != task.UnassignedName {
		t.Errorf("nil member list: got %q, want %q", got, task.UnassignedName)
	}
}
