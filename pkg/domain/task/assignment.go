package task

// UnassignedName is the display sentinel for a sub-assignment that resolves
// to no group member.
const UnassignedName = "Unassigned"

// IsAssignedToActor reports whether the task, or any sub-assignment of a
// group task, is bound to the given actor. It is total: an empty actor or a
// malformed task shape yields false, never an error.
func IsAssignedToActor(t Task, actorID string) bool {
	if actorID == "" {
		return false
	}
	if t.AssignedTo == actorID {
		return true
	}
	if !t.GroupTask {
		return false
	}
	for _, h := range t.TaskHeaders {
		if h.AssignedTo != "" && h.AssignedTo == actorID {
			return true
		}
	}
	return false
}

// ResolveAssigneeName resolves a sub-assignment's assignee reference against
// the member list by identifier equality. Unknown or empty references resolve
// to UnassignedName. The member list is never mutated.
func ResolveAssigneeName(h TaskHeader, members []GroupMember) string {
	if h.AssignedTo == "" {
		return UnassignedName
	}
	for _, m := range members {
		if m.ID == h.AssignedTo {
			if m.Username == "" {
				return UnassignedName
			}
			return m.Username
		}
	}
	return UnassignedName
}
