package sdk

import (
	"encoding/json"

	"github.com/garvitthakral/GrindChain/pkg/domain/task"
)

// envelope is the common response wrapper used by every GrindChain endpoint:
// a success flag plus an opaque payload. A missing or false flag is treated
// identically to a transport failure.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// tasksPayload is the data shape of the task collection endpoints.
type tasksPayload struct {
	Tasks []task.Task `json:"tasks"`
}

// taskPayload is the data shape of single-task responses.
type taskPayload struct {
	Task task.Task `json:"task"`
}

// membersPayload is the data shape of the group-membership endpoint.
type membersPayload struct {
	Members []task.GroupMember `json:"members"`
}

// updateRoadmapRequest is the body of the roadmap item mutation endpoint.
type updateRoadmapRequest struct {
	Position  int  `json:"position"`
	Completed bool `json:"completed"`
}
