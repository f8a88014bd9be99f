package upstream

import "encoding/json"

// Task is a task as the upstream API returns it. Dates stay as the raw
// strings the API produced; formatting for display happens in the view layer.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDateTime string `json:"dueDateTime"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
	Overdue     bool   `json:"overdue"`
}

// TaskPage is one page of tasks. All pagination fields are supplied by the
// upstream API and passed through unmodified.
type TaskPage struct {
	Items         []Task `json:"items"`
	Page          int    `json:"page"`
	Size          int    `json:"size"`
	TotalElements int64  `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
	First         bool   `json:"first"`
	Last          bool   `json:"last"`
	HasNext       bool   `json:"hasNext"`
	HasPrevious   bool   `json:"hasPrevious"`
}

// TaskInput is the create/update request body. Status is only sent on full
// updates; an empty description is omitted entirely.
type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDateTime string `json:"dueDateTime"`
	Priority    string `json:"priority"`
	Status      string `json:"status,omitempty"`
}

// ListQuery carries the pagination and filter parameters for the task list.
// Empty filters are left out of the upstream query string.
type ListQuery struct {
	Page     int
	Size     int
	Status   string
	Priority string
	Search   string
}

// envelope is the wrapper the upstream API puts around every response.
type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp string          `json:"timestamp"`
}
