package view

import "github.com/taskweb/frontend/internal/upstream"

// TaskView decorates an upstream task with display-ready fields. It is
// built fresh per response and never cached.
type TaskView struct {
	upstream.Task

	FormattedDueDate   string
	FormattedCreatedAt string
	FormattedUpdatedAt string
	StatusDisplay      string
	PriorityDisplay    string
	StatusTagClass     string
	PriorityTagClass   string
}

// NewTaskView maps one upstream task into its display shape.
func NewTaskView(task upstream.Task) TaskView {
	return TaskView{
		Task:               task,
		FormattedDueDate:   FormatDate(task.DueDateTime),
		FormattedCreatedAt: FormatDate(task.CreatedAt),
		FormattedUpdatedAt: FormatDate(task.UpdatedAt),
		StatusDisplay:      StatusLabel(task.Status),
		PriorityDisplay:    PriorityLabel(task.Priority),
		StatusTagClass:     StatusTagClass(task.Status),
		PriorityTagClass:   PriorityTagClass(task.Priority),
	}
}

// NewTaskViews maps a page of upstream tasks, preserving upstream order.
func NewTaskViews(tasks []upstream.Task) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, NewTaskView(task))
	}
	return views
}

// Pagination carries the upstream paging fields plus the neighbour page
// indexes the list template links to.
type Pagination struct {
	CurrentPage   int
	TotalPages    int
	TotalElements int64
	Size          int
	HasNext       bool
	HasPrevious   bool
	NextPage      int
	PreviousPage  int
	DisplayPage   int
}

// NewPagination passes the upstream paging block through unmodified.
func NewPagination(page *upstream.TaskPage) Pagination {
	return Pagination{
		CurrentPage:   page.Page,
		TotalPages:    page.TotalPages,
		TotalElements: page.TotalElements,
		Size:          page.Size,
		HasNext:       page.HasNext,
		HasPrevious:   page.HasPrevious,
		NextPage:      page.Page + 1,
		PreviousPage:  page.Page - 1,
		DisplayPage:   page.Page + 1,
	}
}

// Filters echoes the list filters back into the filter form.
type Filters struct {
	Status   string
	Priority string
	Search   string
}

// ListPage is the data for the task list template. Success and Error hold
// resolved banner texts, not raw outcome flags.
type ListPage struct {
	Tasks      []TaskView
	Pagination Pagination
	Filters    Filters
	Success    string
	Error      string
}

// FormPage is the data for the create/edit form template. DueDateTime holds
// whatever should populate the datetime-local input: the submitted raw value
// on a validation re-render, or the input-formatted upstream value on edit.
type FormPage struct {
	ID          string
	Title       string
	Description string
	DueDateTime string
	Priority    string
	Status      string
	IsEdit      bool
	Error       string
}

// DetailPage is the data for the task detail template.
type DetailPage struct {
	Task    TaskView
	Success string
	Error   string
}

// ConfirmPage is the data for the delete confirmation template.
type ConfirmPage struct {
	Task TaskView
}

// HomePage is the data for the landing page template.
type HomePage struct{}
