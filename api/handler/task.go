package handler

import (
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskweb/frontend/internal/upstream"
	"github.com/taskweb/frontend/internal/view"
	"github.com/taskweb/frontend/pkg/httpcontext"
	appLogger "github.com/taskweb/frontend/pkg/logger"
	"github.com/taskweb/frontend/web"
)

const (
	defaultPage = 0
	defaultSize = 10
)

// TaskHandler serves every browser-facing task route. Each method performs
// at most one upstream call and ends in either a rendered page or a
// redirect carrying an outcome flag; upstream failures never surface as 5xx.
type TaskHandler struct {
	baseHandler
	api upstream.TaskAPI
}

func NewTaskHandler(api upstream.TaskAPI, views *web.Renderer, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(views, adapter, logger),
		api:         api,
	}
}

// List renders the task list with pagination and filters. An upstream
// failure renders the same page with an empty collection and an inline
// error; the browser always gets a 200.
func (h *TaskHandler) List(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	query := upstream.ListQuery{
		Page:     queryInt(args, "page", defaultPage),
		Size:     queryInt(args, "size", defaultSize),
		Status:   string(args.Peek("status")),
		Priority: string(args.Peek("priority")),
		Search:   string(args.Peek("search")),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	page, err := h.api.List(stdCtx, query)
	if err != nil {
		appLogger.WithRequestID(stdCtx, h.logger).Error("list tasks failed", zap.Error(err))
		h.render(ctx, "tasks/list", view.ListPage{
			Tasks:      []view.TaskView{},
			Pagination: view.Pagination{Size: defaultSize},
			Error:      "Failed to load tasks. Please try again later.",
		})
		return
	}

	h.render(ctx, "tasks/list", view.ListPage{
		Tasks:      view.NewTaskViews(page.Items),
		Pagination: view.NewPagination(page),
		Filters: view.Filters{
			Status:   query.Status,
			Priority: query.Priority,
			Search:   query.Search,
		},
		Success: view.SuccessMessage(string(args.Peek("success"))),
		Error:   view.ErrorMessage(string(args.Peek("error"))),
	})
}

// NewForm renders the empty create form without calling upstream.
func (h *TaskHandler) NewForm(ctx *fasthttp.RequestCtx) {
	h.render(ctx, "tasks/form", view.FormPage{})
}

// Create validates the submitted form and posts it upstream. Validation and
// upstream failures both re-render the form inline with the submitted
// fields echoed back.
func (h *TaskHandler) Create(ctx *fasthttp.RequestCtx) {
	form := readTaskForm(ctx)
	if msg := form.validate(); msg != "" {
		h.render(ctx, "tasks/form", form.page("", false, msg))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if _, err := h.api.Create(stdCtx, form.input(false)); err != nil {
		appLogger.WithRequestID(stdCtx, h.logger).Error("create task failed", zap.Error(err))
		h.render(ctx, "tasks/form", form.page("", false, preferUpstream(err, "Failed to create task. Please try again.")))
		return
	}

	h.redirect(ctx, "/tasks?success=created")
}

// Detail renders one task. Any upstream failure, not-found included, sends
// the browser back to the list.
func (h *TaskHandler) Detail(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.api.Get(stdCtx, id)
	if err != nil {
		appLogger.WithRequestID(stdCtx, h.logger).Warn("fetch task failed", zap.String("task_id", id), zap.Error(err))
		h.redirect(ctx, "/tasks?error=not-found")
		return
	}

	args := ctx.QueryArgs()
	h.render(ctx, "tasks/detail", view.DetailPage{
		Task:    view.NewTaskView(*task),
		Success: view.SuccessMessage(string(args.Peek("success"))),
		Error:   view.ErrorMessage(string(args.Peek("error"))),
	})
}

// EditForm renders the edit form pre-populated from upstream, with the due
// date reshaped for the datetime-local input.
func (h *TaskHandler) EditForm(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.api.Get(stdCtx, id)
	if err != nil {
		appLogger.WithRequestID(stdCtx, h.logger).Warn("fetch task for edit failed", zap.String("task_id", id), zap.Error(err))
		h.redirect(ctx, "/tasks?error=not-found")
		return
	}

	h.render(ctx, "tasks/form", view.FormPage{
		ID:          id,
		Title:       task.Title,
		Description: task.Description,
		DueDateTime: view.FormatDateForInput(task.DueDateTime),
		Priority:    task.Priority,
		Status:      task.Status,
		IsEdit:      true,
	})
}

// Edit validates the submitted form and PUTs the full update upstream.
func (h *TaskHandler) Edit(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)

	form := readTaskForm(ctx)
	if msg := form.validate(); msg != "" {
		h.render(ctx, "tasks/form", form.page(id, true, msg))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if _, err := h.api.Update(stdCtx, id, form.input(true)); err != nil {
		appLogger.WithRequestID(stdCtx, h.logger).Error("update task failed", zap.String("task_id", id), zap.Error(err))
		h.render(ctx, "tasks/form", form.page(id, true, preferUpstream(err, "Failed to update task. Please try again.")))
		return
	}

	h.redirect(ctx, "/tasks/"+id+"?success=updated")
}

// UpdateStatus handles the quick status action. Unlike create/edit it never
// re-renders a form: both outcomes redirect back to the detail page.
func (h *TaskHandler) UpdateStatus(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	status := string(ctx.PostArgs().Peek("status"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if _, err := h.api.UpdateStatus(stdCtx, id, status); err != nil {
		appLogger.WithRequestID(stdCtx, h.logger).Error("update task status failed", zap.String("task_id", id), zap.Error(err))
		h.redirect(ctx, "/tasks/"+id+"?error=status-update-failed")
		return
	}

	h.redirect(ctx, "/tasks/"+id+"?success=status-updated")
}

// ConfirmDelete renders the delete confirmation page.
func (h *TaskHandler) ConfirmDelete(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.api.Get(stdCtx, id)
	if err != nil {
		appLogger.WithRequestID(stdCtx, h.logger).Warn("fetch task for delete failed", zap.String("task_id", id), zap.Error(err))
		h.redirect(ctx, "/tasks?error=not-found")
		return
	}

	h.render(ctx, "tasks/delete-confirm", view.ConfirmPage{Task: view.NewTaskView(*task)})
}

// Delete removes the task upstream and redirects to the list either way.
func (h *TaskHandler) Delete(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.api.Delete(stdCtx, id); err != nil {
		appLogger.WithRequestID(stdCtx, h.logger).Error("delete task failed", zap.String("task_id", id), zap.Error(err))
		h.redirect(ctx, "/tasks?error=delete-failed")
		return
	}

	h.redirect(ctx, "/tasks?success=deleted")
}

// taskForm holds the normalized create/edit submission. Title and
// description are trimmed on read; validation happens at submit time only.
type taskForm struct {
	Title       string
	Description string
	DueDateTime string
	Priority    string
	Status      string
}

func readTaskForm(ctx *fasthttp.RequestCtx) taskForm {
	args := ctx.PostArgs()
	return taskForm{
		Title:       strings.TrimSpace(string(args.Peek("title"))),
		Description: strings.TrimSpace(string(args.Peek("description"))),
		DueDateTime: string(args.Peek("dueDateTime")),
		Priority:    string(args.Peek("priority")),
		Status:      string(args.Peek("status")),
	}
}

// validate returns the field-specific message for the first failing check,
// or "" when the submission is acceptable.
func (f taskForm) validate() string {
	if f.Title == "" {
		return "Title is required"
	}
	if f.DueDateTime == "" {
		return "Due date and time is required"
	}
	return ""
}

// input builds the upstream request body. Priority defaults to MEDIUM;
// status is only carried on edits and defaults to PENDING there.
func (f taskForm) input(isEdit bool) upstream.TaskInput {
	in := upstream.TaskInput{
		Title:       f.Title,
		Description: f.Description,
		DueDateTime: f.DueDateTime,
		Priority:    f.Priority,
	}
	if in.Priority == "" {
		in.Priority = "MEDIUM"
	}
	if isEdit {
		in.Status = f.Status
		if in.Status == "" {
			in.Status = "PENDING"
		}
	}
	return in
}

// page echoes the submission back into the form template.
func (f taskForm) page(id string, isEdit bool, errMsg string) view.FormPage {
	return view.FormPage{
		ID:          id,
		Title:       f.Title,
		Description: f.Description,
		DueDateTime: f.DueDateTime,
		Priority:    f.Priority,
		Status:      f.Status,
		IsEdit:      isEdit,
		Error:       errMsg,
	}
}

// preferUpstream picks the upstream-supplied message over the generic
// fallback when the error body carried one.
func preferUpstream(err error, fallback string) string {
	if msg := upstream.ErrorMessage(err); msg != "" {
		return msg
	}
	return fallback
}
