package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/taskweb/frontend/api/handler"
)

type Handlers struct {
	Home   *apiHandler.HomeHandler
	Task   *apiHandler.TaskHandler
	Health *apiHandler.HealthHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/", handlers.Home.Index)
	r.GET("/health", handlers.Health.Check)

	// Task routes; static segments take precedence over {id}.
	r.GET("/tasks", handlers.Task.List)
	r.GET("/tasks/create", handlers.Task.NewForm)
	r.POST("/tasks/create", handlers.Task.Create)
	r.GET("/tasks/{id}", handlers.Task.Detail)
	r.GET("/tasks/{id}/edit", handlers.Task.EditForm)
	r.POST("/tasks/{id}/edit", handlers.Task.Edit)
	r.POST("/tasks/{id}/status", handlers.Task.UpdateStatus)
	r.GET("/tasks/{id}/delete", handlers.Task.ConfirmDelete)
	r.POST("/tasks/{id}/delete", handlers.Task.Delete)

	return r
}
