package router

import (
	"event-admin-api/core/middleware"
	"event-admin-api/modules/task/controller"

	"github.com/labstack/echo/v4"
)

// TaskRouter handles task routes
type TaskRouter struct {
	TaskController *controller.TaskController
}

func NewTaskRouter(taskController *controller.TaskController) *TaskRouter {
	return &TaskRouter{
		TaskController: taskController,
	}
}

// Setup registers task routes (all protected)
func (r *TaskRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	taskRoutes := v1.Group("/private/tasks", mw.AuthMiddleware())
	taskRoutes.GET("", r.TaskController.List)
	taskRoutes.POST("", r.TaskController.Create)
	taskRoutes.PATCH("/:id/toggle", r.TaskController.ToggleStatus)
	taskRoutes.DELETE("/:id", r.TaskController.Delete)
}
