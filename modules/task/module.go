package task

import (
	"event-admin-api/core/database"
	"event-admin-api/core/middleware"
	"event-admin-api/modules/task/controller"
	"event-admin-api/modules/task/repository"
	"event-admin-api/modules/task/router"
	"event-admin-api/modules/task/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the task module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewTaskRepository(db)
	svc := service.NewTaskService(repo)
	ctrl := controller.NewTaskController(svc)
	rtr := router.NewTaskRouter(ctrl)

	rtr.Setup(e, mw)
}
