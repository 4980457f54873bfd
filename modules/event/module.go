package event

import (
	"event-admin-api/core/database"
	"event-admin-api/core/middleware"
	"event-admin-api/modules/event/controller"
	"event-admin-api/modules/event/repository"
	"event-admin-api/modules/event/router"
	"event-admin-api/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo)
	ctrl := controller.NewEventController(svc)
	rtr := router.NewEventRouter(ctrl)

	rtr.Setup(e, mw)
}
