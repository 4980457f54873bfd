package attendee

import (
	"event-admin-api/core/database"
	"event-admin-api/core/middleware"
	"event-admin-api/modules/attendee/controller"
	"event-admin-api/modules/attendee/repository"
	"event-admin-api/modules/attendee/router"
	"event-admin-api/modules/attendee/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the attendee module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewAttendeeRepository(db)
	svc := service.NewAttendeeService(repo)
	ctrl := controller.NewAttendeeController(svc)
	rtr := router.NewAttendeeRouter(ctrl)

	rtr.Setup(e, mw)
}
