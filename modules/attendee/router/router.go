package router

import (
	"event-admin-api/core/middleware"
	"event-admin-api/modules/attendee/controller"

	"github.com/labstack/echo/v4"
)

// AttendeeRouter handles attendee routes
type AttendeeRouter struct {
	AttendeeController *controller.AttendeeController
}

func NewAttendeeRouter(attendeeController *controller.AttendeeController) *AttendeeRouter {
	return &AttendeeRouter{
		AttendeeController: attendeeController,
	}
}

// Setup registers attendee routes (all protected)
func (r *AttendeeRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	attendeeRoutes := v1.Group("/private/attendees", mw.AuthMiddleware())
	attendeeRoutes.GET("", r.AttendeeController.List)
	attendeeRoutes.POST("", r.AttendeeController.Create)
	attendeeRoutes.GET("/:id", r.AttendeeController.Get)
	attendeeRoutes.PUT("/:id", r.AttendeeController.Update)
	attendeeRoutes.DELETE("/:id", r.AttendeeController.Delete)
}
