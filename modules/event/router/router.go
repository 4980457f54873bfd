package router

import (
	"event-admin-api/core/middleware"
	"event-admin-api/modules/event/controller"

	"github.com/labstack/echo/v4"
)

// EventRouter handles event routes
type EventRouter struct {
	EventController *controller.EventController
}

func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{
		EventController: eventController,
	}
}

// Setup registers event routes (all protected)
func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	eventRoutes := v1.Group("/private/events", mw.AuthMiddleware())
	eventRoutes.GET("", r.EventController.List)
	eventRoutes.POST("", r.EventController.Create)
	eventRoutes.GET("/:id", r.EventController.Get)
	eventRoutes.PUT("/:id", r.EventController.Update)
	eventRoutes.DELETE("/:id", r.EventController.Delete)
}
