package auth

import (
	"event-admin-api/core/cache"
	"event-admin-api/core/database"
	"event-admin-api/core/middleware"
	"event-admin-api/modules/auth/controller"
	"event-admin-api/modules/auth/repository"
	"event-admin-api/modules/auth/router"
	"event-admin-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the auth module and registers routes
func Init(e *echo.Echo, db database.Database, cache cache.Cache, mw *middleware.Middleware) {
	repo := repository.NewAuthRepository(db)
	authService := service.NewAuthService(repo, cache)
	ctrl := controller.NewAuthController(authService)

	router.NewAuthRouter(ctrl).Setup(e, mw)
}

// GetService creates an AuthService instance for use outside the HTTP layer
// (background jobs).
func GetService(db database.Database, cache cache.Cache) service.AuthServiceInterface {
	repo := repository.NewAuthRepository(db)
	return service.NewAuthService(repo, cache)
}
