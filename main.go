package main

import (
	"event-admin-api/core/logger"
	"event-admin-api/core/server"
)

// @title Event Admin API
// @version 1.0
// @description API backend for the event-management admin console

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
