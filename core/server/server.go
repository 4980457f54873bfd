package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"event-admin-api/core/cache"
	"event-admin-api/core/config"
	"event-admin-api/core/database"
	"event-admin-api/core/jobs"
	"event-admin-api/core/logger"
	"event-admin-api/core/middleware"
	"event-admin-api/modules/attendee"
	"event-admin-api/modules/auth"
	"event-admin-api/modules/event"
	"event-admin-api/modules/task"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run boots configuration, storage, cache, jobs and the HTTP server, then
// blocks until shutdown.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	cacheClient, err := cache.InitCache(cache.CacheConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	mw := middleware.NewMiddleware(cacheClient)

	// Module wiring
	auth.Init(e, db, cacheClient, mw)
	event.Init(e, db, mw)
	attendee.Init(e, db, mw)
	task.Init(e, db, mw)

	// Background housekeeping
	background := jobs.New(jobs.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	authService := auth.GetService(db, cacheClient)
	if err := background.RegisterPeriodic("@every 15m", "auth:cleanup_oauth_states", authService.CleanupExpiredOAuthStates); err != nil {
		logger.Error("Server:Run:RegisterPeriodic:Error:", err)
	} else {
		background.Start()
		defer background.Shutdown()
	}

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Run:Start:Error:", err)
		}
	}()

	logger.Info("Server started", "host", cfg.Server.Host, "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return e.Shutdown(ctx)
}
