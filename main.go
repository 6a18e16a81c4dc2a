// File: agenda/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"agenda/config"
	"agenda/cron"
	"agenda/database"
	schedulingRepo "agenda/database/repository/scheduling"
	"agenda/handlers"
	"agenda/middleware"
	"agenda/routes"
	"agenda/services/scheduling"
	"agenda/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	repo := schedulingRepo.NewMongoSchedulingRepo()
	if err := repo.EnsureIndexes(context.Background()); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
	}

	// reminder queue.
	reminderScheduler := cron.NewAsynqReminderScheduler()
	cron.InitReminderWorker(repo)

	// services.
	schedulingService := &scheduling.DefaultSchedulingService{
		Appointments: repo,
		BlockedSlots: repo.BlockedSlots(),
		Services:     repo.Services(),
		Tx:           repo,
		Cache: &scheduling.CalendarCache{
			Client: utils.GetCacheClient(),
			TTL:    time.Duration(config.AppConfig.CalendarCacheTTLMinutes) * time.Minute,
		},
		Reminders: reminderScheduler,
	}

	schedulingHandler := handlers.NewSchedulingHandler(schedulingService, logger)
	routes.RegisterRoutes(router, schedulingHandler)

	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
