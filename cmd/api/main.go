package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calendar-converter/config"
	_ "calendar-converter/docs" // Swagger docs
	"calendar-converter/internal/httpserver"
	"calendar-converter/internal/schedule/usecase"
	"calendar-converter/pkg/log"
)

// @title       Calendar Converter API
// @description Turns free text, text files and images of schedules into iCalendar (.ics) files.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Converter...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Conversion pipeline
	scheduleUC, err := usecase.NewFromConfig(logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize conversion pipeline: ", err)
		return
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ScheduleUseCase: scheduleUC,
		MaxUploadMB:     cfg.Upload.MaxSizeMB,
		RateLimit:       cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
