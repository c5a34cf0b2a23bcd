package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"customer-support-router/config"
	_ "customer-support-router/docs" // Swagger docs
	"customer-support-router/internal/app"
	"customer-support-router/internal/httpserver"
	"customer-support-router/internal/middleware"
	"customer-support-router/pkg/log"
)

// @title       Customer Support Router API
// @description Classifies customer queries with an LLM and routes them to refund, technical support or general chat handlers.
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

	logger.Info(ctx, "Starting Customer Support Router...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Support pipeline
	supportApp, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize support pipeline: ", err)
		return
	}
	defer func() {
		if err := supportApp.Close(); err != nil {
			logger.Warnf(ctx, "Failed to close resources: %v", err)
		}
	}()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware:      middleware.New(logger, cfg.RateLimit),
		SupportUseCase:  supportApp.UseCase,
		ReadyProbe:      supportApp.ReadyProbe,
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
