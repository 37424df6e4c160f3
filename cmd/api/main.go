package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-intelligence/config"
	_ "task-intelligence/docs" // Swagger docs
	"task-intelligence/internal/bootstrap"
	"task-intelligence/internal/httpserver"
	"task-intelligence/pkg/log"
)

// @title       Task Intelligence API
// @description AI suggestions for tasks: duration, priority, ordering and analysis, personalized by learned user behavior.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Task Intelligence...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s", cfg.Storage.SQLitePath)

	// 3. Engine: storage, providers, learning, context
	stack, err := bootstrap.Build(ctx, cfg, logger, nil)
	if err != nil {
		logger.Error(ctx, "Failed to initialize engine: ", err)
		return
	}
	defer stack.Close()

	logger.Infof(ctx, "Active provider: %s", stack.Router.ActiveProviderID())

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Host:            cfg.HTTPServer.Host,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Storage:         stack.Storage(),
		AssistantUC:     stack.UseCase,
		Middleware:      stack.Middleware,
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
