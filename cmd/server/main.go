package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-service/internal/app"
	"task-service/internal/config"
	"task-service/internal/logger"
)

func main() {
	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatalw("failed to load config", "error", err)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	application, err := app.New(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatalw("failed to initialize app", "error", err)
	}

	go func() {
		if err := application.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Errorw("http server stopped", "error", err)
			stop()
		}
	}()

	zlog.Infow("task-service started", "port", cfg.AppPort)

	<-ctx.Done()

	zlog.Infow("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		10*time.Second,
	)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		zlog.Fatalw("graceful shutdown failed", "error", err)
	}

	zlog.Infow("task-service stopped cleanly")
}
