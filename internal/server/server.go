// Package server boots every subsystem and runs the HTTP server until
// interrupted.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Austinkuria/E-commerce-Site/app/jobs"
	"github.com/Austinkuria/E-commerce-Site/config"
	"github.com/Austinkuria/E-commerce-Site/internal/kernel"
	"github.com/Austinkuria/E-commerce-Site/pkg/cache"
	"github.com/Austinkuria/E-commerce-Site/pkg/database"
	"github.com/Austinkuria/E-commerce-Site/pkg/grpc"
	"github.com/Austinkuria/E-commerce-Site/pkg/logger"
	"github.com/Austinkuria/E-commerce-Site/pkg/queue"
	"github.com/Austinkuria/E-commerce-Site/pkg/schedule"
	"github.com/Austinkuria/E-commerce-Site/pkg/storage"
)

const (
	queueWorkers    = 5
	shutdownTimeout = 10 * time.Second
)

// Start boots configuration, the database, cache, storage, background
// workers, the gRPC health server, and finally the HTTP server. It blocks
// until SIGINT or SIGTERM, then shuts everything down gracefully.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}

	if err := database.Connect(); err != nil {
		return fmt.Errorf("server: connect database: %w", err)
	}

	// Redis is optional: without it the catalogue cache is skipped and the
	// queue falls back to the in-memory driver.
	redisUp := true
	if err := cache.Connect(); err != nil {
		logger.Warn("server: redis unavailable, using in-memory queue", "error", err)
		redisUp = false
	}

	storage.Connect()

	queue.UseDB(database.DB)
	if redisUp {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}

	jobs.Boot()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	queue.StartWorkers(ctx, queueWorkers)
	schedule.Start(ctx)

	grpcSrv, _, err := grpc.Start(config.GRPCPort())
	if err != nil {
		return fmt.Errorf("server: start grpc: %w", err)
	}
	defer grpc.Stop(grpcSrv)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           kernel.BuildHandler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: http listening", "addr", srv.Addr, "env", config.AppEnv())
		fmt.Printf("Shop running on %s\n", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: http: %w", err)
		}
		return nil
	}

	logger.Info("server: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	logger.Info("server: stopped")
	return nil
}
