package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rmonteiro/fuel-data/internal/analytics"
	"github.com/rmonteiro/fuel-data/internal/config"
	"github.com/rmonteiro/fuel-data/internal/database"
	"github.com/rmonteiro/fuel-data/internal/ingest"
	"github.com/rmonteiro/fuel-data/internal/server"
	"github.com/rmonteiro/fuel-data/internal/store"
	"github.com/rmonteiro/fuel-data/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/server.local.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting analyzer server",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to database
	logger.Info("connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	st := store.NewPostgres(pool)
	if err := st.InitSchema(ctx); err != nil {
		logger.Error("failed to initialize schema", "error", err)
		os.Exit(1)
	}

	logger.Info("database ready")

	merger := ingest.NewMerger(st, logger)
	engine := analytics.NewEngine(st, analytics.Config{
		Window:      cfg.Analytics.Window,
		TopProducts: cfg.Analytics.TopProducts,
		Bins:        cfg.Analytics.Bins,
		RankSize:    cfg.Analytics.RankSize,
	})

	srv := server.New(cfg.Server, merger, engine, pool, logger)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Handler(),
	}

	go func() {
		logger.Info("starting http server", "port", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	// Wait for shutdown
	<-ctx.Done()

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)

	logger.Info("analyzer server stopped")
}
