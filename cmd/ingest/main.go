package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/rmonteiro/fuel-data/internal/config"
	"github.com/rmonteiro/fuel-data/internal/database"
	"github.com/rmonteiro/fuel-data/internal/ingest"
	"github.com/rmonteiro/fuel-data/internal/store"
	"github.com/rmonteiro/fuel-data/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/server.local.yaml", "path to config file")
	dryRun := flag.Bool("dry-run", false, "normalize and classify without touching the database")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: ingest [-config path] [-dry-run] file.csv [file.csv ...]")
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting ingestion",
		"version", version.Version,
		"files", flag.NArg(),
		"dry_run", *dryRun,
	)

	ctx := context.Background()

	var st store.Store
	if *dryRun {
		st = store.NewMemory()
	} else {
		cfg, err := config.LoadAndValidate(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}

		pool, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		pg := store.NewPostgres(pool)
		if err := pg.InitSchema(ctx); err != nil {
			logger.Error("failed to initialize schema", "error", err)
			os.Exit(1)
		}
		st = pg
	}

	merger := ingest.NewMerger(st, logger)

	failed := false
	for _, path := range flag.Args() {
		report, err := merger.IngestFile(ctx, path)
		if err != nil {
			logger.Error("ingestion failed", "path", path, "error", err)
			failed = true
			continue
		}
		fmt.Printf("%s: %d new, %d duplicate, %d rejected, %d empty (batch %s)\n",
			path, report.New, report.Duplicate, report.Rejected, report.Empty, report.BatchID)
	}

	if failed {
		os.Exit(1)
	}
}
