package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cardvault/constants"
	"cardvault/internal/aggregate"
	"cardvault/internal/annotate"
	"cardvault/internal/annotate/vision"
	"cardvault/internal/common"
	"cardvault/internal/export"
	"cardvault/internal/pipeline"
	repo "cardvault/internal/repository"
	"cardvault/internal/task"

	"github.com/google/uuid"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir     = flag.String("dir", "", "directory of card images to scan (required)")
		dsn     = flag.String("db", ":memory:", "database DSN (sqlite://path, :memory:, or postgres URL)")
		out     = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		workers = flag.Int("workers", 4, "concurrent scans")
		timeout = flag.Duration("timeout", 5*time.Minute, "overall scan deadline")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "contacts.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	entc, pool, err := repo.Open(ctx, repo.Config{DSN: *dsn}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err, "dsn", *dsn)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("failed to create schema", "error", err)
		os.Exit(1)
	}

	cardsRepo := repo.NewCardRepository(entc, logger)
	fieldsRepo := repo.NewFieldRepository(entc, logger)
	jobsRepo := repo.NewScanJobRepository(entc, logger)

	visionClient := vision.NewClient(vision.Config{
		BaseURL: cfg.Vision.BaseURL,
		APIKey:  cfg.Vision.APIKey,
		Timeout: cfg.Vision.Timeout,
	}, logger)
	engine := aggregate.NewEngine(logger,
		aggregate.Descriptor{Service: annotate.NewPatternDetector(logger)},
	)
	pipe := pipeline.New(cardsRepo, fieldsRepo, jobsRepo, visionClient, engine, logger)
	queue := task.NewQueue(logger, task.WithWorkers(*workers))

	entries, err := os.ReadDir(*dir)
	if err != nil {
		logger.Error("failed to read directory", "dir", *dir, "error", err)
		os.Exit(1)
	}

	var tasks []*task.Task
	var cardIDs []uuid.UUID
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := constants.NormalizeExt(filepath.Ext(entry.Name()))
		if !constants.IsAllowedExt(ext) {
			continue
		}
		path := filepath.Join(*dir, entry.Name())
		img, err := os.ReadFile(path)
		if err != nil {
			logger.Error("failed to read image", "path", path, "error", err)
			continue
		}
		card, err := cardsRepo.Create(ctx, entry.Name(), img, ext)
		if err != nil {
			logger.Error("failed to store card", "path", path, "error", err)
			continue
		}
		tk, job, err := pipe.NewScan(ctx, card.ID, nil)
		if err != nil {
			logger.Error("failed to start scan", "card_id", card.ID, "error", err)
			continue
		}
		if !queue.Add(tk) {
			break
		}
		logger.Info("scan enqueued", "card_id", card.ID, "job_id", job.ID, "file", entry.Name())
		tasks = append(tasks, tk)
		cardIDs = append(cardIDs, card.ID)
	}
	if len(tasks) == 0 {
		logger.Error("no card images found", "dir", *dir)
		os.Exit(1)
	}

	deadline := time.Now().Add(*timeout)
	for _, tk := range tasks {
		for !tk.State().Terminal() {
			if time.Now().After(deadline) {
				logger.Error("scan deadline exceeded", "pending", len(tasks))
				os.Exit(1)
			}
			time.Sleep(50 * time.Millisecond)
		}
	}
	queue.Shutdown(ctx)

	exporter := export.NewService(cardsRepo, fieldsRepo, logger)
	content, err := exporter.ExportContactsXLSX(ctx, cardIDs)
	if err != nil {
		logger.Error("failed to export contacts", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, content, 0o644); err != nil {
		logger.Error("failed to write output", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("batch scan complete", "cards", len(cardIDs), "out", *out)
}
