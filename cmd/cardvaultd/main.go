package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	cardsv1 "cardvault/gen/proto/cards/v1"
	"cardvault/internal/aggregate"
	"cardvault/internal/annotate"
	"cardvault/internal/annotate/nlp"
	"cardvault/internal/annotate/vision"
	"cardvault/internal/common"
	"cardvault/internal/export"
	"cardvault/internal/pipeline"
	repo "cardvault/internal/repository"
	svc "cardvault/internal/server"
	"cardvault/internal/task"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
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

	// Earlier descriptors win overlapping spans, so the remote entity
	// extractor outranks the local pattern detector when both are present.
	descriptors := []aggregate.Descriptor{}
	if cfg.NLP.Enabled {
		nlpClient := nlp.NewClient(nlp.Config{
			BaseURL: cfg.NLP.BaseURL,
			APIKey:  cfg.NLP.APIKey,
			Timeout: cfg.NLP.Timeout,
		}, logger)
		descriptors = append(descriptors, aggregate.Descriptor{Service: nlpClient})
	}
	descriptors = append(descriptors, aggregate.Descriptor{Service: annotate.NewPatternDetector(logger)})
	engine := aggregate.NewEngine(logger, descriptors...)

	pipe := pipeline.New(cardsRepo, fieldsRepo, jobsRepo, visionClient, engine, logger)
	queue := task.NewQueue(logger, task.WithWorkers(cfg.Queue.Workers))
	exporter := export.NewService(cardsRepo, fieldsRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	cardService := svc.NewCardService(cardsRepo, fieldsRepo, jobsRepo, pipe, queue, exporter, logger)
	cardsv1.RegisterCardServiceServer(grpcServer, cardService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("cardvault listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}
