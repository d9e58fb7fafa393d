package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	gcstorage "cloud.google.com/go/storage"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	scanspb "github.com/tobi-salau/resumescan/gen/proto/scans/v1"
	"github.com/tobi-salau/resumescan/internal/common"
	"github.com/tobi-salau/resumescan/internal/enrich/tavily"
	"github.com/tobi-salau/resumescan/internal/export"
	"github.com/tobi-salau/resumescan/internal/extract"
	"github.com/tobi-salau/resumescan/internal/pipeline"
	repo "github.com/tobi-salau/resumescan/internal/repository"
	svc "github.com/tobi-salau/resumescan/internal/server"
	"github.com/tobi-salau/resumescan/internal/storage"
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

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("failed to run schema migration", "error", err)
		os.Exit(1)
	}

	var store storage.ObjectStore
	switch cfg.Storage.Backend {
	case "gcs":
		gcs, err := gcstorage.NewClient(ctx)
		if err != nil {
			logger.Error("failed to create gcs client", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := gcs.Close(); err != nil {
				logger.Warn("failed to close gcs client", "error", err)
			}
		}()
		store = storage.NewGCSStore(gcs, cfg.Storage.GCSBucket, logger)
	default:
		fsStore, err := storage.NewFSStore(cfg.Storage.LocalDir, logger)
		if err != nil {
			logger.Error("failed to create local store", "error", err)
			os.Exit(1)
		}
		store = fsStore
	}

	scansRepo := repo.NewScanRepository(entc, logger)
	resultsRepo := repo.NewScanResultRepository(entc, logger)

	searchClient := tavily.NewClient(tavily.Config{
		APIKey:      cfg.Search.APIKey,
		BaseURL:     cfg.Search.BaseURL,
		SearchDepth: cfg.Search.SearchDepth,
		MaxResults:  cfg.Search.MaxResults,
		Timeout:     cfg.Search.Timeout,
	}, logger)

	processor := pipeline.NewProcessor(
		logger,
		pipeline.Config{
			MaxUploadBytes:  cfg.Scan.MaxUploadBytes,
			StoredTextChars: cfg.Scan.StoredTextChars,
		},
		store,
		scansRepo,
		resultsRepo,
		extract.NewDocumentExtractor(logger),
		searchClient,
	)

	exporter := export.NewService(scansRepo, resultsRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	scanService := svc.NewScanService(processor, scansRepo, exporter, logger)
	scanspb.RegisterScanServiceServer(grpcServer, scanService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("resumescan listening", "addr", cfg.Server.GRPCAddr, "storage_backend", cfg.Storage.Backend)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
