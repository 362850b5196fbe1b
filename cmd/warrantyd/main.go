package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	warrantypb "github.com/apx-soporte/warranty-tracker/gen/proto/warranty/v1"
	"github.com/apx-soporte/warranty-tracker/internal/catalog"
	"github.com/apx-soporte/warranty-tracker/internal/clients"
	"github.com/apx-soporte/warranty-tracker/internal/common"
	"github.com/apx-soporte/warranty-tracker/internal/jobs"
	"github.com/apx-soporte/warranty-tracker/internal/products"
	"github.com/apx-soporte/warranty-tracker/internal/reconcile"
	repo "github.com/apx-soporte/warranty-tracker/internal/repository"
	svc "github.com/apx-soporte/warranty-tracker/internal/server"
	"github.com/apx-soporte/warranty-tracker/internal/tasks"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, db, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err, "driver", cfg.Database.Driver)
		os.Exit(1)
	}
	defer repo.Close(entc, db, logger)

	if err := repo.Migrate(ctx, entc, logger); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}
	if err := repo.HealthCheck(ctx, db, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	itemRepo := repo.NewRMAItemRepository(entc, logger)
	specialRepo := repo.NewSpecialRMARepository(entc, logger)
	settingsRepo := repo.NewSettingsRepository(entc, logger)
	groupRepo := repo.NewClientGroupRepository(entc, logger)
	warrantyRepo := repo.NewSerialWarrantyRepository(entc, logger)

	runner := tasks.NewRunner(logger)
	syncer := reconcile.NewSyncer(itemRepo, settingsRepo, logger)
	special := reconcile.NewSpecialImporter(specialRepo, settingsRepo, logger)
	scanner := catalog.NewScanner(nil, catalog.Heuristics{}, logger)

	jobService := jobs.NewService(runner, syncer, special, scanner, settingsRepo, jobs.Defaults{
		SheetPath:   cfg.Sync.DefaultSheetPath,
		CatalogRoot: cfg.Catalog.DefaultRoot,
	}, logger)

	unifier := clients.NewUnifier(groupRepo, itemRepo, logger)
	view := products.NewView(itemRepo, warrantyRepo, logger)

	warrantyService := svc.NewWarrantyService(jobService, itemRepo, settingsRepo, unifier, view, logger)
	warrantypb.RegisterWarrantyServiceServer(grpcServer, warrantyService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	if cfg.Sync.Watch {
		startSheetWatcher(ctx, cfg, jobService, logger)
	}

	logger.Info("warranty-tracker listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
}

// startSheetWatcher re-runs an incremental sync whenever the configured
// workbook is saved. Submission failures are logged and otherwise ignored;
// the next save tries again.
func startSheetWatcher(ctx context.Context, cfg *common.Config, jobService *jobs.Service, logger *slog.Logger) {
	events, errs, err := reconcile.WatchWorkbook(ctx, reconcile.WatchConfig{
		Path:     cfg.Sync.DefaultSheetPath,
		Debounce: cfg.Sync.WatchDebounce,
	}, logger)
	if err != nil {
		logger.Error("workbook watcher disabled", "error", err)
		return
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case path, ok := <-events:
				if !ok {
					return
				}
				id, err := jobService.SubmitSync(ctx, reconcile.Source{Path: path}, reconcile.ModeIncremental)
				if err != nil {
					logger.Error("auto-sync submission failed", "path", path, "error", err)
					continue
				}
				logger.Info("auto-sync submitted after workbook change", "path", path, "job_id", id)
			case err, ok := <-errs:
				if ok && err != nil {
					logger.Error("workbook watcher error", "error", err)
				}
			}
		}
	}()
}
