package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/auth"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/batch"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/bootstrap"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/config"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/database"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/database/postgres"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/deployment"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/eventlog"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/inventory"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/ledger"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/server"
)

const shutdownTimeout = 30 * time.Second

// @title						Disaster Response Inventory API
// @version					1.0
// @description				Batches, serialized units, deployments and returns with a verifiable stock ledger.
// @BasePath					/api/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	issueFor := flag.Int64("issue-token", 0, "print a bearer token for this user id and exit")
	role := flag.String("role", auth.RoleStaff, "role for -issue-token (admin or staff)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if *issueFor > 0 {
		if err := issueToken(cfg, *issueFor, *role); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to issue token: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err := run(cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func issueToken(cfg *config.Config, userID int64, role string) error {
	issuer, err := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return err
	}
	token, err := issuer.Issue(userID, role)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbPool.Close()

	if err := database.Migrate(ctx, dbPool); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	issuer, err := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("failed to create token issuer: %w", err)
	}

	cacheLayer, readiness, err := bootstrap.InitializeCache(ctx, cfg)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	auditSvc := eventlog.NewService(postgres.NewEventLogRepository(dbPool))
	handlers, err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        bus,
		EventLogService: auditSvc,
		Config:          cfg,
	})
	if err != nil {
		return err
	}

	svc := server.Services{
		Inventory:   inventory.NewService(postgres.NewInventoryRepository(dbPool), publisher, cacheLayer),
		Batches:     batch.NewService(postgres.NewBatchRepository(dbPool), publisher, cacheLayer),
		Deployments: deployment.NewService(postgres.NewDeploymentRepository(dbPool), publisher, cacheLayer),
		Ledger:      ledger.NewService(postgres.NewLedgerRepository(dbPool), handlers.Metrics),
		Audit:       auditSvc,
	}

	if _, err := bootstrap.SyncCategories(ctx, svc.Inventory, config.ConfigPathCategories); err != nil {
		// The API is usable without the seed list.
		slog.Warn("Category sync failed", "error", err)
	}

	jobs := bootstrap.StartBackgroundJobs(ctx, bootstrap.JobDependencies{
		Deployments: svc.Deployments,
		Batches:     svc.Batches,
		Ledger:      svc.Ledger,
		EventLog:    svc.Audit,
		Config:      cfg,
	})

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		TrustedProxies:  cfg.TrustedProxies,
		Issuer:          issuer,
		DBPool:          dbPool,
		ReadinessChecks: readiness,
		Stream:          handlers.Stream,
	}, svc)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	closers := append([]io.Closer{cacheLayer}, handlers.Closers...)
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Jobs:               jobs,
		Stream:             handlers.Stream,
		ResilientPublisher: publisher,
		Closers:            closers,
	})
	return runErr
}
