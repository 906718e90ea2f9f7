package bootstrap

import (
	"context"
	"log/slog"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/batch"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/config"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/deployment"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/eventlog"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/ledger"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/scheduler"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/worker"
)

// JobDependencies are the services the periodic sweeps call into.
type JobDependencies struct {
	Deployments deployment.Service
	Batches     batch.Service
	Ledger      ledger.Service
	EventLog    eventlog.Service
	Config      *config.Config
}

// BackgroundJobs owns the worker pool and the scheduler feeding it.
type BackgroundJobs struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// StartBackgroundJobs starts the worker pool and schedules the overdue,
// expiry, ledger audit and event log cleanup sweeps. A zero interval leaves
// that sweep off.
func StartBackgroundJobs(ctx context.Context, deps JobDependencies) *BackgroundJobs {
	cfg := deps.Config

	pool := worker.NewPool(ctx, cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(ctx, cfg.OverdueSweepInterval, worker.NewOverdueSweep(deps.Deployments), true)
	sched.Schedule(ctx, cfg.ExpirySweepInterval, worker.NewExpirySweep(deps.Batches), true)
	sched.Schedule(ctx, cfg.LedgerAuditInterval, worker.NewLedgerAudit(deps.Ledger), false)
	sched.Schedule(ctx, cfg.EventLogCleanupInterval, eventlog.NewCleanupJob(deps.EventLog, cfg.EventLogRetentionDays), false)

	slog.Info(LogMsgBackgroundJobsStarted,
		"workers", cfg.WorkerCount,
		"overdue_interval", cfg.OverdueSweepInterval,
		"expiry_interval", cfg.ExpirySweepInterval,
		"ledger_audit_interval", cfg.LedgerAuditInterval,
		"eventlog_cleanup_interval", cfg.EventLogCleanupInterval)

	return &BackgroundJobs{Pool: pool, Scheduler: sched}
}
