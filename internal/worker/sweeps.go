package worker

import (
	"context"
	"fmt"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/batch"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/deployment"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/ledger"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
)

// SweepJob runs a notification sweep and logs how many notifications it raised.
type SweepJob struct {
	name  string
	sweep func(ctx context.Context) (int, error)
}

// Name implements Named.
func (j *SweepJob) Name() string { return j.name }

// Process implements Job.
func (j *SweepJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx).With("job", j.name)
	log.Debug(LogMsgSweepStarting)
	n, err := j.sweep(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", j.name, err)
	}
	log.Info(LogMsgSweepCompleted, "notifications", n)
	return nil
}

// NewOverdueSweep flags deployments past their expected return date.
func NewOverdueSweep(svc deployment.Service) *SweepJob {
	return &SweepJob{name: JobNameOverdueSweep, sweep: svc.NotifyOverdue}
}

// NewExpirySweep flags items with active batches close to expiry.
func NewExpirySweep(svc batch.Service) *SweepJob {
	return &SweepJob{name: JobNameExpirySweep, sweep: svc.NotifyExpiring}
}

// NewLedgerAudit verifies every item's stock counter against its movements.
// Drift is reported through the ledger service's observer.
func NewLedgerAudit(svc ledger.Service) *SweepJob {
	return &SweepJob{name: JobNameLedgerAudit, sweep: func(ctx context.Context) (int, error) {
		sum, err := svc.VerifyAll(ctx)
		if err != nil {
			return 0, err
		}
		if len(sum.Unbalanced) > 0 {
			logger.FromContext(ctx).Warn(LogMsgLedgerDrift, "count", len(sum.Unbalanced), "checked", sum.Checked)
		}
		return len(sum.Unbalanced), nil
	}}
}
