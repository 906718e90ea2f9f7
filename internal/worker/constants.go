package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerQueueFull = "Worker queue full, dropping job"
	LogMsgPoolStopping    = "Worker pool stopping"
	LogMsgPoolStopTimeout = "Worker pool stop timed out"
)

// ============================================================================
// Log Messages - Sweeps
// ============================================================================

// Log messages for periodic sweep jobs
const (
	LogMsgSweepStarting  = "Sweep starting"
	LogMsgSweepCompleted = "Sweep completed"
	LogMsgLedgerDrift    = "Ledger audit found unbalanced items"
)

// Sweep job names
const (
	JobNameOverdueSweep = "overdue_deployments"
	JobNameExpirySweep  = "expiring_batches"
	JobNameLedgerAudit  = "ledger_audit"
)

// DefaultJobTimeout bounds a single job execution.
const DefaultJobTimeout = 2 * time.Minute
