package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/worker"
)

// Enqueuer accepts jobs for asynchronous execution.
type Enqueuer interface {
	Enqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	pool     Enqueuer
	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. With runNow set the
// job is also enqueued once immediately, so sweeps missed while the service
// was down run at startup. Non-positive intervals disable the job.
func (s *Scheduler) Schedule(ctx context.Context, interval time.Duration, job worker.Job, runNow bool) {
	log := logger.FromContext(ctx)
	if interval <= 0 {
		log.Info("Scheduled job disabled", "job", nameOf(job))
		return
	}
	log.Info("Scheduling job", "job", nameOf(job), "interval", interval, "run_now", runNow)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if runNow {
			s.pool.Enqueue(job)
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				// A full queue drops this tick; the next tick retries.
				s.pool.Enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}

func nameOf(job worker.Job) string {
	if n, ok := job.(worker.Named); ok {
		return n.Name()
	}
	return "anonymous"
}
