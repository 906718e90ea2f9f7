package deployment

import (
	"context"
	"fmt"
	"time"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/cache"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/event"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/notify"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/repository"
)

// Service defines the deployment lifecycle interface
type Service interface {
	CreateDeployment(ctx context.Context, in CreateDeploymentInput) (*CreateResult, error)
	ReturnDeployment(ctx context.Context, in ReturnDeploymentInput) (*ReturnResult, error)
	GetDeployment(ctx context.Context, id int64) (*Detail, error)
	ListDeployments(ctx context.Context, f domain.DeploymentFilter) ([]domain.Deployment, error)
	ListOverdue(ctx context.Context) ([]domain.Deployment, error)
	NotifyOverdue(ctx context.Context) (int, error)
}

// Detail is a deployment with its serialized unit links.
type Detail struct {
	domain.Deployment
	Items []domain.SerialItemDeployment `json:"items,omitempty"`
}

type service struct {
	repo      repository.Deployment
	publisher event.Publisher
	cache     *cache.Layer
	now       func() time.Time
}

// NewService creates a new deployment service. publisher and cacheLayer may be nil.
func NewService(repo repository.Deployment, publisher event.Publisher, cacheLayer *cache.Layer) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		cache:     cacheLayer,
		now:       time.Now,
	}
}

func (s *service) GetDeployment(ctx context.Context, id int64) (*Detail, error) {
	return cache.GetOrLoad(ctx, s.cache, cache.Key(cache.PrefixDeployments, "id", id), func(ctx context.Context) (*Detail, error) {
		d, err := s.repo.GetDeployment(ctx, id)
		if err != nil {
			return nil, err
		}
		detail := &Detail{Deployment: *d}
		if d.IsSerialized {
			if detail.Items, err = s.repo.ListDeploymentLinks(ctx, id); err != nil {
				return nil, fmt.Errorf("failed to list deployment items: %w", err)
			}
		}
		return detail, nil
	})
}

func (s *service) ListDeployments(ctx context.Context, f domain.DeploymentFilter) ([]domain.Deployment, error) {
	if f.Status != nil && !f.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	f.Limit, f.Offset = domain.NormalizePage(f.Limit, f.Offset)

	item, status := "all", "all"
	if f.ItemID != nil {
		item = fmt.Sprint(*f.ItemID)
	}
	if f.Status != nil {
		status = string(*f.Status)
	}
	key := cache.Key(cache.PrefixDeployments, "list", item, status, f.Limit, f.Offset)
	return cache.GetOrLoad(ctx, s.cache, key, func(ctx context.Context) ([]domain.Deployment, error) {
		return s.repo.ListDeployments(ctx, f)
	})
}

// ListOverdue returns open deployments past their expected return date.
func (s *service) ListOverdue(ctx context.Context) ([]domain.Deployment, error) {
	return s.repo.ListOverdueDeployments(ctx, s.now())
}

// NotifyOverdue raises an OVERDUE_RETURN notification for each overdue
// deployment not already flagged within the last day.
func (s *service) NotifyOverdue(ctx context.Context) (int, error) {
	now := s.now()
	overdue, err := s.repo.ListOverdueDeployments(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to list overdue deployments: %w", err)
	}
	if len(overdue) == 0 {
		return 0, nil
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	log := logger.FromContext(ctx)
	rec := notify.NewRecorder(tx)
	for i := range overdue {
		d := &overdue[i]
		item, err := s.repo.GetItem(ctx, d.ItemID)
		if err != nil {
			log.Warn(LogMsgOverdueItemSkipped, "deployment_id", d.ID, "error", err)
			continue
		}
		rec.RecordOnce(ctx, notify.OverdueReturn(item, d), now.Add(-notify.DedupWindow))
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	notify.Publish(ctx, s.publisher, rec.Created())

	log.Info(LogMsgOverdueSweepDone, "overdue", len(overdue), "notified", len(rec.Created()))
	return len(rec.Created()), nil
}

func (s *service) afterCommit(ctx context.Context, e event.Event, notes []domain.Notification) {
	s.cache.Invalidate(ctx, cache.StockPatterns()...)
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, e)
	}
	notify.Publish(ctx, s.publisher, notes)
}
