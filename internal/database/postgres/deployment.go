package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/database/generated"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/repository"
)

// DeploymentRepository implements repository.Deployment for PostgreSQL
type DeploymentRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewDeploymentRepository creates a new DeploymentRepository
func NewDeploymentRepository(db *pgxpool.Pool) *DeploymentRepository {
	return &DeploymentRepository{
		db: db,
		q:  generated.New(db),
	}
}

// BeginTx starts a new transaction
func (r *DeploymentRepository) BeginTx(ctx context.Context) (repository.DeploymentTx, error) {
	tx, err := beginStoreTx(ctx, r.db, r.q)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// GetDeployment retrieves a deployment by ID
func (r *DeploymentRepository) GetDeployment(ctx context.Context, id int64) (*domain.Deployment, error) {
	row, err := r.q.GetDeployment(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDeploymentNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDeployment, err)
	}
	d := toDeployment(row)
	return &d, nil
}

// ListDeployments returns deployments matching the filter, newest first
func (r *DeploymentRepository) ListDeployments(ctx context.Context, f domain.DeploymentFilter) ([]domain.Deployment, error) {
	limit, offset := domain.NormalizePage(f.Limit, f.Offset)
	rows, err := r.q.ListDeployments(ctx, generated.ListDeploymentsParams{
		ItemID: ptrToInt8(f.ItemID),
		Status: ptrToText(f.Status),
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDeployments, err)
	}
	return mapAll(rows, toDeployment), nil
}

// ListDeploymentLinks returns the serialized units of a deployment
func (r *DeploymentRepository) ListDeploymentLinks(ctx context.Context, deploymentID int64) ([]domain.SerialItemDeployment, error) {
	rows, err := r.q.ListDeploymentLinks(ctx, deploymentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDeploymentLinks, err)
	}
	return mapAll(rows, toLink), nil
}

// ListOverdueDeployments returns open deployments whose expected return is before now
func (r *DeploymentRepository) ListOverdueDeployments(ctx context.Context, now time.Time) ([]domain.Deployment, error) {
	rows, err := r.q.ListOverdueDeployments(ctx, timeToTs(now))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDeployments, err)
	}
	return mapAll(rows, toDeployment), nil
}

// GetItem retrieves an item by ID
func (r *DeploymentRepository) GetItem(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	return getItem(ctx, r.q, id)
}
