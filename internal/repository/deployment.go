package repository

import (
	"context"
	"time"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
)

// Deployment defines the interface for deployment persistence
type Deployment interface {
	GetDeployment(ctx context.Context, id int64) (*domain.Deployment, error)
	ListDeployments(ctx context.Context, f domain.DeploymentFilter) ([]domain.Deployment, error)
	ListDeploymentLinks(ctx context.Context, deploymentID int64) ([]domain.SerialItemDeployment, error)
	ListOverdueDeployments(ctx context.Context, now time.Time) ([]domain.Deployment, error)
	GetItem(ctx context.Context, id int64) (*domain.InventoryItem, error)
	BeginTx(ctx context.Context) (DeploymentTx, error)
}

// DeploymentTx defines the interface for deployment and return transactions
type DeploymentTx interface {
	Tx
	StockTx
	NotificationWriter
	SerialStatusTx
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	GetDeployment(ctx context.Context, id int64) (*domain.Deployment, error)
	GetDeploymentForUpdate(ctx context.Context, id int64) (*domain.Deployment, error)
	GetSerializedItemsForUpdate(ctx context.Context, ids []int64) ([]domain.SerializedItem, error)
	CreateDeployment(ctx context.Context, d *domain.Deployment) error
	CreateDeploymentLinks(ctx context.Context, deploymentID int64, serialIDs []int64, deployedAt time.Time) error
	ListDeploymentLinks(ctx context.Context, deploymentID int64) ([]domain.SerialItemDeployment, error)
	ListDeploymentLinksForUpdate(ctx context.Context, deploymentID int64) ([]domain.SerialItemDeployment, error)
	UpdateDeploymentLinkReturn(ctx context.Context, linkID int64, returnedAt time.Time, c domain.ReturnCondition, note string) error
	UpdateDeploymentReturn(ctx context.Context, u domain.DeploymentReturnUpdate) error
}
