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
)

// storeTx is the single transaction type behind every repository's BeginTx.
// It satisfies repository.BatchTx, repository.DeploymentTx and repository.InventoryTx.
type storeTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

func beginStoreTx(ctx context.Context, db *pgxpool.Pool, q *generated.Queries) (*storeTx, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &storeTx{tx: tx, q: q.WithTx(tx)}, nil
}

// Commit commits the transaction
func (t *storeTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		if cerr := constraintError(err); cerr != nil {
			return cerr
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Rollback rolls back the transaction
func (t *storeTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return domain.ErrTxClosed
	}
	return err
}

func (t *storeTx) GetItemForUpdate(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	row, err := t.q.GetInventoryItemForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockItem, err)
	}
	item := toItem(row)
	return &item, nil
}

func (t *storeTx) AdjustStock(ctx context.Context, itemID int64, delta int) (int, error) {
	stock, err := t.q.AdjustItemStock(ctx, generated.AdjustItemStockParams{Delta: int32(delta), ID: itemID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrItemNotFound
		}
		return 0, writeError(err, ErrMsgFailedToAdjustStock)
	}
	return int(stock), nil
}

func (t *storeTx) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	row, err := t.q.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCategory, err)
	}
	c := toCategory(row)
	return &c, nil
}

// CreateNotification inserts inside a savepoint so a failed insert does not
// abort the enclosing transaction.
func (t *storeTx) CreateNotification(ctx context.Context, n *domain.Notification) error {
	sp, err := t.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginSavepoint, err)
	}
	defer SafeRollback(ctx, sp)

	row, err := t.q.WithTx(sp).CreateNotification(ctx, generated.CreateNotificationParams{
		Type:         string(n.Type),
		ItemID:       ptrToInt8(n.ItemID),
		DeploymentID: ptrToInt8(n.DeploymentID),
		Message:      n.Message,
		Priority:     string(n.Priority),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateNotification, err)
	}
	if err := sp.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateNotification, err)
	}
	*n = toNotification(row)
	return nil
}

func (t *storeTx) HasRecentNotification(ctx context.Context, nt domain.NotificationType, itemID, deploymentID *int64, since time.Time) (bool, error) {
	exists, err := t.q.HasRecentNotification(ctx, generated.HasRecentNotificationParams{
		Type:         string(nt),
		ItemID:       ptrToInt8(itemID),
		DeploymentID: ptrToInt8(deploymentID),
		Since:        timeToTs(since),
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckNotification, err)
	}
	return exists, nil
}

func (t *storeTx) UpdateSerializedItemStatus(ctx context.Context, id int64, status domain.SerializedItemStatus, note string) error {
	err := t.q.UpdateSerializedItemStatus(ctx, generated.UpdateSerializedItemStatusParams{
		Status: string(status),
		Note:   note,
		ID:     id,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateSerializedItem, err)
	}
	return nil
}

func (t *storeTx) GetSerializedItemForUpdate(ctx context.Context, id int64) (*domain.SerializedItem, error) {
	row, err := t.q.GetSerializedItemForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSerializedItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockSerializedItems, err)
	}
	unit := toSerializedItem(row)
	return &unit, nil
}

func (t *storeTx) GetSerializedItemsForUpdate(ctx context.Context, ids []int64) ([]domain.SerializedItem, error) {
	rows, err := t.q.GetSerializedItemsForUpdate(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockSerializedItems, err)
	}
	return mapAll(rows, toSerializedItem), nil
}

// ---- batch writes ----

func (t *storeTx) CreateBatch(ctx context.Context, b *domain.Batch) error {
	row, err := t.q.CreateBatch(ctx, generated.CreateBatchParams{
		ItemID:      b.ItemID,
		BatchNumber: b.BatchNumber,
		Quantity:    int32(b.Quantity),
		Supplier:    b.Supplier,
		UnitCost:    b.UnitCost,
		ExpiryDate:  ptrToDate(b.ExpiryDate),
		ReceivedAt:  timeToTs(b.ReceivedAt),
		ReceivedBy:  b.ReceivedBy,
		Notes:       b.Notes,
	})
	if err != nil {
		return writeError(err, ErrMsgFailedToCreateBatch)
	}
	*b = toBatch(row)
	return nil
}

func (t *storeTx) CreateSerializedItems(ctx context.Context, items []domain.SerializedItem) error {
	params := make([]generated.CreateSerializedItemsParams, len(items))
	for i, it := range items {
		params[i] = generated.CreateSerializedItemsParams{
			SerialNumber: it.SerialNumber,
			BatchID:      it.BatchID,
			ItemID:       it.ItemID,
			Status:       string(it.Status),
		}
	}
	if _, err := t.q.CreateSerializedItems(ctx, params); err != nil {
		return writeError(err, ErrMsgFailedToCreateSerializedItems)
	}
	return nil
}

func (t *storeTx) GetBatchForUpdate(ctx context.Context, id int64) (*domain.Batch, error) {
	row, err := t.q.GetBatchForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBatchNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetBatch, err)
	}
	b := toBatch(row)
	return &b, nil
}

func (t *storeTx) ListSerializedItemsByBatchForUpdate(ctx context.Context, batchID int64) ([]domain.SerializedItem, error) {
	rows, err := t.q.ListSerializedItemsByBatchForUpdate(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockSerializedItems, err)
	}
	return mapAll(rows, toSerializedItem), nil
}

func (t *storeTx) DeactivateBatch(ctx context.Context, id int64) error {
	if err := t.q.DeactivateBatch(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeactivateBatch, err)
	}
	return nil
}

// ---- deployment writes ----

func (t *storeTx) GetDeployment(ctx context.Context, id int64) (*domain.Deployment, error) {
	row, err := t.q.GetDeployment(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDeploymentNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDeployment, err)
	}
	d := toDeployment(row)
	return &d, nil
}

func (t *storeTx) GetDeploymentForUpdate(ctx context.Context, id int64) (*domain.Deployment, error) {
	row, err := t.q.GetDeploymentForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDeploymentNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDeployment, err)
	}
	d := toDeployment(row)
	return &d, nil
}

func (t *storeTx) CreateDeployment(ctx context.Context, d *domain.Deployment) error {
	row, err := t.q.CreateDeployment(ctx, generated.CreateDeploymentParams{
		ItemID:             d.ItemID,
		DeployedBy:         d.DeployedBy,
		DeployedTo:         ptrToInt8(d.DeployedTo),
		DeploymentType:     string(d.DeploymentType),
		QuantityDeployed:   int32(d.QuantityDeployed),
		IsSerialized:       d.IsSerialized,
		DeploymentLocation: d.Location,
		DeploymentDate:     timeToTs(d.DeploymentDate),
		ExpectedReturnDate: ptrToTs(d.ExpectedReturnDate),
		Status:             string(d.Status),
		Notes:              d.Notes,
	})
	if err != nil {
		return writeError(err, ErrMsgFailedToCreateDeployment)
	}
	*d = toDeployment(row)
	return nil
}

func (t *storeTx) CreateDeploymentLinks(ctx context.Context, deploymentID int64, serialIDs []int64, deployedAt time.Time) error {
	params := make([]generated.CreateDeploymentLinksParams, len(serialIDs))
	for i, id := range serialIDs {
		params[i] = generated.CreateDeploymentLinksParams{
			DeploymentID:     deploymentID,
			SerializedItemID: id,
			DeployedAt:       timeToTs(deployedAt),
		}
	}
	if _, err := t.q.CreateDeploymentLinks(ctx, params); err != nil {
		return writeError(err, ErrMsgFailedToCreateDeploymentLinks)
	}
	return nil
}

func (t *storeTx) ListDeploymentLinks(ctx context.Context, deploymentID int64) ([]domain.SerialItemDeployment, error) {
	rows, err := t.q.ListDeploymentLinks(ctx, deploymentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDeploymentLinks, err)
	}
	return mapAll(rows, toLink), nil
}

func (t *storeTx) ListDeploymentLinksForUpdate(ctx context.Context, deploymentID int64) ([]domain.SerialItemDeployment, error) {
	rows, err := t.q.ListDeploymentLinksForUpdate(ctx, deploymentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDeploymentLinks, err)
	}
	return mapAll(rows, toLink), nil
}

func (t *storeTx) UpdateDeploymentLinkReturn(ctx context.Context, linkID int64, returnedAt time.Time, c domain.ReturnCondition, note string) error {
	err := t.q.UpdateDeploymentLinkReturn(ctx, generated.UpdateDeploymentLinkReturnParams{
		ReturnedAt:      timeToTs(returnedAt),
		ReturnCondition: ptrToText(&c),
		Note:            note,
		ID:              linkID,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateDeploymentLink, err)
	}
	return nil
}

func (t *storeTx) UpdateDeploymentReturn(ctx context.Context, u domain.DeploymentReturnUpdate) error {
	err := t.q.UpdateDeploymentReturn(ctx, generated.UpdateDeploymentReturnParams{
		Status:           string(u.Status),
		ReturnCondition:  ptrToText(u.ReturnCondition),
		ActualReturnDate: ptrToTs(u.ActualReturnDate),
		Note:             u.Note,
		ID:               u.DeploymentID,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateDeployment, err)
	}
	return nil
}
