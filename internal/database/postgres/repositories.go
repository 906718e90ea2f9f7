package postgres

import "github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/repository"

var (
	_ repository.Inventory  = (*InventoryRepository)(nil)
	_ repository.Batch      = (*BatchRepository)(nil)
	_ repository.Deployment = (*DeploymentRepository)(nil)
	_ repository.Ledger     = (*LedgerRepository)(nil)

	_ repository.InventoryTx  = (*storeTx)(nil)
	_ repository.BatchTx      = (*storeTx)(nil)
	_ repository.DeploymentTx = (*storeTx)(nil)
)
