package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Batch is a receipt event: a quantity of one item arriving at once.
type Batch struct {
	ID          int64           `json:"id"`
	ItemID      int64           `json:"item_id"`
	BatchNumber string          `json:"batch_number"`
	Quantity    int             `json:"quantity"`
	Supplier    string          `json:"supplier"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	ExpiryDate  *time.Time      `json:"expiry_date,omitempty"`
	ReceivedAt  time.Time       `json:"received_at"`
	ReceivedBy  int64           `json:"received_by"`
	Notes       string          `json:"notes"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BatchFilter narrows batch listings.
type BatchFilter struct {
	ItemID          *int64
	IncludeInactive bool
	Limit           int
	Offset          int
}
