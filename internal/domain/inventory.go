package domain

import "time"

// CategoryType classifies a category; drives the default serialization decision.
type CategoryType string

const (
	CategoryEquipment            CategoryType = "EQUIPMENT"
	CategorySupplies             CategoryType = "SUPPLIES"
	CategoryReliefGoods          CategoryType = "RELIEF_GOODS"
	CategoryVehicles             CategoryType = "VEHICLES"
	CategoryCommunicationDevices CategoryType = "COMMUNICATION_DEVICES"
)

// Valid reports whether t is one of the known category types.
func (t CategoryType) Valid() bool {
	switch t {
	case CategoryEquipment, CategorySupplies, CategoryReliefGoods, CategoryVehicles, CategoryCommunicationDevices:
		return true
	}
	return false
}

// Category groups inventory items.
type Category struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Type      CategoryType `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
}

// InventoryItem is a stock-keeping unit. QuantityInStock is the number of
// units currently on hand and available for deployment.
type InventoryItem struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	CategoryID      *int64    `json:"category_id,omitempty"`
	Description     string    `json:"description"`
	Unit            string    `json:"unit"`
	QuantityInStock int       `json:"quantity_in_stock"`
	MinStockLevel   int       `json:"min_stock_level"`
	IsReturnable    *bool     `json:"is_returnable,omitempty"` // nil means "decide from category and name"
	IsActive        bool      `json:"is_active"`
	CreatedBy       int64     `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IsLowStock reports whether stock is at or below the configured minimum.
func (i InventoryItem) IsLowStock() bool {
	return i.QuantityInStock <= i.MinStockLevel
}

// ItemFilter narrows item listings.
type ItemFilter struct {
	CategoryID   *int64
	LowStockOnly bool
	Limit        int
	Offset       int
}

// SerializedItemStatus is the lifecycle state of one tracked physical unit.
type SerializedItemStatus string

const (
	SerialAvailable   SerializedItemStatus = "AVAILABLE"
	SerialDeployed    SerializedItemStatus = "DEPLOYED"
	SerialMaintenance SerializedItemStatus = "MAINTENANCE"
	SerialDamaged     SerializedItemStatus = "DAMAGED"
	SerialLost        SerializedItemStatus = "LOST"
	SerialRetired     SerializedItemStatus = "RETIRED"

	// SerialPartialReturn is accepted from older records but never assigned.
	SerialPartialReturn SerializedItemStatus = "PARTIAL_RETURN"
)

// Valid reports whether s is a known serialized-item status.
func (s SerializedItemStatus) Valid() bool {
	switch s {
	case SerialAvailable, SerialDeployed, SerialMaintenance, SerialDamaged, SerialLost, SerialRetired, SerialPartialReturn:
		return true
	}
	return false
}

// SerializedItem is one individually tracked unit belonging to a batch.
type SerializedItem struct {
	ID             int64                `json:"id"`
	SerialNumber   string               `json:"serial_number"`
	BatchID        int64                `json:"batch_id"`
	ItemID         int64                `json:"item_id"`
	Status         SerializedItemStatus `json:"status"`
	ConditionNotes string               `json:"condition_notes"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// SerialFilter narrows serialized-item listings.
type SerialFilter struct {
	ItemID  *int64
	BatchID *int64
	Status  *SerializedItemStatus
	Limit   int
	Offset  int
}

// AppendNote joins an existing note and a new one with a newline.
func AppendNote(existing, note string) string {
	if note == "" {
		return existing
	}
	if existing == "" {
		return note
	}
	return existing + "\n" + note
}
