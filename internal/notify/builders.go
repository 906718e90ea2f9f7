package notify

import (
	"fmt"
	"time"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
)

// DaysUntil counts calendar days (UTC) from now to t. Negative when t is past.
func DaysUntil(t, now time.Time) int {
	day := 24 * time.Hour
	return int(t.UTC().Truncate(day).Sub(now.UTC().Truncate(day)) / day)
}

// LowStock returns a LOW_STOCK notification when stock has reached the item's minimum.
func LowStock(item *domain.InventoryItem, stock int) (*domain.Notification, bool) {
	if stock > item.MinStockLevel {
		return nil, false
	}
	n := &domain.Notification{
		Type:     domain.NotificationLowStock,
		ItemID:   &item.ID,
		Priority: domain.PriorityMedium,
		Message:  fmt.Sprintf(MsgLowStock, item.Name, stock, item.Unit, item.MinStockLevel),
	}
	if stock == 0 {
		n.Priority = domain.PriorityHigh
		n.Message = fmt.Sprintf(MsgOutOfStock, item.Name)
	}
	return n, true
}

func expiryPriority(days int) domain.NotificationPriority {
	if days <= ExpiryUrgentDays {
		return domain.PriorityHigh
	}
	return domain.PriorityMedium
}

// ExpiringSoon returns an EXPIRING_SOON notification when the batch expires
// within ExpiryWarningDays of now.
func ExpiringSoon(item *domain.InventoryItem, b *domain.Batch, now time.Time) (*domain.Notification, bool) {
	if b.ExpiryDate == nil {
		return nil, false
	}
	days := DaysUntil(*b.ExpiryDate, now)
	if days > ExpiryWarningDays {
		return nil, false
	}

	date := b.ExpiryDate.Format(DateDisplayLayout)
	msg := fmt.Sprintf(MsgExpiringSoon, b.BatchNumber, item.Name, days, date)
	if days < 0 {
		msg = fmt.Sprintf(MsgExpired, b.BatchNumber, item.Name, date)
	}
	return &domain.Notification{
		Type:     domain.NotificationExpiringSoon,
		ItemID:   &item.ID,
		Priority: expiryPriority(days),
		Message:  msg,
	}, true
}

// ExpiringSummary aggregates every soon-to-expire batch of one item.
func ExpiringSummary(item *domain.InventoryItem, count int, earliest, now time.Time) *domain.Notification {
	return &domain.Notification{
		Type:     domain.NotificationExpiringSoon,
		ItemID:   &item.ID,
		Priority: expiryPriority(DaysUntil(earliest, now)),
		Message:  fmt.Sprintf(MsgExpiringSummary, count, item.Name, ExpiryWarningDays, earliest.Format(DateDisplayLayout)),
	}
}

// EquipmentReturn summarizes one return reconciliation. Losses are HIGH,
// damage MEDIUM, a clean return LOW.
func EquipmentReturn(item *domain.InventoryItem, d *domain.Deployment, good, damaged, lost int) *domain.Notification {
	priority := domain.PriorityLow
	switch {
	case lost > 0:
		priority = domain.PriorityHigh
	case damaged > 0:
		priority = domain.PriorityMedium
	}
	return &domain.Notification{
		Type:         domain.NotificationEquipmentReturn,
		ItemID:       &item.ID,
		DeploymentID: &d.ID,
		Priority:     priority,
		Message:      fmt.Sprintf(MsgEquipmentReturn, item.Name, d.Location, good, damaged, lost),
	}
}

// OverdueReturn flags a deployment past its expected return date.
func OverdueReturn(item *domain.InventoryItem, d *domain.Deployment) *domain.Notification {
	due := ""
	if d.ExpectedReturnDate != nil {
		due = d.ExpectedReturnDate.Format(DateDisplayLayout)
	}
	return &domain.Notification{
		Type:         domain.NotificationOverdueReturn,
		ItemID:       &item.ID,
		DeploymentID: &d.ID,
		Priority:     domain.PriorityHigh,
		Message:      fmt.Sprintf(MsgOverdueReturn, d.ID, item.Name, d.Location, due),
	}
}

// MaintenanceDue records a unit entering maintenance.
func MaintenanceDue(item *domain.InventoryItem, unit *domain.SerializedItem) *domain.Notification {
	return &domain.Notification{
		Type:     domain.NotificationMaintenanceDue,
		ItemID:   &item.ID,
		Priority: domain.PriorityLow,
		Message:  fmt.Sprintf(MsgMaintenanceDue, item.Name, unit.SerialNumber),
	}
}
