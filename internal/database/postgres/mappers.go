package postgres

import (
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/database/generated"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
)

func toCategory(row generated.Category) domain.Category {
	return domain.Category{
		ID:        row.ID,
		Name:      row.Name,
		Type:      domain.CategoryType(row.Type),
		CreatedAt: tsToTime(row.CreatedAt),
	}
}

func toItem(row generated.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		ID:              row.ID,
		Name:            row.Name,
		CategoryID:      int8ToPtr(row.CategoryID),
		Description:     row.Description,
		Unit:            row.Unit,
		QuantityInStock: int(row.QuantityInStock),
		MinStockLevel:   int(row.MinStockLevel),
		IsReturnable:    boolToPtr(row.IsReturnable),
		IsActive:        row.IsActive,
		CreatedBy:       row.CreatedBy,
		CreatedAt:       tsToTime(row.CreatedAt),
		UpdatedAt:       tsToTime(row.UpdatedAt),
	}
}

func toBatch(row generated.Batch) domain.Batch {
	return domain.Batch{
		ID:          row.ID,
		ItemID:      row.ItemID,
		BatchNumber: row.BatchNumber,
		Quantity:    int(row.Quantity),
		Supplier:    row.Supplier,
		UnitCost:    row.UnitCost,
		ExpiryDate:  dateToPtr(row.ExpiryDate),
		ReceivedAt:  tsToTime(row.ReceivedAt),
		ReceivedBy:  row.ReceivedBy,
		Notes:       row.Notes,
		IsActive:    row.IsActive,
		CreatedAt:   tsToTime(row.CreatedAt),
	}
}

func toSerializedItem(row generated.SerializedItem) domain.SerializedItem {
	return domain.SerializedItem{
		ID:             row.ID,
		SerialNumber:   row.SerialNumber,
		BatchID:        row.BatchID,
		ItemID:         row.ItemID,
		Status:         domain.SerializedItemStatus(row.Status),
		ConditionNotes: row.ConditionNotes,
		CreatedAt:      tsToTime(row.CreatedAt),
		UpdatedAt:      tsToTime(row.UpdatedAt),
	}
}

func toDeployment(row generated.Deployment) domain.Deployment {
	return domain.Deployment{
		ID:                 row.ID,
		ItemID:             row.ItemID,
		DeployedBy:         row.DeployedBy,
		DeployedTo:         int8ToPtr(row.DeployedTo),
		DeploymentType:     domain.DeploymentType(row.DeploymentType),
		QuantityDeployed:   int(row.QuantityDeployed),
		IsSerialized:       row.IsSerialized,
		Location:           row.DeploymentLocation,
		DeploymentDate:     tsToTime(row.DeploymentDate),
		ExpectedReturnDate: tsToPtr(row.ExpectedReturnDate),
		ActualReturnDate:   tsToPtr(row.ActualReturnDate),
		Status:             domain.DeploymentStatus(row.Status),
		ReturnCondition:    textToCondition(row.ReturnCondition),
		Notes:              row.Notes,
		CreatedAt:          tsToTime(row.CreatedAt),
		UpdatedAt:          tsToTime(row.UpdatedAt),
	}
}

func toLink(row generated.SerialItemDeployment) domain.SerialItemDeployment {
	return domain.SerialItemDeployment{
		ID:               row.ID,
		DeploymentID:     row.DeploymentID,
		SerializedItemID: row.SerializedItemID,
		DeployedAt:       tsToTime(row.DeployedAt),
		ReturnedAt:       tsToPtr(row.ReturnedAt),
		ReturnCondition:  domain.ReturnCondition(row.ReturnCondition.String),
		Notes:            row.Notes,
	}
}

func toNotification(row generated.InventoryNotification) domain.Notification {
	return domain.Notification{
		ID:           row.ID,
		Type:         domain.NotificationType(row.Type),
		ItemID:       int8ToPtr(row.ItemID),
		DeploymentID: int8ToPtr(row.DeploymentID),
		Message:      row.Message,
		Priority:     domain.NotificationPriority(row.Priority),
		IsRead:       row.IsRead,
		CreatedAt:    tsToTime(row.CreatedAt),
	}
}

func mapAll[R any, D any](rows []R, fn func(R) D) []D {
	out := make([]D, len(rows))
	for i, row := range rows {
		out[i] = fn(row)
	}
	return out
}
