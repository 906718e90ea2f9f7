package handler

import (
	"net/http"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/auth"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/inventory"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
)

// InventoryHandler serves categories, items, serialized units and notifications.
type InventoryHandler struct {
	svc inventory.Service
}

// NewInventoryHandler creates an InventoryHandler.
func NewInventoryHandler(svc inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// HandleCreateCategory creates a category
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body inventory.CreateCategoryInput true "Category"
// @Success 201 {object} Response{data=domain.Category}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /categories [post]
func (h *InventoryHandler) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var in inventory.CreateCategoryInput
	if err := DecodeAndValidateRequest(r, w, &in, "Create category"); err != nil {
		return
	}
	cat, err := h.svc.CreateCategory(r.Context(), in)
	if err != nil {
		respondServiceError(w, r, "Create category", err)
		return
	}
	respondData(w, http.StatusCreated, MsgCategoryCreated, cat)
}

// HandleListCategories lists categories
// @Summary List categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]domain.Category}
// @Router /categories [get]
func (h *InventoryHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		respondServiceError(w, r, "List categories", err)
		return
	}
	respondData(w, http.StatusOK, "", cats)
}

// HandleCreateItem creates an inventory item with zero stock
// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body inventory.CreateItemInput true "Item"
// @Success 201 {object} Response{data=inventory.ItemDetail}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /items [post]
func (h *InventoryHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	var in inventory.CreateItemInput
	if err := DecodeAndValidateRequest(r, w, &in, "Create item"); err != nil {
		return
	}
	in.CreatedBy = auth.ActorID(r.Context())

	item, err := h.svc.CreateItem(r.Context(), in)
	if err != nil {
		respondServiceError(w, r, "Create item", err)
		return
	}
	logger.FromContext(r.Context()).Info("Item created", "item_id", item.ID, "serialized", item.Serialized)
	respondData(w, http.StatusCreated, MsgItemCreated, item)
}

// HandleGetItem returns one item
// @Summary Get item
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} Response{data=inventory.ItemDetail}
// @Failure 404 {object} Response
// @Router /items/{id} [get]
func (h *InventoryHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := URLInt64(w, r, "id")
	if !ok {
		return
	}
	item, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get item", err)
		return
	}
	respondData(w, http.StatusOK, "", item)
}

// HandleListItems lists items
// @Summary List items
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param category_id query int false "Category filter"
// @Param low_stock query bool false "Only items at or below their minimum stock level"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} Response{data=[]domain.InventoryItem}
// @Router /items [get]
func (h *InventoryHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	f := domain.ItemFilter{
		CategoryID:   q.int64Ptr("category_id"),
		LowStockOnly: q.bool("low_stock"),
		Limit:        q.int("limit"),
		Offset:       q.int("offset"),
	}
	if !q.ok(w) {
		return
	}
	items, err := h.svc.ListItems(r.Context(), f)
	if err != nil {
		respondServiceError(w, r, "List items", err)
		return
	}
	respondData(w, http.StatusOK, "", items)
}

// HandleGetSerializedItem returns one serialized unit
// @Summary Get serialized unit
// @Tags serials
// @Produce json
// @Security BearerAuth
// @Param id path int true "Serialized item ID"
// @Success 200 {object} Response{data=domain.SerializedItem}
// @Failure 404 {object} Response
// @Router /serials/{id} [get]
func (h *InventoryHandler) HandleGetSerializedItem(w http.ResponseWriter, r *http.Request) {
	id, ok := URLInt64(w, r, "id")
	if !ok {
		return
	}
	unit, err := h.svc.GetSerializedItem(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get serialized item", err)
		return
	}
	respondData(w, http.StatusOK, "", unit)
}

// HandleListSerializedItems lists serialized units
// @Summary List serialized units
// @Tags serials
// @Produce json
// @Security BearerAuth
// @Param item_id query int false "Item filter"
// @Param batch_id query int false "Batch filter"
// @Param status query string false "Status filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} Response{data=[]domain.SerializedItem}
// @Failure 400 {object} Response
// @Router /serials [get]
func (h *InventoryHandler) HandleListSerializedItems(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	f := domain.SerialFilter{
		ItemID:  q.int64Ptr("item_id"),
		BatchID: q.int64Ptr("batch_id"),
		Limit:   q.int("limit"),
		Offset:  q.int("offset"),
	}
	if s := q.string("status"); s != "" {
		status := domain.SerializedItemStatus(s)
		f.Status = &status
	}
	if !q.ok(w) {
		return
	}
	units, err := h.svc.ListSerializedItems(r.Context(), f)
	if err != nil {
		respondServiceError(w, r, "List serialized items", err)
		return
	}
	respondData(w, http.StatusOK, "", units)
}

// HandleUpdateSerialStatus changes the status of a unit that is not deployed
// @Summary Change serialized unit status
// @Description Moves a unit between AVAILABLE, MAINTENANCE, DAMAGED, LOST and RETIRED, adjusting stock.
// @Tags serials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Serialized item ID"
// @Param request body inventory.UpdateSerialStatusInput true "New status"
// @Success 200 {object} Response{data=inventory.StatusChangeResult}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /serials/{id}/status [patch]
func (h *InventoryHandler) HandleUpdateSerialStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := URLInt64(w, r, "id")
	if !ok {
		return
	}
	var in inventory.UpdateSerialStatusInput
	if err := DecodeAndValidateRequest(r, w, &in, "Update serial status"); err != nil {
		return
	}
	in.SerializedItemID = id
	in.ActorID = auth.ActorID(r.Context())

	res, err := h.svc.UpdateSerialStatus(r.Context(), in)
	if err != nil {
		respondServiceError(w, r, "Update serial status", err)
		return
	}
	respondData(w, http.StatusOK, MsgStatusUpdated, res)
}

// HandleListNotifications lists inventory notifications, newest first
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread notifications"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} Response{data=[]domain.Notification}
// @Router /notifications [get]
func (h *InventoryHandler) HandleListNotifications(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	f := domain.NotificationFilter{
		UnreadOnly: q.bool("unread"),
		Limit:      q.int("limit"),
		Offset:     q.int("offset"),
	}
	if !q.ok(w) {
		return
	}
	notes, err := h.svc.ListNotifications(r.Context(), f)
	if err != nil {
		respondServiceError(w, r, "List notifications", err)
		return
	}
	respondData(w, http.StatusOK, "", notes)
}

// HandleMarkNotificationRead marks a notification as read
// @Summary Mark notification read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /notifications/{id}/read [post]
func (h *InventoryHandler) HandleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, ok := URLInt64(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.MarkNotificationRead(r.Context(), id); err != nil {
		respondServiceError(w, r, "Mark notification read", err)
		return
	}
	respondData(w, http.StatusOK, MsgNotificationRead, nil)
}
