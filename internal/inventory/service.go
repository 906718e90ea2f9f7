package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/cache"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/event"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/repository"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/serial"
)

// Service defines the catalogue and serialized unit interface
type Service interface {
	CreateCategory(ctx context.Context, in CreateCategoryInput) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)

	CreateItem(ctx context.Context, in CreateItemInput) (*ItemDetail, error)
	GetItem(ctx context.Context, id int64) (*ItemDetail, error)
	ListItems(ctx context.Context, f domain.ItemFilter) ([]domain.InventoryItem, error)

	GetSerializedItem(ctx context.Context, id int64) (*domain.SerializedItem, error)
	ListSerializedItems(ctx context.Context, f domain.SerialFilter) ([]domain.SerializedItem, error)
	UpdateSerialStatus(ctx context.Context, in UpdateSerialStatusInput) (*StatusChangeResult, error)

	ListNotifications(ctx context.Context, f domain.NotificationFilter) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error
}

// CreateCategoryInput names a new category.
type CreateCategoryInput struct {
	Name string              `json:"name" validate:"required,max=100"`
	Type domain.CategoryType `json:"type" validate:"required"`
}

// CreateItemInput describes a new stock-keeping unit. Stock always starts at zero.
type CreateItemInput struct {
	Name          string `json:"name" validate:"required,max=255"`
	CategoryID    *int64 `json:"category_id,omitempty"`
	Description   string `json:"description" validate:"max=2000"`
	Unit          string `json:"unit" validate:"max=50"`
	MinStockLevel int    `json:"min_stock_level" validate:"gte=0"`
	IsReturnable  *bool  `json:"is_returnable,omitempty"`
	CreatedBy     int64  `json:"-"`
}

// ItemDetail is an item with its category and serialization decision.
type ItemDetail struct {
	domain.InventoryItem
	Category   *domain.Category `json:"category,omitempty"`
	Serialized bool             `json:"serialized"`
}

type service struct {
	repo      repository.Inventory
	publisher event.Publisher
	cache     *cache.Layer
}

// NewService creates a new inventory service. publisher and cacheLayer may be nil.
func NewService(repo repository.Inventory, publisher event.Publisher, cacheLayer *cache.Layer) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		cache:     cacheLayer,
	}
}

func (s *service) CreateCategory(ctx context.Context, in CreateCategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrMissingName
	}
	if !in.Type.Valid() {
		return nil, domain.ErrInvalidCategoryType
	}

	c := &domain.Category{Name: name, Type: in.Type}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.All(cache.PrefixCategories))
	logger.FromContext(ctx).Info(LogMsgCategoryCreated, "category_id", c.ID, "name", c.Name, "type", c.Type)
	return c, nil
}

func (s *service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return cache.GetOrLoad(ctx, s.cache, cache.Key(cache.PrefixCategories, "all"), s.repo.ListCategories)
}

func (s *service) CreateItem(ctx context.Context, in CreateItemInput) (*ItemDetail, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrMissingName
	}
	if in.MinStockLevel < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var category *domain.Category
	if in.CategoryID != nil {
		c, err := s.repo.GetCategory(ctx, *in.CategoryID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get category: %w", err)
		}
		category = c
	}

	item := &domain.InventoryItem{
		Name:          name,
		CategoryID:    in.CategoryID,
		Description:   in.Description,
		Unit:          in.Unit,
		MinStockLevel: in.MinStockLevel,
		IsReturnable:  in.IsReturnable,
		CreatedBy:     in.CreatedBy,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.All(cache.PrefixItems))

	detail := &ItemDetail{InventoryItem: *item, Category: category, Serialized: serial.RequiresSerialization(*item, category)}
	logger.FromContext(ctx).Info(LogMsgItemCreated, "item_id", item.ID, "name", item.Name, "serialized", detail.Serialized)
	return detail, nil
}

func (s *service) GetItem(ctx context.Context, id int64) (*ItemDetail, error) {
	return cache.GetOrLoad(ctx, s.cache, cache.Key(cache.PrefixItem, id), func(ctx context.Context) (*ItemDetail, error) {
		item, err := s.repo.GetItem(ctx, id)
		if err != nil {
			return nil, err
		}
		detail := &ItemDetail{InventoryItem: *item}
		if item.CategoryID != nil {
			c, err := s.repo.GetCategory(ctx, *item.CategoryID)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("failed to get category: %w", err)
			}
			detail.Category = c
		}
		detail.Serialized = serial.RequiresSerialization(*item, detail.Category)
		return detail, nil
	})
}

func (s *service) ListItems(ctx context.Context, f domain.ItemFilter) ([]domain.InventoryItem, error) {
	f.Limit, f.Offset = domain.NormalizePage(f.Limit, f.Offset)
	category := "all"
	if f.CategoryID != nil {
		category = fmt.Sprint(*f.CategoryID)
	}
	key := cache.Key(cache.PrefixItems, category, f.LowStockOnly, f.Limit, f.Offset)
	return cache.GetOrLoad(ctx, s.cache, key, func(ctx context.Context) ([]domain.InventoryItem, error) {
		return s.repo.ListItems(ctx, f)
	})
}

func (s *service) GetSerializedItem(ctx context.Context, id int64) (*domain.SerializedItem, error) {
	return s.repo.GetSerializedItem(ctx, id)
}

func (s *service) ListSerializedItems(ctx context.Context, f domain.SerialFilter) ([]domain.SerializedItem, error) {
	if f.Status != nil && !f.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	f.Limit, f.Offset = domain.NormalizePage(f.Limit, f.Offset)
	return s.repo.ListSerializedItems(ctx, f)
}

func (s *service) ListNotifications(ctx context.Context, f domain.NotificationFilter) ([]domain.Notification, error) {
	f.Limit, f.Offset = domain.NormalizePage(f.Limit, f.Offset)
	return s.repo.ListNotifications(ctx, f)
}

func (s *service) MarkNotificationRead(ctx context.Context, id int64) error {
	if err := s.repo.MarkNotificationRead(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgNotificationRead, "notification_id", id)
	return nil
}
