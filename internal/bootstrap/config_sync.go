package bootstrap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/inventory"
)

// CategoryConfig is the on-disk seed list of categories.
type CategoryConfig struct {
	Categories []CategorySeed `json:"categories"`
}

// CategorySeed is one category to make sure exists.
type CategorySeed struct {
	Name string              `json:"name"`
	Type domain.CategoryType `json:"type"`
}

// CategorySyncResult counts what a sync did.
type CategorySyncResult struct {
	Inserted int
	Skipped  int
}

// LoadCategoryConfig reads the seed file at path.
func LoadCategoryConfig(path string) (*CategoryConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg CategoryConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects blank names, unknown types and repeated names.
func (c *CategoryConfig) Validate() error {
	seen := make(map[string]bool, len(c.Categories))
	for i, seed := range c.Categories {
		name := strings.ToLower(strings.TrimSpace(seed.Name))
		if name == "" {
			return fmt.Errorf("category %d: name is required", i)
		}
		if !seed.Type.Valid() {
			return fmt.Errorf("category %q: unknown type %q", seed.Name, seed.Type)
		}
		if seen[name] {
			return fmt.Errorf("category %q listed twice", seed.Name)
		}
		seen[name] = true
	}
	return nil
}

// SyncCategories creates every category in the seed file at path that does not
// exist yet. Existing categories are never modified.
func SyncCategories(ctx context.Context, svc inventory.Service, path string) (*CategorySyncResult, error) {
	slog.Info(LogMsgSyncingCategories, "path", path)

	cfg, err := LoadCategoryConfig(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCategories, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidCategories, err)
	}

	existing, err := svc.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncCategories, err)
	}
	have := make(map[string]bool, len(existing))
	for _, c := range existing {
		have[strings.ToLower(c.Name)] = true
	}

	result := &CategorySyncResult{}
	for _, seed := range cfg.Categories {
		if have[strings.ToLower(strings.TrimSpace(seed.Name))] {
			result.Skipped++
			continue
		}
		_, err := svc.CreateCategory(ctx, inventory.CreateCategoryInput{Name: seed.Name, Type: seed.Type})
		switch {
		case errors.Is(err, domain.ErrDuplicateCategory):
			result.Skipped++
		case err != nil:
			return result, fmt.Errorf("%s: %w", ErrMsgFailedSyncCategories, err)
		default:
			result.Inserted++
		}
	}

	if result.Inserted > 0 {
		slog.Info(LogMsgCategoriesSynced, "inserted", result.Inserted, "skipped", result.Skipped)
	} else {
		slog.Info(LogMsgCategoriesUnchanged)
	}
	return result, nil
}
