package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"orderdesk.backend/internal/domain/entities"
	domainerrors "orderdesk.backend/internal/domain/errors"
	"orderdesk.backend/internal/infrastructure/models"
)

// MenuItemRepository implements menu item data operations
type MenuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository creates a new menu item repository
func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{db: db}
}

// Create creates a new menu item
func (r *MenuItemRepository) Create(ctx context.Context, item *entities.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	item.IsActive = true

	m := menuItemToModel(item)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// GetByID gets an active menu item by ID
func (r *MenuItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MenuItem, error) {
	var m models.MenuItem
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return menuItemToEntity(&m), nil
}

// Update updates mutable menu item fields
func (r *MenuItemRepository) Update(ctx context.Context, item *entities.MenuItem) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.MenuItem{}).
		Where("id = ? AND is_active = ?", item.ID, true).
		Updates(map[string]interface{}{
			"name":         item.Name,
			"logo":         item.Logo.Ptr(),
			"description":  item.Description.Ptr(),
			"price":        item.Price,
			"is_available": item.IsAvailable,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete deactivates a menu item
func (r *MenuItemRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.MenuItem{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByMenu returns a menu's active items with pagination
func (r *MenuItemRepository) ListByMenu(ctx context.Context, menuID uuid.UUID, skip, limit int) ([]*entities.MenuItem, int, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.MenuItem{}).
		Where("menu_id = ? AND is_active = ?", menuID, true).
		Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var ms []models.MenuItem
	if err := db.WithContext(ctx).
		Where("menu_id = ? AND is_active = ?", menuID, true).
		Order("created_at DESC").
		Limit(limit).Offset(skip).
		Find(&ms).Error; err != nil {
		return nil, 0, translateError(err)
	}

	items := make([]*entities.MenuItem, 0, len(ms))
	for i := range ms {
		items = append(items, menuItemToEntity(&ms[i]))
	}
	return items, int(total), nil
}

func menuItemToModel(e *entities.MenuItem) *models.MenuItem {
	return &models.MenuItem{
		ID:          e.ID,
		Name:        e.Name,
		Logo:        e.Logo.Ptr(),
		Description: e.Description.Ptr(),
		Price:       e.Price,
		IsAvailable: e.IsAvailable,
		MenuID:      e.MenuID,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func menuItemToEntity(m *models.MenuItem) *entities.MenuItem {
	return &entities.MenuItem{
		ID:          m.ID,
		Name:        m.Name,
		Logo:        null.StringFromPtr(m.Logo),
		Description: null.StringFromPtr(m.Description),
		Price:       m.Price,
		IsAvailable: m.IsAvailable,
		MenuID:      m.MenuID,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
