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

// MenuRepository implements menu data operations
type MenuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// Create creates a new menu
func (r *MenuRepository) Create(ctx context.Context, menu *entities.Menu) error {
	if menu.ID == uuid.Nil {
		menu.ID = uuid.New()
	}
	menu.CreatedAt = time.Now()
	menu.UpdatedAt = menu.CreatedAt
	menu.IsActive = true

	m := &models.Menu{
		ID:        menu.ID,
		Name:      menu.Name,
		Logo:      menu.Logo.Ptr(),
		BranchID:  menu.BranchID,
		IsActive:  menu.IsActive,
		CreatedAt: menu.CreatedAt,
		UpdatedAt: menu.UpdatedAt,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// GetByID gets an active menu by ID
func (r *MenuRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Menu, error) {
	var m models.Menu
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return menuToEntity(&m), nil
}

// GetByBranchAndName gets an active menu by its branch-scoped name
func (r *MenuRepository) GetByBranchAndName(ctx context.Context, branchID uuid.UUID, name string) (*entities.Menu, error) {
	var m models.Menu
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("branch_id = ? AND name = ? AND is_active = ?", branchID, name, true).
		First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return menuToEntity(&m), nil
}

// Update updates mutable menu fields
func (r *MenuRepository) Update(ctx context.Context, menu *entities.Menu) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Menu{}).
		Where("id = ? AND is_active = ?", menu.ID, true).
		Updates(map[string]interface{}{
			"name":       menu.Name,
			"logo":       menu.Logo.Ptr(),
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

// SoftDelete deactivates a menu
func (r *MenuRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Menu{}).
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

// ListByBranch returns a branch's active menus with pagination
func (r *MenuRepository) ListByBranch(ctx context.Context, branchID uuid.UUID, skip, limit int) ([]*entities.Menu, int, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.Menu{}).
		Where("branch_id = ? AND is_active = ?", branchID, true).
		Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var ms []models.Menu
	if err := db.WithContext(ctx).
		Where("branch_id = ? AND is_active = ?", branchID, true).
		Order("created_at DESC").
		Limit(limit).Offset(skip).
		Find(&ms).Error; err != nil {
		return nil, 0, translateError(err)
	}

	menus := make([]*entities.Menu, 0, len(ms))
	for i := range ms {
		menus = append(menus, menuToEntity(&ms[i]))
	}
	return menus, int(total), nil
}

func menuToEntity(m *models.Menu) *entities.Menu {
	return &entities.Menu{
		ID:        m.ID,
		Name:      m.Name,
		Logo:      null.StringFromPtr(m.Logo),
		BranchID:  m.BranchID,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
