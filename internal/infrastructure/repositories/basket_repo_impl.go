package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"orderdesk.backend/internal/domain/entities"
	domainerrors "orderdesk.backend/internal/domain/errors"
	"orderdesk.backend/internal/infrastructure/models"
)

// BasketRepository implements basket data operations. Basket rows are
// hard-deleted.
type BasketRepository struct {
	db *gorm.DB
}

// NewBasketRepository creates a new basket repository
func NewBasketRepository(db *gorm.DB) *BasketRepository {
	return &BasketRepository{db: db}
}

// Create creates a new basket row
func (r *BasketRepository) Create(ctx context.Context, basket *entities.Basket) error {
	if basket.ID == uuid.Nil {
		basket.ID = uuid.New()
	}
	basket.CreatedAt = time.Now()
	basket.UpdatedAt = basket.CreatedAt

	m := &models.Basket{
		ID:         basket.ID,
		UserID:     basket.UserID,
		MenuItemID: basket.MenuItemID,
		Quantity:   basket.Quantity,
		CreatedAt:  basket.CreatedAt,
		UpdatedAt:  basket.UpdatedAt,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// GetByID gets a basket row by ID
func (r *BasketRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Basket, error) {
	var m models.Basket
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return basketToEntity(&m), nil
}

// GetByUserAndMenuItem gets the user's basket row for a menu item, if any
func (r *BasketRepository) GetByUserAndMenuItem(ctx context.Context, userID, menuItemID uuid.UUID) (*entities.Basket, error) {
	var m models.Basket
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return basketToEntity(&m), nil
}

// ListByUser returns the user's basket rows with menu items joined, newest first
func (r *BasketRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Basket, error) {
	var ms []models.Basket
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Preload("MenuItem").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, translateError(err)
	}

	baskets := make([]*entities.Basket, 0, len(ms))
	for i := range ms {
		b := basketToEntity(&ms[i])
		if ms[i].MenuItem.ID != uuid.Nil {
			b.MenuItem = menuItemToEntity(&ms[i].MenuItem)
		}
		baskets = append(baskets, b)
	}
	return baskets, nil
}

// Update updates a basket row's menu item and quantity
func (r *BasketRepository) Update(ctx context.Context, basket *entities.Basket) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Basket{}).
		Where("id = ?", basket.ID).
		Updates(map[string]interface{}{
			"menu_item_id": basket.MenuItemID,
			"quantity":     basket.Quantity,
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

// Delete removes a basket row
func (r *BasketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&models.Basket{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteByUser removes all of a user's basket rows. Deleting an already
// empty basket is not an error.
func (r *BasketRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Basket{}).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func basketToEntity(m *models.Basket) *entities.Basket {
	return &entities.Basket{
		ID:         m.ID,
		UserID:     m.UserID,
		MenuItemID: m.MenuItemID,
		Quantity:   m.Quantity,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
