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

// OrderRepository implements order data operations
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists the order together with its items
func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	order.IsActive = true

	m := &models.Order{
		ID:                  order.ID,
		Code:                order.Code,
		UserID:              order.UserID,
		BranchID:            order.BranchID,
		Status:              string(order.Status),
		TotalAmount:         order.TotalAmount,
		SpecialInstructions: order.SpecialInstructions.Ptr(),
		DeliveryAddress:     order.DeliveryAddress.Ptr(),
		IsActive:            order.IsActive,
		CreatedAt:           order.CreatedAt,
		UpdatedAt:           order.UpdatedAt,
	}
	for _, item := range order.Items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.OrderID = order.ID
		item.IsActive = true
		item.CreatedAt = order.CreatedAt
		m.Items = append(m.Items, models.OrderItem{
			ID:         item.ID,
			OrderID:    item.OrderID,
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
			IsActive:   item.IsActive,
			CreatedAt:  item.CreatedAt,
		})
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// GetByID gets an active order with its items
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	var m models.Order
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND is_active = ?", id, true).
		First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return orderToEntity(&m), nil
}

// ExistsByCode reports whether any order, active or not, holds the code
func (r *OrderRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Model(&models.Order{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// Update updates an order's status and mutable fields
func (r *OrderRepository) Update(ctx context.Context, order *entities.Order) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND is_active = ?", order.ID, true).
		Updates(map[string]interface{}{
			"status":               string(order.Status),
			"special_instructions": order.SpecialInstructions.Ptr(),
			"delivery_address":     order.DeliveryAddress.Ptr(),
			"updated_at":           time.Now(),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete deactivates an order
func (r *OrderRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Order{}).
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

// List returns active orders matching the filter, newest first
func (r *OrderRepository) List(ctx context.Context, filter entities.OrderFilter, skip, limit int) ([]*entities.Order, int, error) {
	db := GetDB(ctx, r.db)

	base := func() *gorm.DB {
		q := db.WithContext(ctx).Model(&models.Order{}).Where("is_active = ?", true)
		if filter.UserID != nil {
			q = q.Where("user_id = ?", *filter.UserID)
		}
		if filter.BranchID != nil {
			q = q.Where("branch_id = ?", *filter.BranchID)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var ms []models.Order
	if err := base().
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).Offset(skip).
		Find(&ms).Error; err != nil {
		return nil, 0, translateError(err)
	}

	orders := make([]*entities.Order, 0, len(ms))
	for i := range ms {
		orders = append(orders, orderToEntity(&ms[i]))
	}
	return orders, int(total), nil
}

func orderToEntity(m *models.Order) *entities.Order {
	order := &entities.Order{
		ID:                  m.ID,
		Code:                m.Code,
		UserID:              m.UserID,
		BranchID:            m.BranchID,
		Status:              entities.OrderStatus(m.Status),
		TotalAmount:         m.TotalAmount,
		SpecialInstructions: null.StringFromPtr(m.SpecialInstructions),
		DeliveryAddress:     null.StringFromPtr(m.DeliveryAddress),
		IsActive:            m.IsActive,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
	for i := range m.Items {
		it := &m.Items[i]
		order.Items = append(order.Items, &entities.OrderItem{
			ID:         it.ID,
			OrderID:    it.OrderID,
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
			IsActive:   it.IsActive,
			CreatedAt:  it.CreatedAt,
		})
	}
	return order
}
