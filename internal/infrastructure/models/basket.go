package models

import (
	"time"

	"github.com/google/uuid"
)

type Basket struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_user_menu_item"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_user_menu_item"`
	Quantity   int       `gorm:"not null;default:1;check:quantity > 0 AND quantity <= 99"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	MenuItem MenuItem `gorm:"foreignKey:MenuItemID"`
}
