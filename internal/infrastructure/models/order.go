package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code                string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;index"`
	BranchID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Status              string    `gorm:"type:varchar(30);not null"`
	TotalAmount         int64     `gorm:"not null"`
	SpecialInstructions *string   `gorm:"type:varchar(500)"`
	DeliveryAddress     *string   `gorm:"type:varchar(255)"`
	IsActive            bool      `gorm:"not null;default:true"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity   int       `gorm:"not null"`
	UnitPrice  int64     `gorm:"not null"`
	TotalPrice int64     `gorm:"not null"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
}

type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	IntentID      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	ClientSecret  *string   `gorm:"type:varchar(255)"`
	Amount        int64     `gorm:"not null"`
	Currency      string    `gorm:"type:varchar(3);not null;default:'USD'"`
	Status        string    `gorm:"type:varchar(30);not null;index"`
	FailureReason *string   `gorm:"type:text"`
	ReceiptURL    *string   `gorm:"type:varchar(500)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
