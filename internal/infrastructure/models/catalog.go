package models

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Phone     *string   `gorm:"type:varchar(20)"`
	Email     *string   `gorm:"type:varchar(255)"`
	Logo      *string   `gorm:"type:varchar(500)"`
	Address   *string   `gorm:"type:varchar(255)"`
	OwnerID   *uuid.UUID
	IsActive  bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Branch struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Phone     *string   `gorm:"type:varchar(20)"`
	URL       *string   `gorm:"type:varchar(500)"`
	Latitude  *float64
	Longitude *float64
	Rating    *float64
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerID   *uuid.UUID
	IsActive  bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Menu struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_branch_menu_name"`
	Logo      *string   `gorm:"type:varchar(500)"`
	BranchID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_branch_menu_name"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type MenuItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Logo        *string   `gorm:"type:varchar(500)"`
	Description *string   `gorm:"type:text"`
	Price       int64     `gorm:"not null;check:price >= 0"`
	IsAvailable bool      `gorm:"not null;default:true"`
	MenuID      uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
