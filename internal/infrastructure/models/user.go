package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Phone        *string   `gorm:"type:varchar(20);uniqueIndex"`
	IsVerified   bool      `gorm:"not null;default:false"`
	Role         string    `gorm:"type:varchar(50);not null;default:'USER'"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type VerificationCode struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     *string   `gorm:"type:varchar(255);index"`
	Phone     *string   `gorm:"type:varchar(20);index"`
	Code      string    `gorm:"type:varchar(10);not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	IsUsed    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
