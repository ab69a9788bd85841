package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Company represents a company entity
type Company struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Phone     null.String `json:"phone,omitempty"`
	Email     null.String `json:"email,omitempty"`
	Logo      null.String `json:"logo,omitempty"`
	Address   null.String `json:"address,omitempty"`
	OwnerID   *uuid.UUID  `json:"ownerId,omitempty"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Branch represents a branch entity
type Branch struct {
	ID        uuid.UUID   `json:"id"`
	Username  string      `json:"username"`
	Phone     null.String `json:"phone,omitempty"`
	URL       null.String `json:"url,omitempty"`
	Latitude  *float64    `json:"latitude,omitempty"`
	Longitude *float64    `json:"longitude,omitempty"`
	Rating    *float64    `json:"rating,omitempty"`
	CompanyID uuid.UUID   `json:"companyId"`
	OwnerID   *uuid.UUID  `json:"ownerId,omitempty"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Menu represents a menu entity
type Menu struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Logo      null.String `json:"logo,omitempty"`
	BranchID  uuid.UUID   `json:"branchId"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// MenuItem represents a menu item entity. Price is stored in cents.
type MenuItem struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Logo        null.String `json:"logo,omitempty"`
	Description null.String `json:"description,omitempty"`
	Price       int64       `json:"price"`
	IsAvailable bool        `json:"isAvailable"`
	MenuID      uuid.UUID   `json:"menuId"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// CreateCompanyInput represents input for creating a company
type CreateCompanyInput struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty" binding:"omitempty,email"`
	Logo    string `json:"logo,omitempty"`
	Address string `json:"address,omitempty"`
	OwnerID string `json:"ownerId,omitempty" binding:"omitempty,uuid"`
}

// UpdateCompanyInput represents mutable company fields
type UpdateCompanyInput struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	Logo    *string `json:"logo,omitempty"`
	Address *string `json:"address,omitempty"`
}

// CreateBranchInput represents input for creating a branch
type CreateBranchInput struct {
	Username  string   `json:"username" binding:"required,min=2,max=100"`
	Phone     string   `json:"phone,omitempty"`
	URL       string   `json:"url,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	CompanyID string   `json:"companyId" binding:"required,uuid"`
	OwnerID   string   `json:"ownerId,omitempty" binding:"omitempty,uuid"`
}

// UpdateBranchInput represents mutable branch fields
type UpdateBranchInput struct {
	Username  *string  `json:"username,omitempty" binding:"omitempty,min=2,max=100"`
	Phone     *string  `json:"phone,omitempty"`
	URL       *string  `json:"url,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
}

// UpdateOwnerInput represents an ownership reassignment
type UpdateOwnerInput struct {
	OwnerID string `json:"ownerId" binding:"required,uuid"`
}

// CreateMenuInput represents input for creating a menu
type CreateMenuInput struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Logo     string `json:"logo,omitempty"`
	BranchID string `json:"branchId" binding:"required,uuid"`
}

// UpdateMenuInput represents mutable menu fields
type UpdateMenuInput struct {
	Name *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Logo *string `json:"logo,omitempty"`
}

// CreateMenuItemInput represents input for creating a menu item
type CreateMenuItemInput struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Logo        string `json:"logo,omitempty"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price" binding:"min=0"`
	MenuID      string `json:"menuId" binding:"required,uuid"`
}

// UpdateMenuItemInput represents mutable menu item fields
type UpdateMenuItemInput struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Logo        *string `json:"logo,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int64  `json:"price,omitempty" binding:"omitempty,min=0"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}
