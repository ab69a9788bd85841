package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MinBasketQuantity is the smallest allowed quantity per basket row
	MinBasketQuantity = 1
	// MaxBasketQuantity is the largest allowed quantity per basket row
	MaxBasketQuantity = 99
)

// ValidBasketQuantity reports whether the quantity is within bounds
func ValidBasketQuantity(q int) bool {
	return q >= MinBasketQuantity && q <= MaxBasketQuantity
}

// Basket represents one line of a user's cart. A user holds at most
// one row per menu item; repeated adds merge quantities.
type Basket struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	MenuItemID uuid.UUID `json:"menuItemId"`
	Quantity   int       `json:"quantity"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Joined menu item, populated on reads
	MenuItem *MenuItem `json:"menuItem,omitempty"`
}

// Subtotal returns quantity x unit price for the joined menu item
func (b *Basket) Subtotal() int64 {
	if b.MenuItem == nil {
		return 0
	}
	return b.MenuItem.Price * int64(b.Quantity)
}

// AddBasketInput represents input for adding an item to the basket
type AddBasketInput struct {
	MenuItemID string `json:"menuItemId" binding:"required,uuid"`
	Quantity   int    `json:"quantity" binding:"required"`
}

// UpdateBasketInput represents a full basket row update
type UpdateBasketInput struct {
	MenuItemID string `json:"menuItemId" binding:"required,uuid"`
	Quantity   int    `json:"quantity" binding:"required"`
}

// PatchBasketInput represents a quantity-only update
type PatchBasketInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

// BasketListResponse is the basket listing with a computed running total
type BasketListResponse struct {
	Baskets     []*Basket `json:"baskets"`
	TotalAmount int64     `json:"totalAmount"`
}
