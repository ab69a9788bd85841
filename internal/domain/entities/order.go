package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// OrderStatus represents order status
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "PENDING"
	OrderStatusConfirmed      OrderStatus = "CONFIRMED"
	OrderStatusPreparing      OrderStatus = "PREPARING"
	OrderStatusReady          OrderStatus = "READY"
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusCompleted      OrderStatus = "COMPLETED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

// orderTransitions is the authoritative transition table. A status
// change absent from this table is rejected. READY may complete
// directly for pickup orders, skipping delivery.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:        {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:      {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:      {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:          {OrderStatusOutForDelivery, OrderStatusCompleted},
	OrderStatusOutForDelivery: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:      {},
	OrderStatusCancelled:      {},
}

// ValidOrderStatus reports whether the status is a known status
func ValidOrderStatus(s OrderStatus) bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition reports whether an order may move from one status to another
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the allowed next statuses from the given status
func NextStatuses(from OrderStatus) []OrderStatus {
	return orderTransitions[from]
}

// IsTerminalStatus reports whether no further transitions exist
func IsTerminalStatus(s OrderStatus) bool {
	return len(orderTransitions[s]) == 0
}

// deletableStatuses are the statuses in which an order may be soft-deleted
var deletableStatuses = map[OrderStatus]bool{
	OrderStatusPending:   true,
	OrderStatusCancelled: true,
	OrderStatusCompleted: true,
}

// Deletable reports whether an order in the given status may be soft-deleted
func Deletable(s OrderStatus) bool {
	return deletableStatuses[s]
}

// Order represents an order entity. Rows are immutable once created
// except for status, updated_at and the soft-delete flag. TotalAmount
// is in cents, snapshotted from the basket at creation time.
type Order struct {
	ID                  uuid.UUID   `json:"id"`
	Code                string      `json:"code"`
	UserID              uuid.UUID   `json:"userId"`
	BranchID            uuid.UUID   `json:"branchId"`
	Status              OrderStatus `json:"status"`
	TotalAmount         int64       `json:"totalAmount"`
	SpecialInstructions null.String `json:"specialInstructions,omitempty"`
	DeliveryAddress     null.String `json:"deliveryAddress,omitempty"`
	IsActive            bool        `json:"isActive"`
	CreatedAt           time.Time   `json:"createdAt"`
	UpdatedAt           time.Time   `json:"updatedAt"`

	Items []*OrderItem `json:"items,omitempty"`
}

// OrderItem represents one order line. UnitPrice and TotalPrice are
// snapshots in cents, decoupled from later menu item price changes.
type OrderItem struct {
	ID         uuid.UUID `json:"id"`
	OrderID    uuid.UUID `json:"orderId"`
	MenuItemID uuid.UUID `json:"menuItemId"`
	Quantity   int       `json:"quantity"`
	UnitPrice  int64     `json:"unitPrice"`
	TotalPrice int64     `json:"totalPrice"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateOrderInput represents input for creating an order from the basket
type CreateOrderInput struct {
	BranchID            string `json:"branchId" binding:"required,uuid"`
	SpecialInstructions string `json:"specialInstructions,omitempty" binding:"omitempty,max=500"`
	DeliveryAddress     string `json:"deliveryAddress,omitempty" binding:"omitempty,max=255"`
}

// UpdateOrderInput represents mutable order fields
type UpdateOrderInput struct {
	Status              *OrderStatus `json:"status,omitempty"`
	SpecialInstructions *string      `json:"specialInstructions,omitempty" binding:"omitempty,max=500"`
	DeliveryAddress     *string      `json:"deliveryAddress,omitempty" binding:"omitempty,max=255"`
}

// OrderFilter narrows order listings
type OrderFilter struct {
	UserID   *uuid.UUID
	BranchID *uuid.UUID
}

// OrderListResponse is an offset-paginated order listing
type OrderListResponse struct {
	Orders     []*Order `json:"orders"`
	TotalCount int      `json:"totalCount"`
	Skip       int      `json:"skip"`
	Limit      int      `json:"limit"`
}
