package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusSucceeded  PaymentStatus = "SUCCEEDED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusCancelled  PaymentStatus = "CANCELLED"
	PaymentStatusRefunded   PaymentStatus = "REFUNDED"
)

// Payment represents the payment-intent record attached to an order.
// Amount is in cents. One payment row per order.
type Payment struct {
	ID            uuid.UUID     `json:"id"`
	OrderID       uuid.UUID     `json:"orderId"`
	IntentID      string        `json:"intentId"`
	ClientSecret  null.String   `json:"clientSecret,omitempty"`
	Amount        int64         `json:"amount"`
	Currency      string        `json:"currency"`
	Status        PaymentStatus `json:"status"`
	FailureReason null.String   `json:"failureReason,omitempty"`
	ReceiptURL    null.String   `json:"receiptUrl,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// CreatePaymentIntentInput represents input for creating a payment intent
type CreatePaymentIntentInput struct {
	OrderID  string `json:"orderId" binding:"required,uuid"`
	Currency string `json:"currency,omitempty" binding:"omitempty,len=3"`
}

// PaymentWebhookEvent is the provider-facing webhook payload
type PaymentWebhookEvent struct {
	EventType string             `json:"eventType" binding:"required"`
	Intent    PaymentIntentEvent `json:"intent" binding:"required"`
}

// PaymentIntentEvent carries the intent fields referenced by webhooks
type PaymentIntentEvent struct {
	IntentID      string `json:"intentId" binding:"required"`
	FailureReason string `json:"failureReason,omitempty"`
	ReceiptURL    string `json:"receiptUrl,omitempty"`
}
