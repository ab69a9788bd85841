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

// PaymentRepository implements payment data operations
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create creates a new payment record
func (r *PaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = payment.CreatedAt

	m := &models.Payment{
		ID:            payment.ID,
		OrderID:       payment.OrderID,
		IntentID:      payment.IntentID,
		ClientSecret:  payment.ClientSecret.Ptr(),
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		Status:        string(payment.Status),
		FailureReason: payment.FailureReason.Ptr(),
		ReceiptURL:    payment.ReceiptURL.Ptr(),
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// GetByOrderID gets the payment attached to an order
func (r *PaymentRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entities.Payment, error) {
	var m models.Payment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("order_id = ?", orderID).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return paymentToEntity(&m), nil
}

// GetByIntentID gets a payment by its provider intent ID
func (r *PaymentRepository) GetByIntentID(ctx context.Context, intentID string) (*entities.Payment, error) {
	var m models.Payment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("intent_id = ?", intentID).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return paymentToEntity(&m), nil
}

// Update updates a payment's status and provider-reported fields
func (r *PaymentRepository) Update(ctx context.Context, payment *entities.Payment) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Payment{}).
		Where("id = ?", payment.ID).
		Updates(map[string]interface{}{
			"status":         string(payment.Status),
			"failure_reason": payment.FailureReason.Ptr(),
			"receipt_url":    payment.ReceiptURL.Ptr(),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func paymentToEntity(m *models.Payment) *entities.Payment {
	return &entities.Payment{
		ID:            m.ID,
		OrderID:       m.OrderID,
		IntentID:      m.IntentID,
		ClientSecret:  null.StringFromPtr(m.ClientSecret),
		Amount:        m.Amount,
		Currency:      m.Currency,
		Status:        entities.PaymentStatus(m.Status),
		FailureReason: null.StringFromPtr(m.FailureReason),
		ReceiptURL:    null.StringFromPtr(m.ReceiptURL),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
