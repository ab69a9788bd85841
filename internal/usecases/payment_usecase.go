package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"orderdesk.backend/internal/domain/entities"
	domainerrors "orderdesk.backend/internal/domain/errors"
	"orderdesk.backend/internal/domain/repositories"
	"orderdesk.backend/internal/infrastructure/payments"
	"orderdesk.backend/pkg/logger"
)

// PaymentUsecase handles the payment-intent adapter logic
type PaymentUsecase struct {
	paymentRepo     repositories.PaymentRepository
	orderRepo       repositories.OrderRepository
	provider        payments.Provider
	uow             repositories.UnitOfWork
	defaultCurrency string
}

// NewPaymentUsecase creates a new payment usecase
func NewPaymentUsecase(
	paymentRepo repositories.PaymentRepository,
	orderRepo repositories.OrderRepository,
	provider payments.Provider,
	uow repositories.UnitOfWork,
	defaultCurrency string,
) *PaymentUsecase {
	return &PaymentUsecase{
		paymentRepo:     paymentRepo,
		orderRepo:       orderRepo,
		provider:        provider,
		uow:             uow,
		defaultCurrency: defaultCurrency,
	}
}

// payableStatuses are the order statuses an intent may be created in
var payableStatuses = map[entities.OrderStatus]bool{
	entities.OrderStatusPending:   true,
	entities.OrderStatusConfirmed: true,
}

// CreateIntent creates (or refreshes) a payment intent for an order.
// A succeeded payment cannot be paid again; a pending or failed
// payment row is re-used with a fresh intent.
func (u *PaymentUsecase) CreateIntent(ctx context.Context, callerID uuid.UUID, input *entities.CreatePaymentIntentInput) (*entities.Payment, error) {
	orderID, err := uuid.Parse(input.OrderID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid order id")
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != callerID {
		return nil, domainerrors.ErrForbidden
	}
	if !payableStatuses[order.Status] {
		return nil, domainerrors.NewAppError(409,
			"order is not payable in its current status", domainerrors.ErrInvalidState)
	}

	existing, err := u.paymentRepo.GetByOrderID(ctx, orderID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.Status == entities.PaymentStatusSucceeded {
		return nil, domainerrors.Conflict("order is already paid")
	}

	currency := strings.ToUpper(input.Currency)
	if currency == "" {
		currency = u.defaultCurrency
	}

	intent, err := u.provider.CreateIntent(ctx, payments.IntentRequest{
		Amount:   order.TotalAmount,
		Currency: currency,
		OrderRef: order.Code,
	})
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.IntentID = intent.ID
		existing.ClientSecret = null.StringFrom(intent.ClientSecret)
		existing.Status = entities.PaymentStatusPending
		existing.FailureReason = null.String{}
		if err := u.paymentRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return u.paymentRepo.GetByOrderID(ctx, orderID)
	}

	payment := &entities.Payment{
		OrderID:      orderID,
		IntentID:     intent.ID,
		ClientSecret: null.StringFrom(intent.ClientSecret),
		Amount:       order.TotalAmount,
		Currency:     currency,
		Status:       entities.PaymentStatusPending,
	}
	if err := u.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// GetPayment returns the payment attached to an order, enforcing
// ownership for plain users
func (u *PaymentUsecase) GetPayment(ctx context.Context, callerID uuid.UUID, callerRole entities.UserRole, orderID uuid.UUID) (*entities.Payment, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != callerID && !privilegedRoles[callerRole] {
		return nil, domainerrors.ErrForbidden
	}
	return u.paymentRepo.GetByOrderID(ctx, orderID)
}

// HandleWebhook applies a provider event to the payment and its order.
// Payment and order updates share one transaction. Events for unknown
// intents are logged and dropped so the provider gets a 200 and stops
// retrying.
func (u *PaymentUsecase) HandleWebhook(ctx context.Context, event *entities.PaymentWebhookEvent) error {
	payment, err := u.paymentRepo.GetByIntentID(ctx, event.Intent.IntentID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			logger.Warn(ctx, "webhook for unknown payment intent",
				zap.String("intent_id", event.Intent.IntentID),
				zap.String("event_type", event.EventType))
			return nil
		}
		return err
	}

	switch event.EventType {
	case "payment_intent.succeeded":
		return u.uow.Do(ctx, func(txCtx context.Context) error {
			payment.Status = entities.PaymentStatusSucceeded
			if event.Intent.ReceiptURL != "" {
				payment.ReceiptURL = null.StringFrom(event.Intent.ReceiptURL)
			}
			if err := u.paymentRepo.Update(txCtx, payment); err != nil {
				return err
			}
			return u.confirmOrder(txCtx, payment.OrderID, entities.OrderStatusConfirmed)
		})

	case "payment_intent.payment_failed":
		return u.uow.Do(ctx, func(txCtx context.Context) error {
			payment.Status = entities.PaymentStatusFailed
			if event.Intent.FailureReason != "" {
				payment.FailureReason = null.StringFrom(event.Intent.FailureReason)
			}
			if err := u.paymentRepo.Update(txCtx, payment); err != nil {
				return err
			}
			return u.confirmOrder(txCtx, payment.OrderID, entities.OrderStatusCancelled)
		})

	case "payment_intent.canceled":
		return u.uow.Do(ctx, func(txCtx context.Context) error {
			payment.Status = entities.PaymentStatusCancelled
			if err := u.paymentRepo.Update(txCtx, payment); err != nil {
				return err
			}
			return u.confirmOrder(txCtx, payment.OrderID, entities.OrderStatusCancelled)
		})

	case "payment_intent.processing":
		payment.Status = entities.PaymentStatusProcessing
		return u.paymentRepo.Update(ctx, payment)

	default:
		logger.Warn(ctx, "ignoring unhandled webhook event",
			zap.String("event_type", event.EventType))
		return nil
	}
}

// confirmOrder moves the order to the target status when the state
// machine allows it; an order already past the transition is left
// untouched rather than failing the webhook
func (u *PaymentUsecase) confirmOrder(ctx context.Context, orderID uuid.UUID, target entities.OrderStatus) error {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.Status == target || !entities.CanTransition(order.Status, target) {
		logger.Info(ctx, "order already progressed, skipping webhook transition",
			zap.String("order_id", orderID.String()),
			zap.String("status", string(order.Status)),
			zap.String("target", string(target)))
		return nil
	}
	order.Status = target
	return u.orderRepo.Update(ctx, order)
}
