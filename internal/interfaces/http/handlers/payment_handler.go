package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"orderdesk.backend/internal/domain/entities"
	domainerrors "orderdesk.backend/internal/domain/errors"
	"orderdesk.backend/internal/interfaces/http/middleware"
	"orderdesk.backend/internal/interfaces/http/response"
	"orderdesk.backend/internal/usecases"
)

// PaymentHandler handles payment intent and webhook endpoints
type PaymentHandler struct {
	paymentUsecase *usecases.PaymentUsecase
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUsecase *usecases.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase}
}

// CreateIntent creates or refreshes a payment intent for an order
// POST /api/v1/payments/intent
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	var input entities.CreatePaymentIntentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	payment, err := h.paymentUsecase.CreateIntent(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, payment)
}

// GetPayment gets the payment attached to an order, owner or staff only
// GET /api/v1/payments/order/:orderId
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}
	role, _ := middleware.GetUserRole(c)

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid order ID"))
		return
	}

	payment, err := h.paymentUsecase.GetPayment(c.Request.Context(), userID, role, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, payment)
}

// HandleWebhook consumes provider payment lifecycle events. Unknown
// intents and unhandled event types acknowledge with 200 so the
// provider does not retry them forever.
// POST /api/v1/payments/webhook
func (h *PaymentHandler) HandleWebhook(c *gin.Context) {
	var event entities.PaymentWebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.paymentUsecase.HandleWebhook(c.Request.Context(), &event); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"received": true,
	})
}
