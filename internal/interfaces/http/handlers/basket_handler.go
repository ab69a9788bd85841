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

// BasketHandler handles basket endpoints
type BasketHandler struct {
	basketUsecase *usecases.BasketUsecase
}

// NewBasketHandler creates a new basket handler
func NewBasketHandler(basketUsecase *usecases.BasketUsecase) *BasketHandler {
	return &BasketHandler{basketUsecase: basketUsecase}
}

// AddToBasket adds an item to the caller's basket, merging duplicates
// POST /api/v1/basket
func (h *BasketHandler) AddToBasket(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	var input entities.AddBasketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	basket, err := h.basketUsecase.Add(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, basket)
}

// UpdateBasket replaces one basket row's target item and quantity
// PUT /api/v1/basket/:id
func (h *BasketHandler) UpdateBasket(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	basketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid basket ID"))
		return
	}

	var input entities.UpdateBasketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	basket, err := h.basketUsecase.Update(c.Request.Context(), userID, basketID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, basket)
}

// PatchBasket updates only the quantity of one basket row
// PATCH /api/v1/basket/:id
func (h *BasketHandler) PatchBasket(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	basketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid basket ID"))
		return
	}

	var input entities.PatchBasketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	basket, err := h.basketUsecase.PatchQuantity(c.Request.Context(), userID, basketID, input.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, basket)
}

// RemoveFromBasket deletes one basket row
// DELETE /api/v1/basket/:id
func (h *BasketHandler) RemoveFromBasket(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	basketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid basket ID"))
		return
	}

	if err := h.basketUsecase.Remove(c.Request.Context(), userID, basketID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Item removed from basket",
	})
}

// ClearBasket deletes all the caller's basket rows
// DELETE /api/v1/basket
func (h *BasketHandler) ClearBasket(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	if err := h.basketUsecase.Clear(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Basket cleared",
	})
}

// ListBasket lists the caller's basket with a computed total
// GET /api/v1/basket
func (h *BasketHandler) ListBasket(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("unauthorized"))
		return
	}

	listing, err := h.basketUsecase.ListWithTotal(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, listing)
}
