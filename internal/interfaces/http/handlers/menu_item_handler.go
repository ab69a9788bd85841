package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"orderdesk.backend/internal/domain/entities"
	domainerrors "orderdesk.backend/internal/domain/errors"
	"orderdesk.backend/internal/interfaces/http/response"
	"orderdesk.backend/internal/usecases"
)

// MenuItemHandler handles menu item catalog endpoints
type MenuItemHandler struct {
	itemUsecase *usecases.MenuItemUsecase
}

// NewMenuItemHandler creates a new menu item handler
func NewMenuItemHandler(itemUsecase *usecases.MenuItemUsecase) *MenuItemHandler {
	return &MenuItemHandler{itemUsecase: itemUsecase}
}

// CreateMenuItem creates a menu item
// POST /api/v1/menu-items
func (h *MenuItemHandler) CreateMenuItem(c *gin.Context) {
	var input entities.CreateMenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	item, err := h.itemUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, item)
}

// GetMenuItem gets a menu item by ID
// GET /api/v1/menu-items/:id
func (h *MenuItemHandler) GetMenuItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid menu item ID"))
		return
	}

	item, err := h.itemUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// UpdateMenuItem updates mutable menu item fields
// PUT /api/v1/menu-items/:id
func (h *MenuItemHandler) UpdateMenuItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid menu item ID"))
		return
	}

	var input entities.UpdateMenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	item, err := h.itemUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// DeleteMenuItem soft-deletes a menu item
// DELETE /api/v1/menu-items/:id
func (h *MenuItemHandler) DeleteMenuItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid menu item ID"))
		return
	}

	if err := h.itemUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Menu item deleted",
	})
}

// ListMenuItems lists items of one menu
// GET /api/v1/menu-items?menuId=...
func (h *MenuItemHandler) ListMenuItems(c *gin.Context) {
	menuID, err := uuid.Parse(c.Query("menuId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("menuId query parameter is required"))
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	items, total, err := h.itemUsecase.ListByMenu(c.Request.Context(), menuID, skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items":      items,
		"totalCount": total,
	})
}
