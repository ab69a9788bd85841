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

// MenuHandler handles menu catalog endpoints
type MenuHandler struct {
	menuUsecase *usecases.MenuUsecase
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuUsecase *usecases.MenuUsecase) *MenuHandler {
	return &MenuHandler{menuUsecase: menuUsecase}
}

// CreateMenu creates a menu on a branch
// POST /api/v1/menus
func (h *MenuHandler) CreateMenu(c *gin.Context) {
	var input entities.CreateMenuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	menu, err := h.menuUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, menu)
}

// GetMenu gets a menu by ID
// GET /api/v1/menus/:id
func (h *MenuHandler) GetMenu(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid menu ID"))
		return
	}

	menu, err := h.menuUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, menu)
}

// UpdateMenu updates mutable menu fields
// PUT /api/v1/menus/:id
func (h *MenuHandler) UpdateMenu(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid menu ID"))
		return
	}

	var input entities.UpdateMenuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	menu, err := h.menuUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, menu)
}

// DeleteMenu soft-deletes a menu
// DELETE /api/v1/menus/:id
func (h *MenuHandler) DeleteMenu(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid menu ID"))
		return
	}

	if err := h.menuUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Menu deleted",
	})
}

// ListMenus lists menus of one branch
// GET /api/v1/menus?branchId=...
func (h *MenuHandler) ListMenus(c *gin.Context) {
	branchID, err := uuid.Parse(c.Query("branchId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("branchId query parameter is required"))
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	menus, total, err := h.menuUsecase.ListByBranch(c.Request.Context(), branchID, skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"menus":      menus,
		"totalCount": total,
	})
}
