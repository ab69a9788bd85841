package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"orderdesk.backend/internal/domain/entities"
	domainerrors "orderdesk.backend/internal/domain/errors"
	"orderdesk.backend/internal/interfaces/http/response"
	"orderdesk.backend/internal/usecases"
)

// CleanupHandler handles account-hygiene endpoints, admin only
type CleanupHandler struct {
	cleanupUsecase *usecases.CleanupUsecase
}

// NewCleanupHandler creates a new cleanup handler
func NewCleanupHandler(cleanupUsecase *usecases.CleanupUsecase) *CleanupHandler {
	return &CleanupHandler{cleanupUsecase: cleanupUsecase}
}

// GetStats reports how many rows each cleanup pass would touch
// GET /api/v1/admin/cleanup/stats?days=...
func (h *CleanupHandler) GetStats(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(usecases.DefaultCleanupDays)))
	if err != nil || days < 1 {
		response.Error(c, domainerrors.BadRequest("days must be a positive integer"))
		return
	}

	stats, err := h.cleanupUsecase.Stats(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// Execute runs a cleanup pass, optionally as a dry run
// POST /api/v1/admin/cleanup
func (h *CleanupHandler) Execute(c *gin.Context) {
	var req entities.CleanupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	result, err := h.cleanupUsecase.Execute(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}
