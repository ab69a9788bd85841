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

// BranchHandler handles branch catalog endpoints
type BranchHandler struct {
	branchUsecase *usecases.BranchUsecase
}

// NewBranchHandler creates a new branch handler
func NewBranchHandler(branchUsecase *usecases.BranchUsecase) *BranchHandler {
	return &BranchHandler{branchUsecase: branchUsecase}
}

// CreateBranch creates a branch under a company
// POST /api/v1/branches
func (h *BranchHandler) CreateBranch(c *gin.Context) {
	var input entities.CreateBranchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	branch, err := h.branchUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, branch)
}

// GetBranch gets a branch by ID
// GET /api/v1/branches/:id
func (h *BranchHandler) GetBranch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid branch ID"))
		return
	}

	branch, err := h.branchUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, branch)
}

// UpdateBranch updates mutable branch fields
// PUT /api/v1/branches/:id
func (h *BranchHandler) UpdateBranch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid branch ID"))
		return
	}

	var input entities.UpdateBranchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	branch, err := h.branchUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, branch)
}

// UpdateBranchOwner reassigns branch ownership
// PUT /api/v1/branches/:id/owner
func (h *BranchHandler) UpdateBranchOwner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid branch ID"))
		return
	}

	var input entities.UpdateOwnerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	ownerID, err := uuid.Parse(input.OwnerID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid owner ID"))
		return
	}

	branch, err := h.branchUsecase.UpdateOwner(c.Request.Context(), id, ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, branch)
}

// DeleteBranch soft-deletes a branch
// DELETE /api/v1/branches/:id
func (h *BranchHandler) DeleteBranch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid branch ID"))
		return
	}

	if err := h.branchUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Branch deleted",
	})
}

// ListBranches lists branches, optionally scoped to one company
// GET /api/v1/branches?companyId=...
func (h *BranchHandler) ListBranches(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	var companyID *uuid.UUID
	if raw := c.Query("companyId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid company ID"))
			return
		}
		companyID = &id
	}

	branches, total, err := h.branchUsecase.List(c.Request.Context(), companyID, skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"branches":   branches,
		"totalCount": total,
	})
}
