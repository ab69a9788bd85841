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

// CompanyHandler handles company catalog endpoints
type CompanyHandler struct {
	companyUsecase *usecases.CompanyUsecase
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyUsecase *usecases.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{companyUsecase: companyUsecase}
}

// CreateCompany creates a company
// POST /api/v1/companies
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var input entities.CreateCompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	company, err := h.companyUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, company)
}

// GetCompany gets a company by ID
// GET /api/v1/companies/:id
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid company ID"))
		return
	}

	company, err := h.companyUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, company)
}

// UpdateCompany updates mutable company fields
// PUT /api/v1/companies/:id
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid company ID"))
		return
	}

	var input entities.UpdateCompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	company, err := h.companyUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, company)
}

// UpdateCompanyOwner reassigns company ownership
// PUT /api/v1/companies/:id/owner
func (h *CompanyHandler) UpdateCompanyOwner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid company ID"))
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

	company, err := h.companyUsecase.UpdateOwner(c.Request.Context(), id, ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, company)
}

// DeleteCompany soft-deletes a company
// DELETE /api/v1/companies/:id
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid company ID"))
		return
	}

	if err := h.companyUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Company deleted",
	})
}

// ListCompanies lists companies with offset pagination
// GET /api/v1/companies
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	companies, total, err := h.companyUsecase.List(c.Request.Context(), skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"companies":  companies,
		"totalCount": total,
	})
}
