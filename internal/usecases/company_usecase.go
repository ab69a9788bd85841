package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"orderdesk.backend/internal/domain/entities"
	domainerrors "orderdesk.backend/internal/domain/errors"
	"orderdesk.backend/internal/domain/repositories"
	"orderdesk.backend/pkg/utils"
)

// CompanyUsecase handles company catalog business logic
type CompanyUsecase struct {
	companyRepo repositories.CompanyRepository
	userRepo    repositories.UserRepository
}

// NewCompanyUsecase creates a new company usecase
func NewCompanyUsecase(companyRepo repositories.CompanyRepository, userRepo repositories.UserRepository) *CompanyUsecase {
	return &CompanyUsecase{companyRepo: companyRepo, userRepo: userRepo}
}

// Create creates a new company
func (u *CompanyUsecase) Create(ctx context.Context, input *entities.CreateCompanyInput) (*entities.Company, error) {
	_, err := u.companyRepo.GetByName(ctx, input.Name)
	if err == nil {
		return nil, domainerrors.Conflict("company name already exists")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	company := &entities.Company{Name: input.Name}
	if input.Phone != "" {
		company.Phone = null.StringFrom(input.Phone)
	}
	if input.Email != "" {
		company.Email = null.StringFrom(input.Email)
	}
	if input.Logo != "" {
		company.Logo = null.StringFrom(input.Logo)
	}
	if input.Address != "" {
		company.Address = null.StringFrom(input.Address)
	}
	if input.OwnerID != "" {
		ownerID, err := uuid.Parse(input.OwnerID)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid owner id")
		}
		if _, err := u.userRepo.GetByID(ctx, ownerID); err != nil {
			return nil, err
		}
		company.OwnerID = &ownerID
	}

	if err := u.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// GetByID gets an active company
func (u *CompanyUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Company, error) {
	return u.companyRepo.GetByID(ctx, id)
}

// Update updates mutable company fields
func (u *CompanyUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateCompanyInput) (*entities.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != company.Name {
		_, err := u.companyRepo.GetByName(ctx, *input.Name)
		if err == nil {
			return nil, domainerrors.Conflict("company name already exists")
		}
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		company.Name = *input.Name
	}
	if input.Phone != nil {
		company.Phone = null.StringFrom(*input.Phone)
	}
	if input.Email != nil {
		company.Email = null.StringFrom(*input.Email)
	}
	if input.Logo != nil {
		company.Logo = null.StringFrom(*input.Logo)
	}
	if input.Address != nil {
		company.Address = null.StringFrom(*input.Address)
	}

	if err := u.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return u.companyRepo.GetByID(ctx, id)
}

// UpdateOwner reassigns company ownership. Reassigning to the current
// owner is a no-op.
func (u *CompanyUsecase) UpdateOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*entities.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company.OwnerID != nil && *company.OwnerID == ownerID {
		return company, nil
	}

	if _, err := u.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	if err := u.companyRepo.UpdateOwner(ctx, id, ownerID); err != nil {
		return nil, err
	}
	return u.companyRepo.GetByID(ctx, id)
}

// Delete soft-deletes a company
func (u *CompanyUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.companyRepo.SoftDelete(ctx, id)
}

// List returns active companies with pagination
func (u *CompanyUsecase) List(ctx context.Context, skip, limit int) ([]*entities.Company, int, error) {
	p := utils.GetPaginationParams(skip, limit)
	return u.companyRepo.List(ctx, p.Skip, p.Limit)
}
