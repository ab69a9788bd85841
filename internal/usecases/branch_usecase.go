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

// BranchUsecase handles branch catalog business logic
type BranchUsecase struct {
	branchRepo  repositories.BranchRepository
	companyRepo repositories.CompanyRepository
	userRepo    repositories.UserRepository
}

// NewBranchUsecase creates a new branch usecase
func NewBranchUsecase(
	branchRepo repositories.BranchRepository,
	companyRepo repositories.CompanyRepository,
	userRepo repositories.UserRepository,
) *BranchUsecase {
	return &BranchUsecase{
		branchRepo:  branchRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
	}
}

// Create creates a new branch under an active company
func (u *BranchUsecase) Create(ctx context.Context, input *entities.CreateBranchInput) (*entities.Branch, error) {
	companyID, err := uuid.Parse(input.CompanyID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid company id")
	}
	if _, err := u.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}

	_, err = u.branchRepo.GetByUsername(ctx, input.Username)
	if err == nil {
		return nil, domainerrors.Conflict("branch username already exists")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	branch := &entities.Branch{
		Username:  input.Username,
		CompanyID: companyID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}
	if input.Phone != "" {
		branch.Phone = null.StringFrom(input.Phone)
	}
	if input.URL != "" {
		branch.URL = null.StringFrom(input.URL)
	}
	if input.OwnerID != "" {
		ownerID, err := uuid.Parse(input.OwnerID)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid owner id")
		}
		if _, err := u.userRepo.GetByID(ctx, ownerID); err != nil {
			return nil, err
		}
		branch.OwnerID = &ownerID
	}

	if err := u.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

// GetByID gets an active branch
func (u *BranchUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Branch, error) {
	return u.branchRepo.GetByID(ctx, id)
}

// Update updates mutable branch fields
func (u *BranchUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateBranchInput) (*entities.Branch, error) {
	branch, err := u.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil && *input.Username != branch.Username {
		_, err := u.branchRepo.GetByUsername(ctx, *input.Username)
		if err == nil {
			return nil, domainerrors.Conflict("branch username already exists")
		}
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		branch.Username = *input.Username
	}
	if input.Phone != nil {
		branch.Phone = null.StringFrom(*input.Phone)
	}
	if input.URL != nil {
		branch.URL = null.StringFrom(*input.URL)
	}
	if input.Latitude != nil {
		branch.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		branch.Longitude = input.Longitude
	}
	if input.Rating != nil {
		branch.Rating = input.Rating
	}

	if err := u.branchRepo.Update(ctx, branch); err != nil {
		return nil, err
	}
	return u.branchRepo.GetByID(ctx, id)
}

// UpdateOwner reassigns branch ownership. Reassigning to the current
// owner is a no-op.
func (u *BranchUsecase) UpdateOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*entities.Branch, error) {
	branch, err := u.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch.OwnerID != nil && *branch.OwnerID == ownerID {
		return branch, nil
	}

	if _, err := u.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	if err := u.branchRepo.UpdateOwner(ctx, id, ownerID); err != nil {
		return nil, err
	}
	return u.branchRepo.GetByID(ctx, id)
}

// Delete soft-deletes a branch
func (u *BranchUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.branchRepo.SoftDelete(ctx, id)
}

// List returns active branches, optionally scoped to one company
func (u *BranchUsecase) List(ctx context.Context, companyID *uuid.UUID, skip, limit int) ([]*entities.Branch, int, error) {
	p := utils.GetPaginationParams(skip, limit)
	return u.branchRepo.List(ctx, companyID, p.Skip, p.Limit)
}
