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

// MenuUsecase handles menu catalog business logic
type MenuUsecase struct {
	menuRepo   repositories.MenuRepository
	branchRepo repositories.BranchRepository
}

// NewMenuUsecase creates a new menu usecase
func NewMenuUsecase(menuRepo repositories.MenuRepository, branchRepo repositories.BranchRepository) *MenuUsecase {
	return &MenuUsecase{menuRepo: menuRepo, branchRepo: branchRepo}
}

// Create creates a new menu under an active branch. Menu names are
// unique per branch.
func (u *MenuUsecase) Create(ctx context.Context, input *entities.CreateMenuInput) (*entities.Menu, error) {
	branchID, err := uuid.Parse(input.BranchID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid branch id")
	}
	if _, err := u.branchRepo.GetByID(ctx, branchID); err != nil {
		return nil, err
	}

	_, err = u.menuRepo.GetByBranchAndName(ctx, branchID, input.Name)
	if err == nil {
		return nil, domainerrors.Conflict("menu name already exists on this branch")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	menu := &entities.Menu{
		Name:     input.Name,
		BranchID: branchID,
	}
	if input.Logo != "" {
		menu.Logo = null.StringFrom(input.Logo)
	}

	if err := u.menuRepo.Create(ctx, menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// GetByID gets an active menu
func (u *MenuUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Menu, error) {
	return u.menuRepo.GetByID(ctx, id)
}

// Update updates mutable menu fields
func (u *MenuUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateMenuInput) (*entities.Menu, error) {
	menu, err := u.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != menu.Name {
		_, err := u.menuRepo.GetByBranchAndName(ctx, menu.BranchID, *input.Name)
		if err == nil {
			return nil, domainerrors.Conflict("menu name already exists on this branch")
		}
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		menu.Name = *input.Name
	}
	if input.Logo != nil {
		menu.Logo = null.StringFrom(*input.Logo)
	}

	if err := u.menuRepo.Update(ctx, menu); err != nil {
		return nil, err
	}
	return u.menuRepo.GetByID(ctx, id)
}

// Delete soft-deletes a menu
func (u *MenuUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.menuRepo.SoftDelete(ctx, id)
}

// ListByBranch returns a branch's active menus with pagination
func (u *MenuUsecase) ListByBranch(ctx context.Context, branchID uuid.UUID, skip, limit int) ([]*entities.Menu, int, error) {
	p := utils.GetPaginationParams(skip, limit)
	return u.menuRepo.ListByBranch(ctx, branchID, p.Skip, p.Limit)
}
