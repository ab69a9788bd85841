package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"orderdesk.backend/internal/domain/entities"
	domainerrors "orderdesk.backend/internal/domain/errors"
	"orderdesk.backend/internal/domain/repositories"
	"orderdesk.backend/pkg/utils"
)

// MenuItemUsecase handles menu item catalog business logic
type MenuItemUsecase struct {
	itemRepo repositories.MenuItemRepository
	menuRepo repositories.MenuRepository
}

// NewMenuItemUsecase creates a new menu item usecase
func NewMenuItemUsecase(itemRepo repositories.MenuItemRepository, menuRepo repositories.MenuRepository) *MenuItemUsecase {
	return &MenuItemUsecase{itemRepo: itemRepo, menuRepo: menuRepo}
}

// Create creates a new menu item under an active menu
func (u *MenuItemUsecase) Create(ctx context.Context, input *entities.CreateMenuItemInput) (*entities.MenuItem, error) {
	menuID, err := uuid.Parse(input.MenuID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid menu id")
	}
	if _, err := u.menuRepo.GetByID(ctx, menuID); err != nil {
		return nil, err
	}

	if input.Price < 0 {
		return nil, domainerrors.BadRequest("price must not be negative")
	}

	item := &entities.MenuItem{
		Name:        input.Name,
		Price:       input.Price,
		IsAvailable: true,
		MenuID:      menuID,
	}
	if input.Logo != "" {
		item.Logo = null.StringFrom(input.Logo)
	}
	if input.Description != "" {
		item.Description = null.StringFrom(input.Description)
	}

	if err := u.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetByID gets an active menu item
func (u *MenuItemUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.MenuItem, error) {
	return u.itemRepo.GetByID(ctx, id)
}

// Update updates mutable menu item fields
func (u *MenuItemUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateMenuItemInput) (*entities.MenuItem, error) {
	item, err := u.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Logo != nil {
		item.Logo = null.StringFrom(*input.Logo)
	}
	if input.Description != nil {
		item.Description = null.StringFrom(*input.Description)
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, domainerrors.BadRequest("price must not be negative")
		}
		item.Price = *input.Price
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	if err := u.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return u.itemRepo.GetByID(ctx, id)
}

// Delete soft-deletes a menu item
func (u *MenuItemUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.itemRepo.SoftDelete(ctx, id)
}

// ListByMenu returns a menu's active items with pagination
func (u *MenuItemUsecase) ListByMenu(ctx context.Context, menuID uuid.UUID, skip, limit int) ([]*entities.MenuItem, int, error) {
	p := utils.GetPaginationParams(skip, limit)
	return u.itemRepo.ListByMenu(ctx, menuID, p.Skip, p.Limit)
}
