package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"orderdesk.backend/internal/domain/entities"
	domainerrors "orderdesk.backend/internal/domain/errors"
	"orderdesk.backend/internal/domain/repositories"
)

// BasketUsecase handles basket business logic
type BasketUsecase struct {
	basketRepo repositories.BasketRepository
	itemRepo   repositories.MenuItemRepository
}

// NewBasketUsecase creates a new basket usecase
func NewBasketUsecase(basketRepo repositories.BasketRepository, itemRepo repositories.MenuItemRepository) *BasketUsecase {
	return &BasketUsecase{basketRepo: basketRepo, itemRepo: itemRepo}
}

// Add puts a menu item in the caller's basket. If the item is already
// in the basket the quantities merge; the merged quantity must stay
// within bounds.
func (u *BasketUsecase) Add(ctx context.Context, userID uuid.UUID, input *entities.AddBasketInput) (*entities.Basket, error) {
	if !entities.ValidBasketQuantity(input.Quantity) {
		return nil, domainerrors.BadRequest("quantity must be between 1 and 99")
	}

	menuItemID, err := uuid.Parse(input.MenuItemID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid menu item id")
	}

	item, err := u.itemRepo.GetByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if !item.IsAvailable {
		return nil, domainerrors.BadRequest("menu item is not available")
	}

	existing, err := u.basketRepo.GetByUserAndMenuItem(ctx, userID, menuItemID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		merged := existing.Quantity + input.Quantity
		if !entities.ValidBasketQuantity(merged) {
			return nil, domainerrors.BadRequest("merged quantity exceeds the 99 item limit")
		}
		existing.Quantity = merged
		if err := u.basketRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return u.basketRepo.GetByID(ctx, existing.ID)
	}

	basket := &entities.Basket{
		UserID:     userID,
		MenuItemID: menuItemID,
		Quantity:   input.Quantity,
	}
	if err := u.basketRepo.Create(ctx, basket); err != nil {
		return nil, err
	}
	return basket, nil
}

// Update replaces a basket row's menu item and quantity. Retargeting
// the row onto an item already held in another row is a Conflict.
func (u *BasketUsecase) Update(ctx context.Context, userID, basketID uuid.UUID, input *entities.UpdateBasketInput) (*entities.Basket, error) {
	if !entities.ValidBasketQuantity(input.Quantity) {
		return nil, domainerrors.BadRequest("quantity must be between 1 and 99")
	}

	menuItemID, err := uuid.Parse(input.MenuItemID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid menu item id")
	}

	basket, err := u.basketRepo.GetByID(ctx, basketID)
	if err != nil {
		return nil, err
	}
	if basket.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	if menuItemID != basket.MenuItemID {
		if _, err := u.itemRepo.GetByID(ctx, menuItemID); err != nil {
			return nil, err
		}
		other, err := u.basketRepo.GetByUserAndMenuItem(ctx, userID, menuItemID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		if other != nil && other.ID != basketID {
			return nil, domainerrors.Conflict("menu item already in basket")
		}
	}

	basket.MenuItemID = menuItemID
	basket.Quantity = input.Quantity
	if err := u.basketRepo.Update(ctx, basket); err != nil {
		return nil, err
	}
	return u.basketRepo.GetByID(ctx, basketID)
}

// PatchQuantity updates only the quantity of a basket row
func (u *BasketUsecase) PatchQuantity(ctx context.Context, userID, basketID uuid.UUID, quantity int) (*entities.Basket, error) {
	if !entities.ValidBasketQuantity(quantity) {
		return nil, domainerrors.BadRequest("quantity must be between 1 and 99")
	}

	basket, err := u.basketRepo.GetByID(ctx, basketID)
	if err != nil {
		return nil, err
	}
	if basket.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	basket.Quantity = quantity
	if err := u.basketRepo.Update(ctx, basket); err != nil {
		return nil, err
	}
	return u.basketRepo.GetByID(ctx, basketID)
}

// Remove deletes one basket row owned by the caller
func (u *BasketUsecase) Remove(ctx context.Context, userID, basketID uuid.UUID) error {
	basket, err := u.basketRepo.GetByID(ctx, basketID)
	if err != nil {
		return err
	}
	if basket.UserID != userID {
		return domainerrors.ErrForbidden
	}
	return u.basketRepo.Delete(ctx, basketID)
}

// Clear empties the caller's basket. Clearing an empty basket succeeds.
func (u *BasketUsecase) Clear(ctx context.Context, userID uuid.UUID) error {
	return u.basketRepo.DeleteByUser(ctx, userID)
}

// ListWithTotal returns the caller's basket rows plus the running total
func (u *BasketUsecase) ListWithTotal(ctx context.Context, userID uuid.UUID) (*entities.BasketListResponse, error) {
	baskets, err := u.basketRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, b := range baskets {
		total += b.Subtotal()
	}
	return &entities.BasketListResponse{
		Baskets:     baskets,
		TotalAmount: total,
	}, nil
}
