package repositories

import (
	"context"

	"github.com/google/uuid"
	"orderdesk.backend/internal/domain/entities"
)

// BasketRepository defines basket data operations. Basket rows are
// hard-deleted, never soft-deleted.
type BasketRepository interface {
	Create(ctx context.Context, basket *entities.Basket) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Basket, error)
	GetByUserAndMenuItem(ctx context.Context, userID, menuItemID uuid.UUID) (*entities.Basket, error)
	// ListByUser returns the user's basket rows with menu items joined,
	// newest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Basket, error)
	Update(ctx context.Context, basket *entities.Basket) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
