package repositories

import (
	"context"

	"github.com/google/uuid"
	"orderdesk.backend/internal/domain/entities"
)

// OrderRepository defines order data operations. Create persists the
// order together with its items.
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, order *entities.Order) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter entities.OrderFilter, skip, limit int) ([]*entities.Order, int, error)
}

// PaymentRepository defines payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entities.Payment) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entities.Payment, error)
	GetByIntentID(ctx context.Context, intentID string) (*entities.Payment, error)
	Update(ctx context.Context, payment *entities.Payment) error
}
