package usecases

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"orderdesk.backend/internal/domain/entities"
	domainerrors "orderdesk.backend/internal/domain/errors"
	"orderdesk.backend/internal/domain/repositories"
	"orderdesk.backend/pkg/utils"
)

// orderCodeAttempts bounds collision retries when generating a code
const orderCodeAttempts = 10

// OrderUsecase handles the order engine business logic
type OrderUsecase struct {
	orderRepo  repositories.OrderRepository
	basketRepo repositories.BasketRepository
	branchRepo repositories.BranchRepository
	uow        repositories.UnitOfWork
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(
	orderRepo repositories.OrderRepository,
	basketRepo repositories.BasketRepository,
	branchRepo repositories.BranchRepository,
	uow repositories.UnitOfWork,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:  orderRepo,
		basketRepo: basketRepo,
		branchRepo: branchRepo,
		uow:        uow,
	}
}

// privilegedRoles may act on orders they do not own
var privilegedRoles = map[entities.UserRole]bool{
	entities.UserRoleAdmin:   true,
	entities.UserRoleCompany: true,
	entities.UserRoleBranch:  true,
}

// CreateOrder converts the caller's basket into an order. The whole
// conversion runs in one transaction: unit prices are snapshotted,
// the order and its items are inserted, and the basket rows are
// hard-deleted. Any failure rolls everything back.
func (u *OrderUsecase) CreateOrder(ctx context.Context, userID uuid.UUID, input *entities.CreateOrderInput) (*entities.Order, error) {
	branchID, err := uuid.Parse(input.BranchID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid branch id")
	}
	if _, err := u.branchRepo.GetByID(ctx, branchID); err != nil {
		return nil, err
	}

	var order *entities.Order
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		baskets, err := u.basketRepo.ListByUser(u.uow.WithLock(txCtx), userID)
		if err != nil {
			return err
		}
		if len(baskets) == 0 {
			return domainerrors.ErrEmptyBasket
		}

		var total int64
		items := make([]*entities.OrderItem, 0, len(baskets))
		for _, b := range baskets {
			if b.MenuItem == nil {
				return domainerrors.NotFound("menu item no longer exists")
			}
			if !b.MenuItem.IsAvailable || !b.MenuItem.IsActive {
				return domainerrors.BadRequest(fmt.Sprintf("menu item %q is not available", b.MenuItem.Name))
			}
			lineTotal := b.MenuItem.Price * int64(b.Quantity)
			items = append(items, &entities.OrderItem{
				MenuItemID: b.MenuItemID,
				Quantity:   b.Quantity,
				UnitPrice:  b.MenuItem.Price,
				TotalPrice: lineTotal,
			})
			total += lineTotal
		}

		code, err := u.generateOrderCode(txCtx)
		if err != nil {
			return err
		}

		order = &entities.Order{
			Code:        code,
			UserID:      userID,
			BranchID:    branchID,
			Status:      entities.OrderStatusPending,
			TotalAmount: total,
			Items:       items,
		}
		if input.SpecialInstructions != "" {
			order.SpecialInstructions = null.StringFrom(input.SpecialInstructions)
		}
		if input.DeliveryAddress != "" {
			order.DeliveryAddress = null.StringFrom(input.DeliveryAddress)
		}

		if err := u.orderRepo.Create(txCtx, order); err != nil {
			return err
		}
		return u.basketRepo.DeleteByUser(txCtx, userID)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// generateOrderCode produces an "order#NNNN" code, retrying on
// collision against existing orders
func (u *OrderUsecase) generateOrderCode(ctx context.Context) (string, error) {
	for i := 0; i < orderCodeAttempts; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10000))
		if err != nil {
			return "", err
		}
		code := fmt.Sprintf("order#%04d", n.Int64())

		exists, err := u.orderRepo.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", domainerrors.InternalError(fmt.Errorf("could not allocate an order code after %d attempts", orderCodeAttempts))
}

// GetOrder returns an order, enforcing ownership for plain users
func (u *OrderUsecase) GetOrder(ctx context.Context, callerID uuid.UUID, callerRole entities.UserRole, orderID uuid.UUID) (*entities.Order, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != callerID && !privilegedRoles[callerRole] {
		return nil, domainerrors.ErrForbidden
	}
	return order, nil
}

// UpdateOrder applies a status transition and/or field updates. The
// transition is validated against the state machine before anything is
// written; all changes commit together.
func (u *OrderUsecase) UpdateOrder(ctx context.Context, callerID uuid.UUID, callerRole entities.UserRole, orderID uuid.UUID, input *entities.UpdateOrderInput) (*entities.Order, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != callerID && !privilegedRoles[callerRole] {
		return nil, domainerrors.ErrForbidden
	}

	if input.Status != nil {
		next := *input.Status
		if !entities.ValidOrderStatus(next) {
			return nil, domainerrors.BadRequest("unknown order status")
		}
		if !entities.CanTransition(order.Status, next) {
			return nil, domainerrors.InvalidTransition(
				fmt.Sprintf("cannot transition order from %s to %s", order.Status, next))
		}
		order.Status = next
	}
	if input.SpecialInstructions != nil {
		order.SpecialInstructions = null.StringFrom(*input.SpecialInstructions)
	}
	if input.DeliveryAddress != nil {
		order.DeliveryAddress = null.StringFrom(*input.DeliveryAddress)
	}

	if err := u.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return u.orderRepo.GetByID(ctx, orderID)
}

// DeleteOrder soft-deletes an order. Only orders in PENDING, CANCELLED
// or COMPLETED may be deleted.
func (u *OrderUsecase) DeleteOrder(ctx context.Context, callerID uuid.UUID, callerRole entities.UserRole, orderID uuid.UUID) error {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.UserID != callerID && !privilegedRoles[callerRole] {
		return domainerrors.ErrForbidden
	}
	if !entities.Deletable(order.Status) {
		return domainerrors.NewAppError(409,
			fmt.Sprintf("orders in status %s cannot be deleted", order.Status),
			domainerrors.ErrInvalidState)
	}
	return u.orderRepo.SoftDelete(ctx, orderID)
}

// ListOrders returns orders matching the filter. Plain users only see
// their own orders regardless of the requested filter.
func (u *OrderUsecase) ListOrders(ctx context.Context, callerID uuid.UUID, callerRole entities.UserRole, filter entities.OrderFilter, skip, limit int) (*entities.OrderListResponse, error) {
	if !privilegedRoles[callerRole] {
		filter.UserID = &callerID
	}

	p := utils.GetPaginationParams(skip, limit)
	orders, total, err := u.orderRepo.List(ctx, filter, p.Skip, p.Limit)
	if err != nil {
		return nil, err
	}
	return &entities.OrderListResponse{
		Orders:     orders,
		TotalCount: total,
		Skip:       p.Skip,
		Limit:      p.Limit,
	}, nil
}
