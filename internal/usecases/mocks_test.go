package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"orderdesk.backend/internal/domain/entities"
	"orderdesk.backend/internal/infrastructure/payments"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

func (m *MockUnitOfWork) WithLock(ctx context.Context) context.Context {
	m.Called(ctx)
	return ctx
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entities.UserRole) error {
	return m.Called(ctx, id, role).Error(0)
}

func (m *MockUserRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, skip, limit int) ([]*entities.User, int, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Int(1), args.Error(2)
}

func (m *MockUserRepository) ListUnverifiedBefore(ctx context.Context, cutoff time.Time) ([]*entities.User, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) CountStats(ctx context.Context, cutoff time.Time) (int, int, int, int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Int(1), args.Int(2), args.Int(3), args.Error(4)
}

// Mock VerificationCodeRepository
type MockVerificationCodeRepository struct {
	mock.Mock
}

func (m *MockVerificationCodeRepository) Create(ctx context.Context, code *entities.VerificationCode) error {
	return m.Called(ctx, code).Error(0)
}

func (m *MockVerificationCodeRepository) GetActiveByEmail(ctx context.Context, email, code string) (*entities.VerificationCode, error) {
	args := m.Called(ctx, email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.VerificationCode), args.Error(1)
}

func (m *MockVerificationCodeRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVerificationCodeRepository) DeleteForContact(ctx context.Context, email, phone string) (int, error) {
	args := m.Called(ctx, email, phone)
	return args.Int(0), args.Error(1)
}

func (m *MockVerificationCodeRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

func (m *MockVerificationCodeRepository) CountStats(ctx context.Context, now time.Time) (int, int, int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Int(1), args.Int(2), args.Error(3)
}

// Mock CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *entities.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *MockCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Company), args.Error(1)
}

func (m *MockCompanyRepository) GetByName(ctx context.Context, name string) (*entities.Company, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Company), args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, company *entities.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *MockCompanyRepository) UpdateOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

func (m *MockCompanyRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCompanyRepository) List(ctx context.Context, skip, limit int) ([]*entities.Company, int, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Company), args.Int(1), args.Error(2)
}

// Mock BranchRepository
type MockBranchRepository struct {
	mock.Mock
}

func (m *MockBranchRepository) Create(ctx context.Context, branch *entities.Branch) error {
	return m.Called(ctx, branch).Error(0)
}

func (m *MockBranchRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Branch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Branch), args.Error(1)
}

func (m *MockBranchRepository) GetByUsername(ctx context.Context, username string) (*entities.Branch, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Branch), args.Error(1)
}

func (m *MockBranchRepository) Update(ctx context.Context, branch *entities.Branch) error {
	return m.Called(ctx, branch).Error(0)
}

func (m *MockBranchRepository) UpdateOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

func (m *MockBranchRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBranchRepository) List(ctx context.Context, companyID *uuid.UUID, skip, limit int) ([]*entities.Branch, int, error) {
	args := m.Called(ctx, companyID, skip, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Branch), args.Int(1), args.Error(2)
}

// Mock MenuRepository
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) Create(ctx context.Context, menu *entities.Menu) error {
	return m.Called(ctx, menu).Error(0)
}

func (m *MockMenuRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Menu), args.Error(1)
}

func (m *MockMenuRepository) GetByBranchAndName(ctx context.Context, branchID uuid.UUID, name string) (*entities.Menu, error) {
	args := m.Called(ctx, branchID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Menu), args.Error(1)
}

func (m *MockMenuRepository) Update(ctx context.Context, menu *entities.Menu) error {
	return m.Called(ctx, menu).Error(0)
}

func (m *MockMenuRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMenuRepository) ListByBranch(ctx context.Context, branchID uuid.UUID, skip, limit int) ([]*entities.Menu, int, error) {
	args := m.Called(ctx, branchID, skip, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Menu), args.Int(1), args.Error(2)
}

// Mock MenuItemRepository
type MockMenuItemRepository struct {
	mock.Mock
}

func (m *MockMenuItemRepository) Create(ctx context.Context, item *entities.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) Update(ctx context.Context, item *entities.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuItemRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMenuItemRepository) ListByMenu(ctx context.Context, menuID uuid.UUID, skip, limit int) ([]*entities.MenuItem, int, error) {
	args := m.Called(ctx, menuID, skip, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.MenuItem), args.Int(1), args.Error(2)
}

// Mock BasketRepository
type MockBasketRepository struct {
	mock.Mock
}

func (m *MockBasketRepository) Create(ctx context.Context, basket *entities.Basket) error {
	return m.Called(ctx, basket).Error(0)
}

func (m *MockBasketRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Basket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Basket), args.Error(1)
}

func (m *MockBasketRepository) GetByUserAndMenuItem(ctx context.Context, userID, menuItemID uuid.UUID) (*entities.Basket, error) {
	args := m.Called(ctx, userID, menuItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Basket), args.Error(1)
}

func (m *MockBasketRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Basket, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Basket), args.Error(1)
}

func (m *MockBasketRepository) Update(ctx context.Context, basket *entities.Basket) error {
	return m.Called(ctx, basket).Error(0)
}

func (m *MockBasketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBasketRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// Mock OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entities.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, order *entities.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context, filter entities.OrderFilter, skip, limit int) ([]*entities.Order, int, error) {
	args := m.Called(ctx, filter, skip, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Order), args.Int(1), args.Error(2)
}

// Mock PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entities.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByIntentID(ctx context.Context, intentID string) (*entities.Payment, error) {
	args := m.Called(ctx, intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Update(ctx context.Context, payment *entities.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

// Mock payment Provider
type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) CreateIntent(ctx context.Context, req payments.IntentRequest) (*payments.Intent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.Intent), args.Error(1)
}
