package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"orderdesk.backend/internal/domain/entities"
	domainerrors "orderdesk.backend/internal/domain/errors"
	"orderdesk.backend/internal/infrastructure/payments"
	"orderdesk.backend/internal/interfaces/http/middleware"
)

func mustUnmarshal(t *testing.T, data []byte, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("unmarshal %s: %v", data, err)
	}
}

// withAuth injects the auth context the middleware would normally set.
func withAuth(userID uuid.UUID, role entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.UserEmailKey, "stub@example.com")
		c.Set(middleware.UserRoleKey, role)
		c.Next()
	}
}

type userRepoStub struct {
	users map[uuid.UUID]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: map[uuid.UUID]*entities.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.IsActive = true
	s.users[user.ID] = user
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := s.users[id]
	if !ok || !u.IsActive {
		return nil, domainerrors.ErrNotFound
	}
	return u, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range s.users {
		if u.Email == email && u.IsActive {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, u := range s.users {
		if u.Username == username && u.IsActive {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) Update(_ context.Context, user *entities.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *userRepoStub) UpdateRole(_ context.Context, id uuid.UUID, role entities.UserRole) error {
	u, ok := s.users[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	u.Role = role
	return nil
}

func (s *userRepoStub) MarkVerified(_ context.Context, id uuid.UUID) error {
	u, ok := s.users[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	u.IsVerified = true
	return nil
}

func (s *userRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	u, ok := s.users[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	u.IsActive = false
	return nil
}

func (s *userRepoStub) List(_ context.Context, skip, limit int) ([]*entities.User, int, error) {
	out := make([]*entities.User, 0, len(s.users))
	for _, u := range s.users {
		if u.IsActive {
			out = append(out, u)
		}
	}
	return out, len(out), nil
}

func (s *userRepoStub) ListUnverifiedBefore(_ context.Context, cutoff time.Time) ([]*entities.User, error) {
	var out []*entities.User
	for _, u := range s.users {
		if u.IsActive && !u.IsVerified && u.CreatedAt.Before(cutoff) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *userRepoStub) CountStats(_ context.Context, cutoff time.Time) (int, int, int, int, error) {
	var total, verified, unverified, unverifiedOld int
	for _, u := range s.users {
		if !u.IsActive {
			continue
		}
		total++
		if u.IsVerified {
			verified++
			continue
		}
		unverified++
		if u.CreatedAt.Before(cutoff) {
			unverifiedOld++
		}
	}
	return total, verified, unverified, unverifiedOld, nil
}

type codeRepoStub struct {
	codes []*entities.VerificationCode
}

func (s *codeRepoStub) Create(_ context.Context, code *entities.VerificationCode) error {
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	s.codes = append(s.codes, code)
	return nil
}

func (s *codeRepoStub) GetActiveByEmail(_ context.Context, email, code string) (*entities.VerificationCode, error) {
	for _, vc := range s.codes {
		if vc.Email.String == email && vc.Code == code && !vc.IsUsed && vc.ExpiresAt.After(time.Now()) {
			return vc, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *codeRepoStub) MarkUsed(_ context.Context, id uuid.UUID) error {
	for _, vc := range s.codes {
		if vc.ID == id {
			vc.IsUsed = true
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

func (s *codeRepoStub) DeleteForContact(_ context.Context, email, phone string) (int, error) {
	kept := s.codes[:0]
	removed := 0
	for _, vc := range s.codes {
		if vc.Email.String == email || (phone != "" && vc.Phone.String == phone) {
			removed++
			continue
		}
		kept = append(kept, vc)
	}
	s.codes = kept
	return removed, nil
}

func (s *codeRepoStub) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	kept := s.codes[:0]
	removed := 0
	for _, vc := range s.codes {
		if vc.ExpiresAt.Before(now) {
			removed++
			continue
		}
		kept = append(kept, vc)
	}
	s.codes = kept
	return removed, nil
}

func (s *codeRepoStub) CountStats(_ context.Context, now time.Time) (int, int, int, error) {
	var total, expired, active int
	for _, vc := range s.codes {
		total++
		if vc.ExpiresAt.Before(now) {
			expired++
		} else if !vc.IsUsed {
			active++
		}
	}
	return total, expired, active, nil
}

type companyRepoStub struct {
	companies map[uuid.UUID]*entities.Company
}

func newCompanyRepoStub() *companyRepoStub {
	return &companyRepoStub{companies: map[uuid.UUID]*entities.Company{}}
}

func (s *companyRepoStub) Create(_ context.Context, company *entities.Company) error {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	company.IsActive = true
	s.companies[company.ID] = company
	return nil
}

func (s *companyRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Company, error) {
	co, ok := s.companies[id]
	if !ok || !co.IsActive {
		return nil, domainerrors.ErrNotFound
	}
	return co, nil
}

func (s *companyRepoStub) GetByName(_ context.Context, name string) (*entities.Company, error) {
	for _, co := range s.companies {
		if co.Name == name && co.IsActive {
			return co, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *companyRepoStub) Update(_ context.Context, company *entities.Company) error {
	s.companies[company.ID] = company
	return nil
}

func (s *companyRepoStub) UpdateOwner(_ context.Context, id, ownerID uuid.UUID) error {
	co, ok := s.companies[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	co.OwnerID = &ownerID
	return nil
}

func (s *companyRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	co, ok := s.companies[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	co.IsActive = false
	return nil
}

func (s *companyRepoStub) List(_ context.Context, skip, limit int) ([]*entities.Company, int, error) {
	out := make([]*entities.Company, 0, len(s.companies))
	for _, co := range s.companies {
		if co.IsActive {
			out = append(out, co)
		}
	}
	return out, len(out), nil
}

type branchRepoStub struct {
	branches map[uuid.UUID]*entities.Branch
}

func newBranchRepoStub() *branchRepoStub {
	return &branchRepoStub{branches: map[uuid.UUID]*entities.Branch{}}
}

func (s *branchRepoStub) Create(_ context.Context, branch *entities.Branch) error {
	if branch.ID == uuid.Nil {
		branch.ID = uuid.New()
	}
	branch.IsActive = true
	s.branches[branch.ID] = branch
	return nil
}

func (s *branchRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Branch, error) {
	b, ok := s.branches[id]
	if !ok || !b.IsActive {
		return nil, domainerrors.ErrNotFound
	}
	return b, nil
}

func (s *branchRepoStub) GetByUsername(_ context.Context, username string) (*entities.Branch, error) {
	for _, b := range s.branches {
		if b.Username == username && b.IsActive {
			return b, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *branchRepoStub) Update(_ context.Context, branch *entities.Branch) error {
	s.branches[branch.ID] = branch
	return nil
}

func (s *branchRepoStub) UpdateOwner(_ context.Context, id, ownerID uuid.UUID) error {
	b, ok := s.branches[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	b.OwnerID = &ownerID
	return nil
}

func (s *branchRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	b, ok := s.branches[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	b.IsActive = false
	return nil
}

func (s *branchRepoStub) List(_ context.Context, companyID *uuid.UUID, skip, limit int) ([]*entities.Branch, int, error) {
	out := make([]*entities.Branch, 0, len(s.branches))
	for _, b := range s.branches {
		if !b.IsActive {
			continue
		}
		if companyID != nil && b.CompanyID != *companyID {
			continue
		}
		out = append(out, b)
	}
	return out, len(out), nil
}

type menuRepoStub struct {
	menus map[uuid.UUID]*entities.Menu
}

func newMenuRepoStub() *menuRepoStub {
	return &menuRepoStub{menus: map[uuid.UUID]*entities.Menu{}}
}

func (s *menuRepoStub) Create(_ context.Context, menu *entities.Menu) error {
	if menu.ID == uuid.Nil {
		menu.ID = uuid.New()
	}
	menu.IsActive = true
	s.menus[menu.ID] = menu
	return nil
}

func (s *menuRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Menu, error) {
	m, ok := s.menus[id]
	if !ok || !m.IsActive {
		return nil, domainerrors.ErrNotFound
	}
	return m, nil
}

func (s *menuRepoStub) GetByBranchAndName(_ context.Context, branchID uuid.UUID, name string) (*entities.Menu, error) {
	for _, m := range s.menus {
		if m.BranchID == branchID && strings.EqualFold(m.Name, name) && m.IsActive {
			return m, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *menuRepoStub) Update(_ context.Context, menu *entities.Menu) error {
	s.menus[menu.ID] = menu
	return nil
}

func (s *menuRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	m, ok := s.menus[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	m.IsActive = false
	return nil
}

func (s *menuRepoStub) ListByBranch(_ context.Context, branchID uuid.UUID, skip, limit int) ([]*entities.Menu, int, error) {
	out := make([]*entities.Menu, 0, len(s.menus))
	for _, m := range s.menus {
		if m.IsActive && m.BranchID == branchID {
			out = append(out, m)
		}
	}
	return out, len(out), nil
}

type itemRepoStub struct {
	items map[uuid.UUID]*entities.MenuItem
}

func newItemRepoStub() *itemRepoStub {
	return &itemRepoStub{items: map[uuid.UUID]*entities.MenuItem{}}
}

func (s *itemRepoStub) Create(_ context.Context, item *entities.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.IsActive = true
	s.items[item.ID] = item
	return nil
}

func (s *itemRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.MenuItem, error) {
	it, ok := s.items[id]
	if !ok || !it.IsActive {
		return nil, domainerrors.ErrNotFound
	}
	return it, nil
}

func (s *itemRepoStub) Update(_ context.Context, item *entities.MenuItem) error {
	s.items[item.ID] = item
	return nil
}

func (s *itemRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	it, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	it.IsActive = false
	return nil
}

func (s *itemRepoStub) ListByMenu(_ context.Context, menuID uuid.UUID, skip, limit int) ([]*entities.MenuItem, int, error) {
	out := make([]*entities.MenuItem, 0, len(s.items))
	for _, it := range s.items {
		if it.IsActive && it.MenuID == menuID {
			out = append(out, it)
		}
	}
	return out, len(out), nil
}

// basketRepoStub joins menu items from the item stub the way the gorm
// repository preloads them.
type basketRepoStub struct {
	rows  map[uuid.UUID]*entities.Basket
	items *itemRepoStub
}

func newBasketRepoStub(items *itemRepoStub) *basketRepoStub {
	return &basketRepoStub{rows: map[uuid.UUID]*entities.Basket{}, items: items}
}

func (s *basketRepoStub) join(b *entities.Basket) *entities.Basket {
	if it, ok := s.items.items[b.MenuItemID]; ok {
		b.MenuItem = it
	}
	return b
}

func (s *basketRepoStub) Create(_ context.Context, basket *entities.Basket) error {
	if basket.ID == uuid.Nil {
		basket.ID = uuid.New()
	}
	s.rows[basket.ID] = basket
	return nil
}

func (s *basketRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Basket, error) {
	b, ok := s.rows[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return s.join(b), nil
}

func (s *basketRepoStub) GetByUserAndMenuItem(_ context.Context, userID, menuItemID uuid.UUID) (*entities.Basket, error) {
	for _, b := range s.rows {
		if b.UserID == userID && b.MenuItemID == menuItemID {
			return s.join(b), nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *basketRepoStub) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.Basket, error) {
	var out []*entities.Basket
	for _, b := range s.rows {
		if b.UserID == userID {
			out = append(out, s.join(b))
		}
	}
	return out, nil
}

func (s *basketRepoStub) Update(_ context.Context, basket *entities.Basket) error {
	s.rows[basket.ID] = basket
	return nil
}

func (s *basketRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.rows, id)
	return nil
}

func (s *basketRepoStub) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	for id, b := range s.rows {
		if b.UserID == userID {
			delete(s.rows, id)
		}
	}
	return nil
}

type orderRepoStub struct {
	orders map[uuid.UUID]*entities.Order
}

func newOrderRepoStub() *orderRepoStub {
	return &orderRepoStub{orders: map[uuid.UUID]*entities.Order{}}
}

func (s *orderRepoStub) Create(_ context.Context, order *entities.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.IsActive = true
	s.orders[order.ID] = order
	return nil
}

func (s *orderRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Order, error) {
	o, ok := s.orders[id]
	if !ok || !o.IsActive {
		return nil, domainerrors.ErrNotFound
	}
	return o, nil
}

func (s *orderRepoStub) ExistsByCode(_ context.Context, code string) (bool, error) {
	for _, o := range s.orders {
		if o.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *orderRepoStub) Update(_ context.Context, order *entities.Order) error {
	s.orders[order.ID] = order
	return nil
}

func (s *orderRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	o, ok := s.orders[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	o.IsActive = false
	return nil
}

func (s *orderRepoStub) List(_ context.Context, filter entities.OrderFilter, skip, limit int) ([]*entities.Order, int, error) {
	var out []*entities.Order
	for _, o := range s.orders {
		if !o.IsActive {
			continue
		}
		if filter.UserID != nil && o.UserID != *filter.UserID {
			continue
		}
		if filter.BranchID != nil && o.BranchID != *filter.BranchID {
			continue
		}
		out = append(out, o)
	}
	return out, len(out), nil
}

type paymentRepoStub struct {
	payments map[uuid.UUID]*entities.Payment
}

func newPaymentRepoStub() *paymentRepoStub {
	return &paymentRepoStub{payments: map[uuid.UUID]*entities.Payment{}}
}

func (s *paymentRepoStub) Create(_ context.Context, payment *entities.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	s.payments[payment.ID] = payment
	return nil
}

func (s *paymentRepoStub) GetByOrderID(_ context.Context, orderID uuid.UUID) (*entities.Payment, error) {
	for _, p := range s.payments {
		if p.OrderID == orderID {
			return p, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *paymentRepoStub) GetByIntentID(_ context.Context, intentID string) (*entities.Payment, error) {
	for _, p := range s.payments {
		if p.IntentID == intentID {
			return p, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *paymentRepoStub) Update(_ context.Context, payment *entities.Payment) error {
	s.payments[payment.ID] = payment
	return nil
}

// uowStub runs the unit inline without a real transaction.
type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (uowStub) WithLock(ctx context.Context) context.Context { return ctx }

type providerStub struct {
	calls int
}

func (s *providerStub) CreateIntent(_ context.Context, req payments.IntentRequest) (*payments.Intent, error) {
	s.calls++
	return &payments.Intent{
		ID:           fmt.Sprintf("pi_stub_%d", s.calls),
		ClientSecret: fmt.Sprintf("pi_stub_%d_secret", s.calls),
		Status:       "requires_payment_method",
	}, nil
}
