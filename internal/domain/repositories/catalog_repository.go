package repositories

import (
	"context"

	"github.com/google/uuid"
	"orderdesk.backend/internal/domain/entities"
)

// CompanyRepository defines company data operations
type CompanyRepository interface {
	Create(ctx context.Context, company *entities.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Company, error)
	GetByName(ctx context.Context, name string) (*entities.Company, error)
	Update(ctx context.Context, company *entities.Company) error
	UpdateOwner(ctx context.Context, id, ownerID uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, skip, limit int) ([]*entities.Company, int, error)
}

// BranchRepository defines branch data operations
type BranchRepository interface {
	Create(ctx context.Context, branch *entities.Branch) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Branch, error)
	GetByUsername(ctx context.Context, username string) (*entities.Branch, error)
	Update(ctx context.Context, branch *entities.Branch) error
	UpdateOwner(ctx context.Context, id, ownerID uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, companyID *uuid.UUID, skip, limit int) ([]*entities.Branch, int, error)
}

// MenuRepository defines menu data operations
type MenuRepository interface {
	Create(ctx context.Context, menu *entities.Menu) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Menu, error)
	GetByBranchAndName(ctx context.Context, branchID uuid.UUID, name string) (*entities.Menu, error)
	Update(ctx context.Context, menu *entities.Menu) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	ListByBranch(ctx context.Context, branchID uuid.UUID, skip, limit int) ([]*entities.Menu, int, error)
}

// MenuItemRepository defines menu item data operations
type MenuItemRepository interface {
	Create(ctx context.Context, item *entities.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.MenuItem, error)
	Update(ctx context.Context, item *entities.MenuItem) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	ListByMenu(ctx context.Context, menuID uuid.UUID, skip, limit int) ([]*entities.MenuItem, int, error)
}
