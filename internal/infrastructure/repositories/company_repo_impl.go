package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"orderdesk.backend/internal/domain/entities"
	domainerrors "orderdesk.backend/internal/domain/errors"
	"orderdesk.backend/internal/infrastructure/models"
)

// CompanyRepository implements company data operations
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(ctx context.Context, company *entities.Company) error {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	company.CreatedAt = time.Now()
	company.UpdatedAt = company.CreatedAt
	company.IsActive = true

	m := companyToModel(company)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// GetByID gets an active company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Company, error) {
	var m models.Company
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return companyToEntity(&m), nil
}

// GetByName gets an active company by name
func (r *CompanyRepository) GetByName(ctx context.Context, name string) (*entities.Company, error) {
	var m models.Company
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("name = ? AND is_active = ?", name, true).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return companyToEntity(&m), nil
}

// Update updates mutable company fields
func (r *CompanyRepository) Update(ctx context.Context, company *entities.Company) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Company{}).
		Where("id = ? AND is_active = ?", company.ID, true).
		Updates(map[string]interface{}{
			"name":       company.Name,
			"phone":      company.Phone.Ptr(),
			"email":      company.Email.Ptr(),
			"logo":       company.Logo.Ptr(),
			"address":    company.Address.Ptr(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateOwner reassigns company ownership
func (r *CompanyRepository) UpdateOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Company{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{
			"owner_id":   ownerID,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete deactivates a company
func (r *CompanyRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Company{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List returns active companies with pagination plus total count
func (r *CompanyRepository) List(ctx context.Context, skip, limit int) ([]*entities.Company, int, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.Company{}).
		Where("is_active = ?", true).
		Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var ms []models.Company
	if err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).Offset(skip).
		Find(&ms).Error; err != nil {
		return nil, 0, translateError(err)
	}

	companies := make([]*entities.Company, 0, len(ms))
	for i := range ms {
		companies = append(companies, companyToEntity(&ms[i]))
	}
	return companies, int(total), nil
}

func companyToModel(c *entities.Company) *models.Company {
	return &models.Company{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone.Ptr(),
		Email:     c.Email.Ptr(),
		Logo:      c.Logo.Ptr(),
		Address:   c.Address.Ptr(),
		OwnerID:   c.OwnerID,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func companyToEntity(m *models.Company) *entities.Company {
	return &entities.Company{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     null.StringFromPtr(m.Phone),
		Email:     null.StringFromPtr(m.Email),
		Logo:      null.StringFromPtr(m.Logo),
		Address:   null.StringFromPtr(m.Address),
		OwnerID:   m.OwnerID,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
