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

// BranchRepository implements branch data operations
type BranchRepository struct {
	db *gorm.DB
}

// NewBranchRepository creates a new branch repository
func NewBranchRepository(db *gorm.DB) *BranchRepository {
	return &BranchRepository{db: db}
}

// Create creates a new branch
func (r *BranchRepository) Create(ctx context.Context, branch *entities.Branch) error {
	if branch.ID == uuid.Nil {
		branch.ID = uuid.New()
	}
	branch.CreatedAt = time.Now()
	branch.UpdatedAt = branch.CreatedAt
	branch.IsActive = true

	m := branchToModel(branch)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// GetByID gets an active branch by ID
func (r *BranchRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Branch, error) {
	var m models.Branch
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return branchToEntity(&m), nil
}

// GetByUsername gets an active branch by username
func (r *BranchRepository) GetByUsername(ctx context.Context, username string) (*entities.Branch, error) {
	var m models.Branch
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("username = ? AND is_active = ?", username, true).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return branchToEntity(&m), nil
}

// Update updates mutable branch fields
func (r *BranchRepository) Update(ctx context.Context, branch *entities.Branch) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Branch{}).
		Where("id = ? AND is_active = ?", branch.ID, true).
		Updates(map[string]interface{}{
			"username":   branch.Username,
			"phone":      branch.Phone.Ptr(),
			"url":        branch.URL.Ptr(),
			"latitude":   branch.Latitude,
			"longitude":  branch.Longitude,
			"rating":     branch.Rating,
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

// UpdateOwner reassigns branch ownership
func (r *BranchRepository) UpdateOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Branch{}).
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

// SoftDelete deactivates a branch
func (r *BranchRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Branch{}).
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

// List returns active branches, optionally scoped to a company
func (r *BranchRepository) List(ctx context.Context, companyID *uuid.UUID, skip, limit int) ([]*entities.Branch, int, error) {
	db := GetDB(ctx, r.db)

	base := func() *gorm.DB {
		q := db.WithContext(ctx).Model(&models.Branch{}).Where("is_active = ?", true)
		if companyID != nil {
			q = q.Where("company_id = ?", *companyID)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var ms []models.Branch
	if err := base().
		Order("created_at DESC").
		Limit(limit).Offset(skip).
		Find(&ms).Error; err != nil {
		return nil, 0, translateError(err)
	}

	branches := make([]*entities.Branch, 0, len(ms))
	for i := range ms {
		branches = append(branches, branchToEntity(&ms[i]))
	}
	return branches, int(total), nil
}

func branchToModel(b *entities.Branch) *models.Branch {
	return &models.Branch{
		ID:        b.ID,
		Username:  b.Username,
		Phone:     b.Phone.Ptr(),
		URL:       b.URL.Ptr(),
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
		Rating:    b.Rating,
		CompanyID: b.CompanyID,
		OwnerID:   b.OwnerID,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func branchToEntity(m *models.Branch) *entities.Branch {
	return &entities.Branch{
		ID:        m.ID,
		Username:  m.Username,
		Phone:     null.StringFromPtr(m.Phone),
		URL:       null.StringFromPtr(m.URL),
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		Rating:    m.Rating,
		CompanyID: m.CompanyID,
		OwnerID:   m.OwnerID,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
