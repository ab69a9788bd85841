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

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	user.IsActive = true

	m := userToModel(user)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// GetByID gets an active user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetByEmail gets an active user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.getOne(ctx, "email = ?", email)
}

// GetByUsername gets an active user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.getOne(ctx, "username = ?", username)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg interface{}) (*entities.User, error) {
	var m models.User
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where(query, arg).Where("is_active = ?", true).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return userToEntity(&m), nil
}

// Update updates mutable user fields
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND is_active = ?", user.ID, true).
		Updates(map[string]interface{}{
			"username":   user.Username,
			"phone":      user.Phone.Ptr(),
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

// UpdateRole updates a user's role
func (r *UserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entities.UserRole) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{
			"role":       string(role),
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

// MarkVerified flags a user as verified
func (r *UserRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{
			"is_verified": true,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete deactivates a user
func (r *UserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.User{}).
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

// List returns active users with pagination plus total count
func (r *UserRepository) List(ctx context.Context, skip, limit int) ([]*entities.User, int, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.User{}).
		Where("is_active = ?", true).
		Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var ms []models.User
	if err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).Offset(skip).
		Find(&ms).Error; err != nil {
		return nil, 0, translateError(err)
	}

	users := make([]*entities.User, 0, len(ms))
	for i := range ms {
		users = append(users, userToEntity(&ms[i]))
	}
	return users, int(total), nil
}

// ListUnverifiedBefore returns active unverified users created before the cutoff
func (r *UserRepository) ListUnverifiedBefore(ctx context.Context, cutoff time.Time) ([]*entities.User, error) {
	db := GetDB(ctx, r.db)
	var ms []models.User
	if err := db.WithContext(ctx).
		Where("is_active = ? AND is_verified = ? AND created_at < ?", true, false, cutoff).
		Find(&ms).Error; err != nil {
		return nil, translateError(err)
	}
	users := make([]*entities.User, 0, len(ms))
	for i := range ms {
		users = append(users, userToEntity(&ms[i]))
	}
	return users, nil
}

// CountStats returns user counts used by cleanup reporting
func (r *UserRepository) CountStats(ctx context.Context, cutoff time.Time) (total, verified, unverified, unverifiedOld int, err error) {
	db := GetDB(ctx, r.db)
	counts := []struct {
		dest  *int
		where func(*gorm.DB) *gorm.DB
	}{
		{&total, func(q *gorm.DB) *gorm.DB { return q }},
		{&verified, func(q *gorm.DB) *gorm.DB { return q.Where("is_verified = ?", true) }},
		{&unverified, func(q *gorm.DB) *gorm.DB { return q.Where("is_verified = ?", false) }},
		{&unverifiedOld, func(q *gorm.DB) *gorm.DB {
			return q.Where("is_verified = ? AND created_at < ?", false, cutoff)
		}},
	}
	for _, c := range counts {
		var n int64
		q := db.WithContext(ctx).Model(&models.User{}).Where("is_active = ?", true)
		if err = c.where(q).Count(&n).Error; err != nil {
			return 0, 0, 0, 0, translateError(err)
		}
		*c.dest = int(n)
	}
	return total, verified, unverified, unverifiedOld, nil
}

func userToModel(u *entities.User) *models.User {
	return &models.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Phone:        u.Phone.Ptr(),
		IsVerified:   u.IsVerified,
		Role:         string(u.Role),
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Phone:        null.StringFromPtr(m.Phone),
		IsVerified:   m.IsVerified,
		Role:         entities.UserRole(m.Role),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
