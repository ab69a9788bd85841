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

// VerificationCodeRepository implements verification code data operations
type VerificationCodeRepository struct {
	db *gorm.DB
}

// NewVerificationCodeRepository creates a new verification code repository
func NewVerificationCodeRepository(db *gorm.DB) *VerificationCodeRepository {
	return &VerificationCodeRepository{db: db}
}

// Create stores a new verification code
func (r *VerificationCodeRepository) Create(ctx context.Context, code *entities.VerificationCode) error {
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	code.CreatedAt = time.Now()

	m := &models.VerificationCode{
		ID:        code.ID,
		Email:     code.Email.Ptr(),
		Phone:     code.Phone.Ptr(),
		Code:      code.Code,
		ExpiresAt: code.ExpiresAt,
		IsUsed:    code.IsUsed,
		CreatedAt: code.CreatedAt,
		UpdatedAt: code.CreatedAt,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// GetActiveByEmail returns an unused, unexpired code for the email
func (r *VerificationCodeRepository) GetActiveByEmail(ctx context.Context, email, code string) (*entities.VerificationCode, error) {
	var m models.VerificationCode
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).
		Where("email = ? AND code = ? AND is_used = ? AND expires_at > ?", email, code, false, time.Now()).
		First(&m).Error
	if err != nil {
		return nil, translateError(err)
	}
	return codeToEntity(&m), nil
}

// MarkUsed consumes a verification code
func (r *VerificationCodeRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.VerificationCode{}).
		Where("id = ? AND is_used = ?", id, false).
		Updates(map[string]interface{}{
			"is_used":    true,
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

// DeleteForContact hard-deletes all codes tied to the email or phone
func (r *VerificationCodeRepository) DeleteForContact(ctx context.Context, email, phone string) (int, error) {
	db := GetDB(ctx, r.db)
	q := db.WithContext(ctx).Where("email = ?", email)
	if phone != "" {
		q = db.WithContext(ctx).Where("email = ? OR phone = ?", email, phone)
	}
	result := q.Delete(&models.VerificationCode{})
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	return int(result.RowsAffected), nil
}

// DeleteExpired hard-deletes all codes past their expiry
func (r *VerificationCodeRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Where("expires_at < ?", now).Delete(&models.VerificationCode{})
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	return int(result.RowsAffected), nil
}

// CountStats returns code counts used by cleanup reporting
func (r *VerificationCodeRepository) CountStats(ctx context.Context, now time.Time) (total, expired, active int, err error) {
	db := GetDB(ctx, r.db)

	var n int64
	if err = db.WithContext(ctx).Model(&models.VerificationCode{}).Count(&n).Error; err != nil {
		return 0, 0, 0, translateError(err)
	}
	total = int(n)

	if err = db.WithContext(ctx).Model(&models.VerificationCode{}).
		Where("expires_at < ?", now).Count(&n).Error; err != nil {
		return 0, 0, 0, translateError(err)
	}
	expired = int(n)

	if err = db.WithContext(ctx).Model(&models.VerificationCode{}).
		Where("expires_at >= ? AND is_used = ?", now, false).Count(&n).Error; err != nil {
		return 0, 0, 0, translateError(err)
	}
	active = int(n)

	return total, expired, active, nil
}

func codeToEntity(m *models.VerificationCode) *entities.VerificationCode {
	return &entities.VerificationCode{
		ID:        m.ID,
		Email:     null.StringFromPtr(m.Email),
		Phone:     null.StringFromPtr(m.Phone),
		Code:      m.Code,
		ExpiresAt: m.ExpiresAt,
		IsUsed:    m.IsUsed,
		CreatedAt: m.CreatedAt,
	}
}
