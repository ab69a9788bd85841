package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"orderdesk.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	UpdateRole(ctx context.Context, id uuid.UUID, role entities.UserRole) error
	MarkVerified(ctx context.Context, id uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, skip, limit int) ([]*entities.User, int, error)
	// ListUnverifiedBefore returns active unverified users created before the cutoff
	ListUnverifiedBefore(ctx context.Context, cutoff time.Time) ([]*entities.User, error)
	CountStats(ctx context.Context, cutoff time.Time) (total, verified, unverified, unverifiedOld int, err error)
}

// VerificationCodeRepository defines verification code data operations
type VerificationCodeRepository interface {
	Create(ctx context.Context, code *entities.VerificationCode) error
	GetActiveByEmail(ctx context.Context, email, code string) (*entities.VerificationCode, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
	DeleteForContact(ctx context.Context, email, phone string) (int, error)
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
	CountStats(ctx context.Context, now time.Time) (total, expired, active int, err error)
}
