package usecases

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"orderdesk.backend/internal/domain/entities"
	domainerrors "orderdesk.backend/internal/domain/errors"
	"orderdesk.backend/internal/domain/repositories"
	"orderdesk.backend/pkg/logger"
)

// DefaultCleanupDays is the cutoff used when the request omits one
const DefaultCleanupDays = 30

// CleanupUsecase handles account hygiene passes over stale identity data
type CleanupUsecase struct {
	userRepo repositories.UserRepository
	codeRepo repositories.VerificationCodeRepository
}

// NewCleanupUsecase creates a new cleanup usecase
func NewCleanupUsecase(userRepo repositories.UserRepository, codeRepo repositories.VerificationCodeRepository) *CleanupUsecase {
	return &CleanupUsecase{userRepo: userRepo, codeRepo: codeRepo}
}

// Stats reports user and verification-code counts for the given cutoff
func (u *CleanupUsecase) Stats(ctx context.Context, daysThreshold int) (*entities.CleanupStats, error) {
	if daysThreshold <= 0 {
		daysThreshold = DefaultCleanupDays
	}
	now := time.Now()
	cutoff := now.AddDate(0, 0, -daysThreshold)

	total, verified, unverified, unverifiedOld, err := u.userRepo.CountStats(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	totalCodes, expired, active, err := u.codeRepo.CountStats(ctx, now)
	if err != nil {
		return nil, err
	}

	return &entities.CleanupStats{
		TotalUsers:             total,
		VerifiedUsers:          verified,
		UnverifiedUsers:        unverified,
		UnverifiedOldUsers:     unverifiedOld,
		TotalVerificationCodes: totalCodes,
		ExpiredCodes:           expired,
		ActiveCodes:            active,
	}, nil
}

// Execute runs the requested cleanup pass. Dry runs report what would
// be removed without mutating anything.
func (u *CleanupUsecase) Execute(ctx context.Context, req *entities.CleanupRequest) (*entities.CleanupResult, error) {
	switch req.CleanupType {
	case entities.CleanupUnverifiedUsers, entities.CleanupExpiredCodes, entities.CleanupAll:
	default:
		return nil, domainerrors.BadRequest("unknown cleanup type")
	}

	daysThreshold := req.DaysThreshold
	if daysThreshold <= 0 {
		daysThreshold = DefaultCleanupDays
	}

	result := &entities.CleanupResult{
		CleanupType: req.CleanupType,
		DryRun:      req.DryRun,
		Timestamp:   time.Now(),
	}

	if req.CleanupType == entities.CleanupUnverifiedUsers || req.CleanupType == entities.CleanupAll {
		if err := u.cleanUnverifiedUsers(ctx, daysThreshold, req.DryRun, result); err != nil {
			return nil, err
		}
	}
	if req.CleanupType == entities.CleanupExpiredCodes || req.CleanupType == entities.CleanupAll {
		if err := u.cleanExpiredCodes(ctx, req.DryRun, result); err != nil {
			return nil, err
		}
	}

	verb := "removed"
	if req.DryRun {
		verb = "would remove"
	}
	result.Message = fmt.Sprintf("cleanup %s %d users and %d codes", verb, result.DeletedUsers, result.DeletedCodes)
	return result, nil
}

// CleanExpiredCodes removes all verification codes past expiry. Used
// by the background job.
func (u *CleanupUsecase) CleanExpiredCodes(ctx context.Context) (int, error) {
	return u.codeRepo.DeleteExpired(ctx, time.Now())
}

func (u *CleanupUsecase) cleanUnverifiedUsers(ctx context.Context, daysThreshold int, dryRun bool, result *entities.CleanupResult) error {
	cutoff := time.Now().AddDate(0, 0, -daysThreshold)
	stale, err := u.userRepo.ListUnverifiedBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, user := range stale {
		info := &entities.CleanupUserInfo{
			ID:        user.ID.String(),
			Username:  user.Username,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
			DaysOld:   int(time.Since(user.CreatedAt).Hours() / 24),
		}
		result.ProcessedUsers = append(result.ProcessedUsers, info)

		if dryRun {
			continue
		}

		if err := u.userRepo.SoftDelete(ctx, user.ID); err != nil {
			return err
		}
		if _, err := u.codeRepo.DeleteForContact(ctx, user.Email, user.Phone.String); err != nil {
			return err
		}
		logger.Info(ctx, "removed stale unverified account",
			zap.String("user_id", user.ID.String()),
			zap.Int("days_old", info.DaysOld))
	}

	result.DeletedUsers = len(stale)
	return nil
}

func (u *CleanupUsecase) cleanExpiredCodes(ctx context.Context, dryRun bool, result *entities.CleanupResult) error {
	now := time.Now()
	if dryRun {
		_, expired, _, err := u.codeRepo.CountStats(ctx, now)
		if err != nil {
			return err
		}
		result.DeletedCodes = expired
		return nil
	}

	deleted, err := u.codeRepo.DeleteExpired(ctx, now)
	if err != nil {
		return err
	}
	result.DeletedCodes = deleted
	return nil
}
