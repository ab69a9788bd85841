package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"orderdesk.backend/internal/domain/entities"
	domainerrors "orderdesk.backend/internal/domain/errors"
	"orderdesk.backend/internal/domain/repositories"
	"orderdesk.backend/pkg/utils"
)

// UserUsecase handles user profile and role management
type UserUsecase struct {
	userRepo repositories.UserRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

// GetByID gets a user by ID
func (u *UserUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// UpdateProfile updates the caller's own profile fields
func (u *UserUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Phone != nil {
		user.Phone = null.StringFrom(*input.Phone)
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return u.userRepo.GetByID(ctx, userID)
}

// DeleteAccount soft-deletes a user account
func (u *UserUsecase) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return u.userRepo.SoftDelete(ctx, userID)
}

// AssignRole grants a role to the target user. The assignment matrix
// is consulted before any mutation; assignments outside it are
// Forbidden regardless of the target's current role.
func (u *UserUsecase) AssignRole(ctx context.Context, callerRole entities.UserRole, targetID uuid.UUID, newRole entities.UserRole) (*entities.User, error) {
	if !entities.ValidRole(newRole) {
		return nil, domainerrors.BadRequest("unknown role")
	}
	if !entities.CanAssignRole(callerRole, newRole) {
		return nil, domainerrors.Forbidden("role assignment not permitted")
	}

	target, err := u.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target.Role == newRole {
		return target, nil
	}

	if err := u.userRepo.UpdateRole(ctx, targetID, newRole); err != nil {
		return nil, err
	}
	return u.userRepo.GetByID(ctx, targetID)
}

// List returns active users with pagination
func (u *UserUsecase) List(ctx context.Context, skip, limit int) ([]*entities.User, int, error) {
	p := utils.GetPaginationParams(skip, limit)
	return u.userRepo.List(ctx, p.Skip, p.Limit)
}
