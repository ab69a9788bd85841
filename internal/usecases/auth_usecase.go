package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"orderdesk.backend/internal/domain/entities"
	domainerrors "orderdesk.backend/internal/domain/errors"
	"orderdesk.backend/internal/domain/repositories"
	"orderdesk.backend/pkg/crypto"
	"orderdesk.backend/pkg/jwt"
)

const (
	verificationCodeDigits = 6
	verificationCodeTTL    = 15 * time.Minute
)

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	codeRepo   repositories.VerificationCodeRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	codeRepo repositories.VerificationCodeRepository,
	jwtService *jwt.JWTService,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		codeRepo:   codeRepo,
		jwtService: jwtService,
	}
}

// Register registers a new user and issues a verification code
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, string, error) {
	// Check uniqueness up front for friendly conflicts; the DB unique
	// indexes remain the real guard.
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, "", domainerrors.Conflict("email already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, "", err
	}

	_, err = u.userRepo.GetByUsername(ctx, input.Username)
	if err == nil {
		return nil, "", domainerrors.Conflict("username already taken")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, "", err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &entities.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         entities.UserRoleUser,
	}
	if input.Phone != "" {
		user.Phone = null.StringFrom(input.Phone)
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	code, err := crypto.GenerateVerificationCode(verificationCodeDigits)
	if err != nil {
		return nil, "", err
	}

	verification := &entities.VerificationCode{
		Email:     null.StringFrom(user.Email),
		Phone:     user.Phone,
		Code:      code,
		ExpiresAt: time.Now().Add(verificationCodeTTL),
	}
	if err := u.codeRepo.Create(ctx, verification); err != nil {
		return nil, "", err
	}

	return user, code, nil
}

// VerifyEmail consumes a verification code and marks the user verified
func (u *AuthUsecase) VerifyEmail(ctx context.Context, input *entities.VerifyEmailInput) error {
	code, err := u.codeRepo.GetActiveByEmail(ctx, input.Email, input.Code)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.BadRequest("invalid or expired verification code")
		}
		return err
	}

	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return err
	}

	if err := u.codeRepo.MarkUsed(ctx, code.ID); err != nil {
		return err
	}
	if user.IsVerified {
		return nil
	}
	return u.userRepo.MarkVerified(ctx, user.ID)
}

// Login authenticates a user and returns tokens
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, domainerrors.ErrEmailNotVerified
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// RefreshToken generates new tokens from a refresh token
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	// Re-read the user so revoked accounts and role changes take effect
	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
}
