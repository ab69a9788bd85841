package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin   UserRole = "ADMIN"
	UserRoleCompany UserRole = "COMPANY"
	UserRoleBranch  UserRole = "BRANCH"
	UserRoleUser    UserRole = "USER"
)

// ValidRole reports whether the role is one of the known roles
func ValidRole(r UserRole) bool {
	switch r {
	case UserRoleAdmin, UserRoleCompany, UserRoleBranch, UserRoleUser:
		return true
	}
	return false
}

// assignableRoles is the role assignment matrix: which roles a given
// actor role is allowed to grant to other users.
var assignableRoles = map[UserRole]map[UserRole]bool{
	UserRoleAdmin: {
		UserRoleAdmin:   true,
		UserRoleCompany: true,
		UserRoleBranch:  true,
		UserRoleUser:    true,
	},
	UserRoleCompany: {
		UserRoleBranch: true,
		UserRoleUser:   true,
	},
	UserRoleBranch: {
		UserRoleUser: true,
	},
	UserRoleUser: {},
}

// CanAssignRole reports whether an actor with role assigner may grant
// the target role. The matrix is consulted before every role mutation.
func CanAssignRole(assigner, target UserRole) bool {
	allowed, ok := assignableRoles[assigner]
	if !ok {
		return false
	}
	return allowed[target]
}

// User represents a user entity
type User struct {
	ID           uuid.UUID   `json:"id"`
	Username     string      `json:"username"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Phone        null.String `json:"phone,omitempty"`
	IsVerified   bool        `json:"isVerified"`
	Role         UserRole    `json:"role"`
	IsActive     bool        `json:"isActive"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// RegisterInput represents input for user registration
type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone,omitempty"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyEmailInput represents input for email verification
type VerifyEmailInput struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// UpdateProfileInput represents mutable profile fields
type UpdateProfileInput struct {
	Username *string `json:"username,omitempty" binding:"omitempty,min=3,max=50"`
	Phone    *string `json:"phone,omitempty"`
}

// AssignRoleInput represents input for a role mutation
type AssignRoleInput struct {
	Role UserRole `json:"role" binding:"required"`
}

// VerificationCode represents a short-lived identity verification code
type VerificationCode struct {
	ID        uuid.UUID   `json:"id"`
	Email     null.String `json:"email,omitempty"`
	Phone     null.String `json:"phone,omitempty"`
	Code      string      `json:"code"`
	ExpiresAt time.Time   `json:"expiresAt"`
	IsUsed    bool        `json:"isUsed"`
	CreatedAt time.Time   `json:"createdAt"`
}
