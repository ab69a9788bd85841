package entities

import "time"

// CleanupType selects which account-hygiene pass to run
type CleanupType string

const (
	CleanupUnverifiedUsers CleanupType = "unverified_users"
	CleanupExpiredCodes    CleanupType = "expired_codes"
	CleanupAll             CleanupType = "all"
)

// CleanupRequest represents a cleanup execution request
type CleanupRequest struct {
	CleanupType   CleanupType `json:"cleanupType" binding:"required"`
	DaysThreshold int         `json:"daysThreshold"`
	DryRun        bool        `json:"dryRun"`
}

// CleanupUserInfo describes one user a cleanup pass touched
type CleanupUserInfo struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	DaysOld   int       `json:"daysOld"`
}

// CleanupResult represents the outcome of a cleanup execution
type CleanupResult struct {
	CleanupType    CleanupType        `json:"cleanupType"`
	DryRun         bool               `json:"dryRun"`
	DeletedUsers   int                `json:"deletedUsers"`
	DeletedCodes   int                `json:"deletedCodes"`
	ProcessedUsers []*CleanupUserInfo `json:"processedUsers"`
	Message        string             `json:"message"`
	Timestamp      time.Time          `json:"timestamp"`
}

// CleanupStats summarizes identity data eligible for cleanup
type CleanupStats struct {
	TotalUsers             int `json:"totalUsers"`
	VerifiedUsers          int `json:"verifiedUsers"`
	UnverifiedUsers        int `json:"unverifiedUsers"`
	UnverifiedOldUsers     int `json:"unverifiedOldUsers"`
	TotalVerificationCodes int `json:"totalVerificationCodes"`
	ExpiredCodes           int `json:"expiredCodes"`
	ActiveCodes            int `json:"activeCodes"`
}
