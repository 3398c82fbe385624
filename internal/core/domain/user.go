package domain

import "time"

// User represents a user of the application in the domain.
// Workspace membership is recorded per-workspace, not on the user record.
type User struct {
	UserID       string       `json:"userID"` // Primary Key
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Status       RecordStatus `json:"status"`
	PasswordHash string       `json:"-"` // bcrypt hash; empty for OAuth-only users

	// Refresh token state; only the SHA256 hash is ever stored.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
}

// IsSuspended reports whether a platform operator has suspended this user.
func (u User) IsSuspended() bool {
	return u.Status == StatusSuspended
}
