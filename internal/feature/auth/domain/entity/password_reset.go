package entity

import "time"

// PasswordReset is an outstanding one-time code that authorizes a password change.
type PasswordReset struct {
	ID        uint
	UserID    uint
	OTP       string // 6-digit numeric code
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the code can no longer be used at now.
func (p *PasswordReset) IsExpired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}
