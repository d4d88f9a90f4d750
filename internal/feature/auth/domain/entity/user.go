// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Roles a user can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered customer or staff account.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the display name chosen at signup.
	Username string `gorm:"size:100;not null"`

	// Phone is used for login and password reset. It must be unique across all users.
	Phone string `gorm:"uniqueIndex;size:32;not null"`

	// Email receives reset codes and is also a login identifier. It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Role is either RoleUser or RoleAdmin.
	Role string `gorm:"size:16;not null;default:user"`

	// Disabled accounts cannot log in.
	Disabled bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
