package adapters

import (
	"time"

	"coffee_backend/internal/feature/auth/domain/entity"
)

// PasswordResetModel is the GORM model for the password_resets table.
type PasswordResetModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index:idx_reset_user_otp,priority:1;not null"`
	OTP       string    `gorm:"index:idx_reset_user_otp,priority:2;size:6;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (PasswordResetModel) TableName() string {
	return "password_resets"
}

// ToEntity converts the GORM model to a domain entity.
func (m *PasswordResetModel) ToEntity() *entity.PasswordReset {
	return &entity.PasswordReset{
		ID:        m.ID,
		UserID:    m.UserID,
		OTP:       m.OTP,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

// PasswordResetModelFromEntity converts a domain entity to a GORM model.
func PasswordResetModelFromEntity(p *entity.PasswordReset) *PasswordResetModel {
	return &PasswordResetModel{
		ID:        p.ID,
		UserID:    p.UserID,
		OTP:       p.OTP,
		ExpiresAt: p.ExpiresAt,
		CreatedAt: p.CreatedAt,
	}
}
