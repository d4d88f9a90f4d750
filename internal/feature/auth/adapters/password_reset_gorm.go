package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coffee_backend/internal/feature/auth/domain/entity"
	"coffee_backend/internal/feature/auth/usecase"

	"gorm.io/gorm"
)

// passwordResetGorm stores reset challenges in PostgreSQL.
type passwordResetGorm struct {
	db *gorm.DB
}

var _ usecase.PasswordResetRepository = (*passwordResetGorm)(nil)

// NewPasswordResetRepository creates a new instance of passwordResetGorm.
func NewPasswordResetRepository(db *gorm.DB) *passwordResetGorm {
	return &passwordResetGorm{db: db}
}

// Create persists a new challenge and fills in its ID.
func (r *passwordResetGorm) Create(ctx context.Context, reset *entity.PasswordReset) error {
	model := PasswordResetModelFromEntity(reset)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	reset.ID = model.ID
	reset.CreatedAt = model.CreatedAt
	return nil
}

// FindValid returns the newest challenge for userID with a matching code that is still unexpired at now.
func (r *passwordResetGorm) FindValid(ctx context.Context, userID uint, otp string, now time.Time) (*entity.PasswordReset, error) {
	var model PasswordResetModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND otp = ? AND expires_at > ?", userID, otp, now).
		Order("id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrInvalidOrExpiredOTP
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// Consume deletes the challenge and stores the new password hash in one transaction.
// If the challenge was already consumed by a concurrent request nothing is written.
func (r *passwordResetGorm) Consume(ctx context.Context, resetID, userID uint, passwordHash string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", resetID, userID).Delete(&PasswordResetModel{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete reset challenge: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return usecase.ErrInvalidOrExpiredOTP
		}

		res = tx.Model(&entity.User{}).Where("id = ?", userID).Update("password", passwordHash)
		if res.Error != nil {
			return fmt.Errorf("failed to update password: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return usecase.ErrUserNotFound
		}
		return nil
	})
}

// DeleteExpiredByUserID removes the user's challenges that expired before now.
func (r *passwordResetGorm) DeleteExpiredByUserID(ctx context.Context, userID uint, now time.Time) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND expires_at <= ?", userID, now).
		Delete(&PasswordResetModel{}).Error
}

// DeleteExpired removes every challenge that expired before now and returns how many were deleted.
func (r *passwordResetGorm) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&PasswordResetModel{})
	return result.RowsAffected, result.Error
}
