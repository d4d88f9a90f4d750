package usecase

import (
	"context"
	"fmt"
)

// AccountUsecase lets admins enable and disable user accounts.
type AccountUsecase struct {
	users UserRepository
}

// NewAccountUsecase creates a new AccountUsecase.
func NewAccountUsecase(users UserRepository) *AccountUsecase {
	return &AccountUsecase{users: users}
}

// Disable blocks the user from logging in.
func (u *AccountUsecase) Disable(ctx context.Context, id uint) error {
	if err := u.users.SetDisabled(ctx, id, true); err != nil {
		return fmt.Errorf("failed to disable user %d: %w", id, err)
	}
	return nil
}

// Enable lifts a previous Disable.
func (u *AccountUsecase) Enable(ctx context.Context, id uint) error {
	if err := u.users.SetDisabled(ctx, id, false); err != nil {
		return fmt.Errorf("failed to enable user %d: %w", id, err)
	}
	return nil
}
