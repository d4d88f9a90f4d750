package usecase

import (
	"context"
	"fmt"
	"strings"

	"coffee_backend/internal/feature/menu/domain/entity"
)

// MenuRepository abstracts the persistence layer for menu items.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MenuRepository interface {
	// List returns every item ordered by ID.
	List(ctx context.Context) ([]entity.MenuItem, error)
	Create(ctx context.Context, item *entity.MenuItem) error
	// Update overwrites the item with the given ID. Missing IDs are not an error.
	Update(ctx context.Context, id uint, item *entity.MenuItem) error
	// Delete removes the item with the given ID. Missing IDs are not an error.
	Delete(ctx context.Context, id uint) error
	// Search matches q case-insensitively against name or category.
	Search(ctx context.Context, q string) ([]entity.MenuItem, error)
}

// MenuUsecase implements the menu catalog operations.
type MenuUsecase struct {
	repo MenuRepository
}

// NewMenuUsecase creates a new MenuUsecase.
func NewMenuUsecase(repo MenuRepository) *MenuUsecase {
	return &MenuUsecase{repo: repo}
}

func (u *MenuUsecase) List(ctx context.Context) ([]entity.MenuItem, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu: %w", err)
	}
	return items, nil
}

// Create validates and stores a new item and returns its ID.
func (u *MenuUsecase) Create(ctx context.Context, item entity.MenuItem) (uint, error) {
	if err := validate(item); err != nil {
		return 0, err
	}
	item.ID = 0
	if err := u.repo.Create(ctx, &item); err != nil {
		return 0, fmt.Errorf("failed to create menu item: %w", err)
	}
	return item.ID, nil
}

func (u *MenuUsecase) Update(ctx context.Context, id uint, item entity.MenuItem) error {
	if err := validate(item); err != nil {
		return err
	}
	if err := u.repo.Update(ctx, id, &item); err != nil {
		return fmt.Errorf("failed to update menu item %d: %w", id, err)
	}
	return nil
}

func (u *MenuUsecase) Delete(ctx context.Context, id uint) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete menu item %d: %w", id, err)
	}
	return nil
}

// Search returns items whose name or category contains q, ignoring case.
func (u *MenuUsecase) Search(ctx context.Context, q string) ([]entity.MenuItem, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, ErrEmptyQuery
	}
	items, err := u.repo.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to search menu: %w", err)
	}
	return items, nil
}

func validate(item entity.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidMenuItem)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidMenuItem)
	}
	return nil
}
