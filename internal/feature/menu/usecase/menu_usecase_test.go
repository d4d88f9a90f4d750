package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffee_backend/internal/feature/menu/domain/entity"
)

type mockMenuRepository struct {
	ListFunc   func(ctx context.Context) ([]entity.MenuItem, error)
	CreateFunc func(ctx context.Context, item *entity.MenuItem) error
	UpdateFunc func(ctx context.Context, id uint, item *entity.MenuItem) error
	DeleteFunc func(ctx context.Context, id uint) error
	SearchFunc func(ctx context.Context, q string) ([]entity.MenuItem, error)
}

func (m *mockMenuRepository) List(ctx context.Context) ([]entity.MenuItem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockMenuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *mockMenuRepository) Update(ctx context.Context, id uint, item *entity.MenuItem) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, item)
	}
	return nil
}

func (m *mockMenuRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockMenuRepository) Search(ctx context.Context, q string) ([]entity.MenuItem, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, q)
	}
	return nil, nil
}

func TestMenuUsecase_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		item    entity.MenuItem
		repoErr error
		wantID  uint
		wantErr error
	}{
		{"success", entity.MenuItem{Name: "Latte", Price: 4}, nil, 11, nil},
		{"free item allowed", entity.MenuItem{Name: "Water", Price: 0}, nil, 11, nil},
		{"missing name", entity.MenuItem{Name: "  ", Price: 4}, nil, 0, ErrInvalidMenuItem},
		{"negative price", entity.MenuItem{Name: "Latte", Price: -1}, nil, 0, ErrInvalidMenuItem},
		{"repository error", entity.MenuItem{Name: "Latte", Price: 4}, errors.New("db down"), 0, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := &mockMenuRepository{CreateFunc: func(ctx context.Context, item *entity.MenuItem) error {
				if tt.repoErr != nil {
					return tt.repoErr
				}
				item.ID = 11
				return nil
			}}

			id, err := NewMenuUsecase(repo).Create(context.Background(), tt.item)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.repoErr != nil:
				assert.ErrorIs(t, err, tt.repoErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestMenuUsecase_UpdateValidates(t *testing.T) {
	t.Parallel()

	called := false
	repo := &mockMenuRepository{UpdateFunc: func(ctx context.Context, id uint, item *entity.MenuItem) error {
		called = true
		return nil
	}}
	uc := NewMenuUsecase(repo)

	err := uc.Update(context.Background(), 3, entity.MenuItem{Price: 2})
	assert.ErrorIs(t, err, ErrInvalidMenuItem)
	assert.False(t, called)

	require.NoError(t, uc.Update(context.Background(), 3, entity.MenuItem{Name: "Mocha", Price: 2}))
	assert.True(t, called)
}

func TestMenuUsecase_Search(t *testing.T) {
	t.Parallel()

	var gotQ string
	repo := &mockMenuRepository{SearchFunc: func(ctx context.Context, q string) ([]entity.MenuItem, error) {
		gotQ = q
		return []entity.MenuItem{{ID: 1, Name: "Latte"}}, nil
	}}
	uc := NewMenuUsecase(repo)

	items, err := uc.Search(context.Background(), "  latte ")
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "latte", gotQ)

	for _, q := range []string{"", "   "} {
		_, err := uc.Search(context.Background(), q)
		assert.ErrorIs(t, err, ErrEmptyQuery)
	}
}

func TestMenuUsecase_DeleteWrapsError(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("db down")
	uc := NewMenuUsecase(&mockMenuRepository{DeleteFunc: func(ctx context.Context, id uint) error { return dbErr }})

	err := uc.Delete(context.Background(), 4)

	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "failed to delete menu item 4")
}
