// Package adapters provides the gorm-backed repository of the menu feature.
package adapters

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"coffee_backend/internal/feature/menu/domain/entity"
	"coffee_backend/internal/feature/menu/usecase"
)

var _ usecase.MenuRepository = (*menuGorm)(nil)

// likeEscaper makes % and _ in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type menuGorm struct {
	db *gorm.DB
}

// NewMenuRepository creates a gorm-backed menu repository.
func NewMenuRepository(db *gorm.DB) *menuGorm {
	return &menuGorm{db: db}
}

func (r *menuGorm) List(ctx context.Context) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuGorm) Create(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update writes every column, including zero values such as isSpecial=false.
func (r *menuGorm) Update(ctx context.Context, id uint, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).
		Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":        item.Name,
			"description": item.Description,
			"price":       item.Price,
			"category":    item.Category,
			"is_special":  item.IsSpecial,
		}).Error
}

func (r *menuGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.MenuItem{}, id).Error
}

func (r *menuGorm) Search(ctx context.Context, q string) ([]entity.MenuItem, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"

	var items []entity.MenuItem
	err := r.db.WithContext(ctx).
		Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(category) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
