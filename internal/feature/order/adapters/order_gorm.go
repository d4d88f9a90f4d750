// Package adapters provides the gorm-backed repository of the order feature.
package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	menuentity "coffee_backend/internal/feature/menu/domain/entity"
	"coffee_backend/internal/feature/order/domain/entity"
	"coffee_backend/internal/feature/order/usecase"
)

var _ usecase.OrderRepository = (*orderGorm)(nil)

type orderGorm struct {
	db *gorm.DB
}

// NewOrderRepository creates a gorm-backed order repository.
func NewOrderRepository(db *gorm.DB) *orderGorm {
	return &orderGorm{db: db}
}

// Place checks that every product exists, then inserts the order and its
// items in one transaction.
func (r *orderGorm) Place(ctx context.Context, order *entity.Order) error {
	ids := distinctProductIDs(order.Items)
	m := OrderModelFromEntity(order)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var found int64
		if err := tx.Model(&menuentity.MenuItem{}).Where("id IN ?", ids).Count(&found).Error; err != nil {
			return fmt.Errorf("failed to check products: %w", err)
		}
		if found != int64(len(ids)) {
			return usecase.ErrUnknownProduct
		}

		return tx.Create(m).Error
	})
	if err != nil {
		return err
	}

	*order = m.ToEntity()
	return nil
}

func (r *orderGorm) ListByUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	var models []OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	orders := make([]entity.Order, 0, len(models))
	for i := range models {
		orders = append(orders, models[i].ToEntity())
	}
	return orders, nil
}

func distinctProductIDs(items []entity.OrderItem) []uint {
	seen := make(map[uint]struct{}, len(items))
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
	}
	return ids
}
