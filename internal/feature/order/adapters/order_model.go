package adapters

import (
	"time"

	"coffee_backend/internal/feature/order/domain/entity"
)

// OrderModel is the GORM model for the orders table.
type OrderModel struct {
	ID             uint             `gorm:"primaryKey"`
	UserID         uint             `gorm:"not null;index:idx_orders_user_created,priority:1"`
	TotalCost      float64          `gorm:"not null"`
	Status         string           `gorm:"size:20;not null;default:Pending"`
	DeliveryMethod string           `gorm:"size:50"`
	PaymentMethod  string           `gorm:"size:50"`
	CreatedAt      time.Time        `gorm:"index:idx_orders_user_created,priority:2"`
	Items          []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderModel) TableName() string { return "orders" }

// OrderItemModel is the GORM model for the order_items table.
// ProductID has no foreign key: menu items may be deleted after being ordered.
type OrderItemModel struct {
	ID        uint `gorm:"primaryKey"`
	OrderID   uint `gorm:"not null;index"`
	ProductID uint `gorm:"not null"`
	Quantity  int  `gorm:"not null"`
}

func (OrderItemModel) TableName() string { return "order_items" }

// ToEntity converts the model and its loaded items to a domain entity.
func (m *OrderModel) ToEntity() entity.Order {
	o := entity.Order{
		ID:             m.ID,
		UserID:         m.UserID,
		TotalCost:      m.TotalCost,
		Status:         m.Status,
		DeliveryMethod: m.DeliveryMethod,
		PaymentMethod:  m.PaymentMethod,
		CreatedAt:      m.CreatedAt,
		Items:          make([]entity.OrderItem, 0, len(m.Items)),
	}
	for _, it := range m.Items {
		o.Items = append(o.Items, entity.OrderItem{
			ID:        it.ID,
			OrderID:   it.OrderID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return o
}

// OrderModelFromEntity converts a domain entity to the GORM model.
func OrderModelFromEntity(o *entity.Order) *OrderModel {
	m := &OrderModel{
		ID:             o.ID,
		UserID:         o.UserID,
		TotalCost:      o.TotalCost,
		Status:         o.Status,
		DeliveryMethod: o.DeliveryMethod,
		PaymentMethod:  o.PaymentMethod,
		CreatedAt:      o.CreatedAt,
		Items:          make([]OrderItemModel, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		m.Items = append(m.Items, OrderItemModel{
			ID:        it.ID,
			OrderID:   it.OrderID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return m
}
