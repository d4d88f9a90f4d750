// Package entity defines the domain entities of the order feature.
package entity

import "time"

// StatusPending is the status of a newly placed order.
const StatusPending = "Pending"

// Order is a customer's purchase of one or more menu items.
type Order struct {
	ID             uint
	UserID         uint
	TotalCost      float64
	Status         string
	DeliveryMethod string
	PaymentMethod  string
	CreatedAt      time.Time
	Items          []OrderItem
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID        uint
	OrderID   uint
	ProductID uint
	Quantity  int
}
