package usecase

import (
	"context"
	"errors"
	"fmt"

	"coffee_backend/internal/feature/order/domain/entity"
)

const roleAdmin = "admin"

// OrderRepository abstracts the persistence layer for orders.
type OrderRepository interface {
	// Place stores the order and its items atomically and fills in their IDs.
	// It returns ErrUnknownProduct if any item references a missing menu item.
	Place(ctx context.Context, order *entity.Order) error

	// ListByUser returns the user's orders with their items, newest first.
	ListByUser(ctx context.Context, userID uint) ([]entity.Order, error)
}

// Caller identifies the authenticated user making a request.
type Caller struct {
	UserID uint
	Role   string
}

func (c Caller) canAccess(userID uint) bool {
	return c.Role == roleAdmin || c.UserID == userID
}

// PlaceOrderInput carries an order submission. A zero UserID means the caller.
type PlaceOrderInput struct {
	UserID         uint
	Items          []entity.OrderItem
	TotalCost      float64
	DeliveryMethod string
	PaymentMethod  string
}

// OrderUsecase implements order placement and lookup.
type OrderUsecase struct {
	repo OrderRepository
}

// NewOrderUsecase creates a new OrderUsecase.
func NewOrderUsecase(repo OrderRepository) *OrderUsecase {
	return &OrderUsecase{repo: repo}
}

// Place validates the submission and stores it as a Pending order.
// TotalCost is stored as submitted.
func (u *OrderUsecase) Place(ctx context.Context, caller Caller, in PlaceOrderInput) (uint, error) {
	userID := in.UserID
	if userID == 0 {
		userID = caller.UserID
	}
	if !caller.canAccess(userID) {
		return 0, ErrForbidden
	}
	if len(in.Items) == 0 {
		return 0, ErrEmptyOrder
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return 0, fmt.Errorf("%w: product %d", ErrInvalidQuantity, it.ProductID)
		}
	}

	order := &entity.Order{
		UserID:         userID,
		TotalCost:      in.TotalCost,
		Status:         entity.StatusPending,
		DeliveryMethod: in.DeliveryMethod,
		PaymentMethod:  in.PaymentMethod,
		Items:          make([]entity.OrderItem, len(in.Items)),
	}
	for i, it := range in.Items {
		order.Items[i] = entity.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity}
	}

	if err := u.repo.Place(ctx, order); err != nil {
		if errors.Is(err, ErrUnknownProduct) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to place order: %w", err)
	}
	return order.ID, nil
}

// ListForUser returns every order of userID, newest first.
func (u *OrderUsecase) ListForUser(ctx context.Context, caller Caller, userID uint) ([]entity.Order, error) {
	if !caller.canAccess(userID) {
		return nil, ErrForbidden
	}
	orders, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for user %d: %w", userID, err)
	}
	return orders, nil
}
