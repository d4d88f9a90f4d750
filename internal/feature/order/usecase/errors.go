// Package usecase implements the business logic for the order feature.
package usecase

import "errors"

var (
	// ErrEmptyOrder is returned when an order has no lines.
	ErrEmptyOrder = errors.New("order must contain at least one item")

	// ErrInvalidQuantity is returned when a line quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrUnknownProduct is returned when a line references a missing menu item.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrForbidden is returned when the caller acts on another user's orders without being admin.
	ErrForbidden = errors.New("not allowed to access another user's orders")
)
