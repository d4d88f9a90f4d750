// Package usecase implements the business logic for the menu feature.
package usecase

import "errors"

var (
	// ErrEmptyQuery is returned when search is called without a query.
	ErrEmptyQuery = errors.New("search query is required")

	// ErrInvalidMenuItem is returned when a name is missing or a price is negative.
	ErrInvalidMenuItem = errors.New("invalid menu item")
)
