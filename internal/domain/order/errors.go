package order

import "errors"

var (
	ErrNotFound = errors.New("order not found")

	// ErrAlreadyExists is returned when the cart already has an order. It is
	// the signal a concurrent confirmation lost the race.
	ErrAlreadyExists = errors.New("order already exists for cart")

	ErrPaymentNotAuthorized = errors.New("cart payment is not authorized")
)
