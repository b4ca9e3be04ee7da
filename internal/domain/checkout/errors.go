package checkout

import "errors"

var (
	ErrCartNotFound = errors.New("cart not found")

	ErrSessionNotFound = errors.New("payment session not found")

	// ErrCartCompleted is returned when a payment session is touched on a cart
	// that already became an order.
	ErrCartCompleted = errors.New("cart already completed")

	ErrUnknownProvider = errors.New("unknown payment provider")
)
