package notification

import "errors"

var (
	// ErrResolvePayment covers a missing payment id and any failure to fetch
	// the payment from Mercado Pago.
	ErrResolvePayment = errors.New("resolve payment")

	// ErrCorrelation is returned when a payment carries no external reference
	// to tie it back to a cart.
	ErrCorrelation = errors.New("payment has no cart reference")
)
