package mercadopago

import "errors"

// ErrUnavailable marks failures worth retrying: transport errors, 5xx and 429.
var ErrUnavailable = errors.New("mercadopago unavailable")
