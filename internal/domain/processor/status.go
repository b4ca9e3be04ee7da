package processor

import "MercadoPagoBridge/internal/domain/checkout"

// MapStatus translates a Mercado Pago payment status to the host session
// status. Unknown statuses are pending, never error.
func MapStatus(status string) checkout.SessionStatus {
	switch status {
	case "approved", "authorized":
		return checkout.SessionAuthorized
	case "refunded", "charged_back", "cancelled":
		return checkout.SessionCanceled
	case "rejected":
		return checkout.SessionError
	case "pending", "in_process", "in_mediation":
		return checkout.SessionPending
	default:
		return checkout.SessionPending
	}
}
