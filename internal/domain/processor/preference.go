package processor

import (
	"strings"

	"MercadoPagoBridge/internal/domain/checkout"
	"MercadoPagoBridge/internal/domain/gateway"
)

// preference builds the body shared by create and update. The cart id is
// sent as external_reference; it is the only link from a payment back to
// its cart.
func (p *Processor) preference(pctx checkout.PaymentContext) gateway.PreferenceRequest {
	currencyID := strings.ToUpper(pctx.CurrencyCode)

	items := make([]gateway.Item, 0, len(pctx.Cart.Items))
	for _, li := range pctx.Cart.Items {
		items = append(items, gateway.Item{
			ID:          li.ID,
			Title:       li.Title,
			Description: li.Description,
			Quantity:    li.Quantity,
			CurrencyID:  currencyID,
			UnitPrice:   HumanizeAmount(li.UnitPrice, pctx.CurrencyCode),
		})
	}

	return gateway.PreferenceRequest{
		Items: items,
		Payer: gateway.Payer{
			Name:    pctx.Customer.FirstName,
			Surname: pctx.Customer.LastName,
			Email:   pctx.Customer.Email,
		},
		NotificationURL:   p.webhookURL,
		ExternalReference: pctx.ResourceID,
		BackURLs: gateway.BackURLs{
			Success: p.opts.SuccessBackURL,
		},
	}
}
