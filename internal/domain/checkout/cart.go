package checkout

import "time"

type CartType string

const (
	CartTypeDefault     CartType = "default"
	CartTypeSwap        CartType = "swap"
	CartTypeDraftOrder  CartType = "draft_order"
	CartTypePaymentLink CartType = "payment_link"
	CartTypeClaim       CartType = "claim"
)

type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// LineItem prices are in the currency's minor unit.
type LineItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
}

func (li LineItem) Total() int64 {
	return li.UnitPrice * int64(li.Quantity)
}

type Cart struct {
	ID                  string     `json:"id"`
	Type                CartType   `json:"type"`
	CurrencyCode        string     `json:"currency_code"`
	Customer            Customer   `json:"customer"`
	Items               []LineItem `json:"items"`
	Subtotal            int64      `json:"subtotal"`
	Total               int64      `json:"total"`
	PaymentAuthorizedAt *time.Time `json:"payment_authorized_at,omitempty"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// WithTotals returns a copy of the cart with subtotal and total computed from
// its line items.
func (c Cart) WithTotals() Cart {
	var subtotal int64
	for _, item := range c.Items {
		subtotal += item.Total()
	}
	c.Subtotal = subtotal
	c.Total = subtotal
	return c
}

func (c Cart) IsPaymentAuthorized() bool {
	return c.PaymentAuthorizedAt != nil
}
