package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	TypePayment          = "payment"
	ActionPaymentCreated = "payment.created"
)

// Notification is a Mercado Pago webhook delivery. It decodes both the
// current body {type, action, data:{id}} and the legacy {type, action, id};
// ids may be JSON strings or numbers.
type Notification struct {
	Type      string
	Action    string
	PaymentID string
}

type wireNotification struct {
	Type   string    `json:"type"`
	Action string    `json:"action"`
	ID     *objectID `json:"id,omitempty"`
	Data   *struct {
		ID objectID `json:"id"`
	} `json:"data,omitempty"`
}

func (n *Notification) UnmarshalJSON(b []byte) error {
	var w wireNotification
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	n.Type = w.Type
	n.Action = w.Action
	n.PaymentID = ""
	switch {
	case w.Data != nil && w.Data.ID != "":
		n.PaymentID = string(w.Data.ID)
	case w.ID != nil:
		n.PaymentID = string(*w.ID)
	}
	return nil
}

// MarshalJSON always writes the current shape.
func (n Notification) MarshalJSON() ([]byte, error) {
	type data struct {
		ID string `json:"id"`
	}
	return json.Marshal(struct {
		Type   string `json:"type"`
		Action string `json:"action,omitempty"`
		Data   data   `json:"data"`
	}{n.Type, n.Action, data{n.PaymentID}})
}

// objectID accepts a JSON string or number.
type objectID string

func (id *objectID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = objectID(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("notification id must be a string or number: %w", err)
	}
	if i, err := num.Int64(); err == nil {
		*id = objectID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = objectID(num.String())
	return nil
}
