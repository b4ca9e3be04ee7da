package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"MercadoPagoBridge/internal/domain/notification"
	"MercadoPagoBridge/internal/external/mercadopago"
	"MercadoPagoBridge/internal/webhook"
	"MercadoPagoBridge/pkg/correlation"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	processor webhook.Processor
	secret    string
	tolerance time.Duration
	now       func() time.Time
}

// NewNotificationHandler builds the Mercado Pago webhook handler. Signatures
// are verified only when secret is set; tolerance bounds their age.
func NewNotificationHandler(p webhook.Processor, secret string, tolerance time.Duration) NotificationHandler {
	return NotificationHandler{processor: p, secret: secret, tolerance: tolerance, now: time.Now}
}

// Webhook answers 204 for ignored topics, 200 once handled and 402 on any
// failure so Mercado Pago redelivers.
func (h *NotificationHandler) Webhook(c *gin.Context) {
	n, err := bindNotification(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Malformed notification"})
		return
	}

	if h.secret != "" {
		if err := h.verify(c, n); err != nil {
			slog.WarnContext(c.Request.Context(), "Rejected webhook signature",
				slog.String("payment_id", n.PaymentID), slog.Any("error", err))
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid signature"})
			return
		}
	}

	outcome, err := h.processor.Process(c.Request.Context(), n)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "Webhook processing failed",
			slog.String("payment_id", n.PaymentID), slog.Any("error", err))
		c.JSON(http.StatusPaymentRequired, gin.H{"message": "Notification not processed"})
		return
	}

	if outcome == notification.OutcomeSkipped {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, gin.H{"outcome": outcome})
}

// verify checks the signature over the query data.id and requires that id to
// be the one that gets processed.
func (h *NotificationHandler) verify(c *gin.Context, n notification.Notification) error {
	signedID := c.Query("data.id")
	if signedID == "" {
		signedID = n.PaymentID
	}
	if !strings.EqualFold(signedID, n.PaymentID) {
		return fmt.Errorf("%w: signed id %q does not match payment %q",
			mercadopago.ErrInvalidSignature, signedID, n.PaymentID)
	}
	return mercadopago.VerifySignature(h.secret,
		c.GetHeader(mercadopago.SignatureHeader),
		c.GetHeader(correlation.ProviderRequestHeader),
		signedID, h.now(), h.tolerance)
}

// bindNotification reads the JSON body and fills what it lacks from the
// query string (?type=payment&data.id=… or legacy ?topic=payment&id=…).
func bindNotification(c *gin.Context) (notification.Notification, error) {
	var n notification.Notification

	body, err := c.GetRawData()
	if err != nil {
		return n, err
	}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &n); err != nil {
			return n, err
		}
	}

	if n.Type == "" {
		n.Type = firstNonEmpty(c.Query("type"), c.Query("topic"))
	}
	if n.Action == "" {
		n.Action = c.Query("action")
	}
	if n.PaymentID == "" {
		n.PaymentID = firstNonEmpty(c.Query("data.id"), c.Query("id"))
	}
	return n, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
