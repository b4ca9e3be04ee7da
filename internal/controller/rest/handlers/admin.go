package handlers

import (
	"context"
	"net/http"
	"strconv"

	"MercadoPagoBridge/internal/domain/gateway"
	"MercadoPagoBridge/internal/domain/notification"

	"github.com/gin-gonic/gin"
)

type PaymentSearcher interface {
	SearchPayments(ctx context.Context, cartID string) ([]gateway.Payment, error)
}

type NotificationEvents interface {
	Events(ctx context.Context, query notification.EventQuery) ([]notification.Event, error)
}

// AdminHandler serves reconciliation reads.
type AdminHandler struct {
	payments PaymentSearcher
	events   NotificationEvents
}

func NewAdminHandler(payments PaymentSearcher, events NotificationEvents) AdminHandler {
	return AdminHandler{payments: payments, events: events}
}

// ProviderPayments lists the Mercado Pago payments referencing the cart.
func (h *AdminHandler) ProviderPayments(c *gin.Context) {
	payments, err := h.payments.SearchPayments(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	if payments == nil {
		payments = []gateway.Payment{}
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

func (h *AdminHandler) Notifications(c *gin.Context) {
	query := notification.EventQuery{
		CartID:    c.Param("cart_id"),
		PaymentID: c.Query("payment_id"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid limit"})
			return
		}
		query.Limit = limit
	}

	events, err := h.events.Events(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if events == nil {
		events = []notification.Event{}
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}
