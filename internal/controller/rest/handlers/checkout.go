package handlers

import (
	"context"
	"errors"
	"net/http"

	"MercadoPagoBridge/internal/domain/checkout"
	"MercadoPagoBridge/internal/domain/order"
	"MercadoPagoBridge/internal/domain/processor"

	"github.com/gin-gonic/gin"
)

type PaymentSessions interface {
	InitiatePaymentSession(ctx context.Context, cartID string) (checkout.PaymentSession, error)
	UpdatePaymentSession(ctx context.Context, cartID string) (checkout.PaymentSession, error)
	GetPaymentSession(ctx context.Context, cartID string) (checkout.PaymentSession, error)
}

type CartOrders interface {
	RetrieveByCartID(ctx context.Context, cartID string) (order.Order, error)
}

// CheckoutHandler serves the storefront side of the checkout.
type CheckoutHandler struct {
	sessions PaymentSessions
	orders   CartOrders
}

func NewCheckoutHandler(sessions PaymentSessions, orders CartOrders) CheckoutHandler {
	return CheckoutHandler{sessions: sessions, orders: orders}
}

func (h *CheckoutHandler) InitiateSession(c *gin.Context) {
	session, err := h.sessions.InitiatePaymentSession(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *CheckoutHandler) RefreshSession(c *gin.Context) {
	session, err := h.sessions.UpdatePaymentSession(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *CheckoutHandler) GetSession(c *gin.Context) {
	session, err := h.sessions.GetPaymentSession(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	o, err := h.orders.RetrieveByCartID(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func writeCheckoutError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, checkout.ErrCartNotFound),
		errors.Is(err, checkout.ErrSessionNotFound),
		errors.Is(err, order.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, checkout.ErrCartCompleted):
		status = http.StatusConflict
	case errors.Is(err, processor.ErrConfiguration):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, processor.ErrNotImplemented):
		status = http.StatusNotImplemented
	case errors.Is(err, processor.ErrProvider):
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"message": err.Error()})
}
