package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"MercadoPagoBridge/internal/domain/checkout"
	"MercadoPagoBridge/internal/domain/order"
	"MercadoPagoBridge/internal/domain/processor"
	"MercadoPagoBridge/pkg/metrics"

	"github.com/google/uuid"
)

type Outcome string

const (
	// OutcomeSkipped notifications are not about payments.
	OutcomeSkipped          Outcome = "skipped"
	OutcomeConfirmed        Outcome = "confirmed"
	OutcomeAlreadyConfirmed Outcome = "already_confirmed"
	// OutcomeNotActionable covers non-default carts and payment actions other
	// than creation. Nothing is written.
	OutcomeNotActionable Outcome = "not_actionable"
)

const outcomeFailed = "failed"

// Service turns payment notifications into orders, at most one per cart.
type Service struct {
	payments PaymentResolver
	tx       Transactor
	sink     EventSink
	now      func() time.Time
}

// NewService wires the notification flow. sink may be nil.
func NewService(payments PaymentResolver, tx Transactor, sink EventSink) *Service {
	return &Service{
		payments: payments,
		tx:       tx,
		sink:     sink,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Handle(ctx context.Context, n Notification) (Outcome, error) {
	event := Event{
		ID:         uuid.New(),
		PaymentID:  n.PaymentID,
		Type:       n.Type,
		Action:     n.Action,
		ReceivedAt: s.now(),
	}

	outcome, err := s.handle(ctx, n, &event)
	s.record(ctx, event, outcome, err)
	return outcome, err
}

func (s *Service) handle(ctx context.Context, n Notification, event *Event) (Outcome, error) {
	if n.Type != TypePayment {
		return OutcomeSkipped, nil
	}
	if n.PaymentID == "" {
		return "", fmt.Errorf("%w: notification carries no payment id", ErrResolvePayment)
	}

	payment, err := s.payments.ResolvePayment(ctx, n.PaymentID)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrResolvePayment, n.PaymentID, err)
	}

	cartID := payment.ExternalReference
	event.CartID = cartID
	if cartID == "" {
		return "", fmt.Errorf("%w: payment %s", ErrCorrelation, n.PaymentID)
	}

	paymentID := n.PaymentID
	if payment.ID != 0 {
		paymentID = strconv.FormatInt(payment.ID, 10)
	}

	var outcome Outcome
	err = s.tx.InTransaction(ctx, func(svc Services) error {
		var err error
		outcome, err = confirm(ctx, svc, cartID, n.Action, paymentID)
		return err
	})
	switch {
	case errors.Is(err, order.ErrAlreadyExists):
		// A concurrent delivery created the order first.
		return OutcomeAlreadyConfirmed, nil
	case err != nil:
		return "", fmt.Errorf("confirm cart %s: %w", cartID, err)
	}
	return outcome, nil
}

func confirm(ctx context.Context, svc Services, cartID, action, paymentID string) (Outcome, error) {
	cart, err := svc.Carts.RetrieveForUpdate(ctx, cartID)
	if err != nil {
		return "", fmt.Errorf("retrieve cart: %w", err)
	}

	if cart.Type != checkout.CartTypeDefault && cart.Type != "" {
		return OutcomeNotActionable, nil
	}
	if action != ActionPaymentCreated {
		return OutcomeNotActionable, nil
	}

	_, err = svc.Orders.RetrieveByCartID(ctx, cartID)
	switch {
	case err == nil:
		return OutcomeAlreadyConfirmed, nil
	case !errors.Is(err, order.ErrNotFound):
		return "", fmt.Errorf("retrieve order: %w", err)
	}

	if err := svc.Carts.SetPaymentSession(ctx, cartID, processor.Identifier); err != nil {
		return "", fmt.Errorf("set payment session: %w", err)
	}
	if _, err := svc.Carts.AuthorizePayment(ctx, cartID, map[string]any{"id": paymentID}); err != nil {
		return "", fmt.Errorf("authorize payment: %w", err)
	}
	if _, err := svc.Orders.CreateFromCart(ctx, cartID); err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}
	return OutcomeConfirmed, nil
}

func (s *Service) record(ctx context.Context, event Event, outcome Outcome, handleErr error) {
	event.Outcome = string(outcome)
	if handleErr != nil {
		event.Outcome = outcomeFailed
		event.Error = handleErr.Error()
	}
	metrics.NotificationsTotal.WithLabelValues(event.Action, event.Outcome).Inc()

	log := slog.With(
		slog.String("payment_id", event.PaymentID),
		slog.String("action", event.Action),
		slog.String("cart_id", event.CartID),
		slog.String("outcome", event.Outcome),
	)
	if handleErr != nil {
		log.WarnContext(ctx, "notification failed", slog.Any("error", handleErr))
	} else {
		log.InfoContext(ctx, "notification handled")
	}

	if s.sink == nil {
		return
	}
	if err := s.sink.Record(context.WithoutCancel(ctx), event); err != nil {
		log.ErrorContext(ctx, "record notification event", slog.Any("error", err))
	}
}

// Events lists recorded notifications, newest first.
func (s *Service) Events(ctx context.Context, query EventQuery) ([]Event, error) {
	if s.sink == nil {
		return nil, nil
	}
	events, err := s.sink.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list notification events: %w", err)
	}
	return events, nil
}
