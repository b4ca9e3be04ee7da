package processor

import (
	"context"
	"strings"
	"time"

	"MercadoPagoBridge/internal/domain/checkout"
	"MercadoPagoBridge/internal/domain/gateway"
)

const (
	Identifier = "mercadopago"
	// HookPath is appended to the configured webhook base URL.
	HookPath = "/mercadopago/hooks"
)

type Options struct {
	PublicKey      string
	SuccessBackURL string
	WebhookBaseURL string
	// Timeout bounds every call to Mercado Pago. Zero means no extra bound.
	Timeout time.Duration
}

// Processor adapts the Mercado Pago preference and payment API to the host
// payment provider contract.
type Processor struct {
	gw         gateway.Gateway
	opts       Options
	webhookURL string
}

var _ checkout.PaymentProvider = (*Processor)(nil)

func New(gw gateway.Gateway, opts Options) *Processor {
	return &Processor{
		gw:         gw,
		opts:       opts,
		webhookURL: strings.TrimRight(opts.WebhookBaseURL, "/") + HookPath,
	}
}

func (p *Processor) Identifier() string {
	return Identifier
}

func (p *Processor) Initiate(ctx context.Context, pctx checkout.PaymentContext) (checkout.SessionData, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	pref, err := p.gw.CreatePreference(ctx, p.preference(pctx))
	if err != nil {
		return nil, buildError(KindProvider, "Trying create preference", err)
	}
	return p.sessionData(pref), nil
}

// Update refreshes the preference created by Initiate with the cart's
// current contents.
func (p *Processor) Update(ctx context.Context, pctx checkout.PaymentContext) (checkout.SessionData, error) {
	preferenceID := pctx.SessionData.String("preference_id")
	if preferenceID == "" {
		return nil, buildError(KindConfiguration, "Preference id is not passing.", nil)
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	pref, err := p.gw.UpdatePreference(ctx, preferenceID, p.preference(pctx))
	if err != nil {
		return nil, buildError(KindProvider, "Trying update preference", err)
	}
	return p.sessionData(pref), nil
}

// AuthorizePayment reads the payment id from authCtx, not from the session.
func (p *Processor) AuthorizePayment(ctx context.Context, data checkout.SessionData, authCtx map[string]any) (checkout.AuthorizeResult, error) {
	paymentID := checkout.SessionData(authCtx).String("id")

	payment, err := p.ResolvePayment(ctx, paymentID)
	if err != nil {
		return checkout.AuthorizeResult{}, buildError(KindProvider, "Error retrieving payment in authorize payment", err)
	}

	return checkout.AuthorizeResult{
		Status: MapStatus(payment.Status),
		Data: data.Merge(map[string]any{
			"id":     paymentID,
			"status": payment.Status,
		}),
	}, nil
}

// GetPaymentStatus maps the status stored by AuthorizePayment without
// calling Mercado Pago.
func (p *Processor) GetPaymentStatus(_ context.Context, data checkout.SessionData) (checkout.SessionStatus, error) {
	return MapStatus(data.String("status")), nil
}

// CapturePayment succeeds only for payments Mercado Pago already captured.
func (p *Processor) CapturePayment(_ context.Context, data checkout.SessionData) (checkout.SessionData, error) {
	if data.Bool("captured") {
		return data, nil
	}
	return nil, buildError(KindNotImplemented, "Error capturing payment", nil)
}

func (p *Processor) RetrievePayment(ctx context.Context, data checkout.SessionData) (checkout.SessionData, error) {
	payment, err := p.ResolvePayment(ctx, data.String("id"))
	if err != nil {
		return nil, buildError(KindProvider, "Error retrieving payment data", err)
	}

	if len(payment.Raw) > 0 {
		return checkout.SessionData{}.Merge(payment.Raw), nil
	}
	return checkout.SessionData{
		"id":                 payment.ID,
		"status":             payment.Status,
		"status_detail":      payment.StatusDetail,
		"external_reference": payment.ExternalReference,
		"transaction_amount": payment.TransactionAmount,
		"currency_id":        payment.CurrencyID,
		"captured":           payment.Captured,
	}, nil
}

// ResolvePayment fetches a payment by id under the processor timeout.
func (p *Processor) ResolvePayment(ctx context.Context, paymentID string) (gateway.Payment, error) {
	if paymentID == "" {
		return gateway.Payment{}, buildError(KindConfiguration, "Payment id is missing", nil)
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	payment, err := p.gw.GetPayment(ctx, paymentID)
	if err != nil {
		return gateway.Payment{}, err
	}
	return payment, nil
}

// SearchPayments lists the payments Mercado Pago holds for a cart.
func (p *Processor) SearchPayments(ctx context.Context, cartID string) ([]gateway.Payment, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	payments, err := p.gw.SearchPayments(ctx, gateway.PaymentSearch{
		ExternalReference: cartID,
		Sort:              "date_created",
		Criteria:          "desc",
	})
	if err != nil {
		return nil, buildError(KindProvider, "Error searching payments", err)
	}
	return payments, nil
}

func (p *Processor) CancelPayment(context.Context, checkout.SessionData) (checkout.SessionData, error) {
	return nil, notImplemented(CapCancel)
}

func (p *Processor) RefundPayment(context.Context, checkout.SessionData, int64) (checkout.SessionData, error) {
	return nil, notImplemented(CapRefund)
}

func (p *Processor) DeletePayment(context.Context, checkout.SessionData) (checkout.SessionData, error) {
	return nil, notImplemented(CapDelete)
}

func (p *Processor) UpdatePaymentData(context.Context, string, checkout.SessionData) (checkout.SessionData, error) {
	return nil, notImplemented(CapUpdatePaymentData)
}

func notImplemented(c Capability) *Error {
	return buildError(KindNotImplemented, string(c)+" is not supported by mercadopago", nil)
}

func (p *Processor) sessionData(pref gateway.PreferenceResponse) checkout.SessionData {
	return checkout.SessionData{
		"public_key":          p.opts.PublicKey,
		"preference_id":       pref.ID,
		"payment_url":         pref.InitPoint,
		"payment_sandbox_url": pref.SandboxInitPoint,
	}
}

func (p *Processor) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.opts.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.opts.Timeout)
}
