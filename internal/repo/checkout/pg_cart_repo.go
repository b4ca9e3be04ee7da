package checkout_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"MercadoPagoBridge/internal/domain/checkout"
	"MercadoPagoBridge/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// PgCartRepo runs on whatever Executor it is given: the pool, or a
// transaction opened by the store.
type PgCartRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

var _ checkout.CartRepo = (*PgCartRepo)(nil)

func NewPgCartRepo(db postgres.Executor, builder squirrel.StatementBuilderType) *PgCartRepo {
	return &PgCartRepo{db: db, builder: builder}
}

func (r *PgCartRepo) GetCart(ctx context.Context, id string, forUpdate bool) (checkout.Cart, error) {
	q := r.builder.Select(cartColumns...).
		From("carts").
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return checkout.Cart{}, fmt.Errorf("build cart query: %w", err)
	}

	model, err := parseCartRow(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return checkout.Cart{}, checkout.ErrCartNotFound
	}
	if err != nil {
		return checkout.Cart{}, fmt.Errorf("query cart: %w", err)
	}

	items, err := r.lineItems(ctx, id)
	if err != nil {
		return checkout.Cart{}, err
	}
	return model.toDomain(items), nil
}

func (r *PgCartRepo) lineItems(ctx context.Context, cartID string) ([]checkout.LineItem, error) {
	query, args, err := r.builder.Select(lineItemColumns...).
		From("line_items").
		Where(squirrel.Eq{"cart_id": cartID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build line items query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query line items: %w", err)
	}

	items, err := parseLineItemRows(rows)
	if err != nil {
		return nil, fmt.Errorf("scan line items: %w", err)
	}
	return items, nil
}

func (r *PgCartRepo) MarkPaymentAuthorized(ctx context.Context, cartID string, at time.Time) error {
	return r.stamp(ctx, cartID, "payment_authorized_at", at)
}

func (r *PgCartRepo) MarkCompleted(ctx context.Context, cartID string, at time.Time) error {
	return r.stamp(ctx, cartID, "completed_at", at)
}

func (r *PgCartRepo) stamp(ctx context.Context, cartID, column string, at time.Time) error {
	query, args, err := r.builder.Update("carts").
		Set(column, at).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": cartID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update cart %s: %w", column, err)
	}
	if tag.RowsAffected() == 0 {
		return checkout.ErrCartNotFound
	}
	return nil
}

func (r *PgCartRepo) GetPaymentSession(ctx context.Context, cartID, providerID string) (checkout.PaymentSession, error) {
	return r.getSession(ctx, squirrel.Eq{"cart_id": cartID, "provider_id": providerID})
}

func (r *PgCartRepo) GetSelectedPaymentSession(ctx context.Context, cartID string) (checkout.PaymentSession, error) {
	return r.getSession(ctx, squirrel.Eq{"cart_id": cartID, "is_selected": true})
}

func (r *PgCartRepo) getSession(ctx context.Context, where squirrel.Eq) (checkout.PaymentSession, error) {
	query, args, err := r.builder.Select(sessionColumns...).
		From("payment_sessions").
		Where(where).
		ToSql()
	if err != nil {
		return checkout.PaymentSession{}, fmt.Errorf("build session query: %w", err)
	}

	session, err := parseSessionRow(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return checkout.PaymentSession{}, checkout.ErrSessionNotFound
	}
	if err != nil {
		return checkout.PaymentSession{}, fmt.Errorf("query payment session: %w", err)
	}
	return session, nil
}

func (r *PgCartRepo) UpsertPaymentSession(ctx context.Context, s checkout.PaymentSession) error {
	data := s.Data
	if data == nil {
		data = checkout.SessionData{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode session data: %w", err)
	}

	query, args, err := r.builder.Insert("payment_sessions").
		Columns(sessionColumns...).
		Values(s.CartID, s.ProviderID, s.IsSelected, string(s.Status), raw, s.UpdatedAt).
		Suffix(`ON CONFLICT (cart_id, provider_id) DO UPDATE SET
			is_selected = payment_sessions.is_selected OR EXCLUDED.is_selected,
			status = EXCLUDED.status,
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert payment session: %w", err)
	}
	return nil
}

// SelectPaymentSession flags providerID's session as the selected one and
// clears the flag on every other session of the cart.
func (r *PgCartRepo) SelectPaymentSession(ctx context.Context, cartID, providerID string) error {
	query, args, err := r.builder.Update("payment_sessions").
		Set("is_selected", squirrel.Expr("(provider_id = ?)", providerID)).
		Where(squirrel.Eq{"cart_id": cartID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build select query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("select payment session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return checkout.ErrSessionNotFound
	}
	return nil
}
