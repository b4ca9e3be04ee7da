package order_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"MercadoPagoBridge/internal/domain/order"
	"MercadoPagoBridge/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{
	"id", "cart_id", "currency_code", "total",
	"provider_id", "provider_payment_id", "status", "created_at",
}

type PgOrderRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

var _ order.OrderRepo = (*PgOrderRepo)(nil)

func NewPgOrderRepo(db postgres.Executor, builder squirrel.StatementBuilderType) *PgOrderRepo {
	return &PgOrderRepo{db: db, builder: builder}
}

func (r *PgOrderRepo) GetByCartID(ctx context.Context, cartID string) (order.Order, error) {
	query, args, err := r.builder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"cart_id": cartID}).
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("build order query: %w", err)
	}

	o, err := parseOrderRow(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return order.Order{}, order.ErrNotFound
	}
	if err != nil {
		return order.Order{}, fmt.Errorf("query order: %w", err)
	}
	return o, nil
}

// Create maps the orders_cart_id_key violation to order.ErrAlreadyExists.
// Inside a transaction the violation also aborts it, so callers must not
// issue further statements on the same tx.
func (r *PgOrderRepo) Create(ctx context.Context, o order.Order) error {
	query, args, err := r.builder.Insert("orders").
		Columns(orderColumns...).
		Values(o.ID, o.CartID, o.CurrencyCode, o.Total, o.ProviderID, o.ProviderPaymentID, string(o.Status), o.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if postgres.IsPgErrorUniqueViolation(err) {
			return order.ErrAlreadyExists
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

type orderModel struct {
	ID                uuid.UUID
	CartID            string
	CurrencyCode      string
	Total             int64
	ProviderID        string
	ProviderPaymentID string
	Status            string
	CreatedAt         time.Time
}

func parseOrderRow(row pgx.Row) (order.Order, error) {
	var m orderModel
	err := row.Scan(&m.ID,
		&m.CartID,
		&m.CurrencyCode,
		&m.Total,
		&m.ProviderID,
		&m.ProviderPaymentID,
		&m.Status,
		&m.CreatedAt)
	if err != nil {
		return order.Order{}, err
	}

	return order.Order{
		ID:                m.ID,
		CartID:            m.CartID,
		CurrencyCode:      m.CurrencyCode,
		Total:             m.Total,
		ProviderID:        m.ProviderID,
		ProviderPaymentID: m.ProviderPaymentID,
		Status:            order.Status(m.Status),
		CreatedAt:         m.CreatedAt,
	}, nil
}
