// Package store binds the Postgres repositories into host services, either
// on the pool or scoped to one transaction.
package store

import (
	"context"

	"MercadoPagoBridge/internal/domain/checkout"
	"MercadoPagoBridge/internal/domain/notification"
	"MercadoPagoBridge/internal/domain/order"
	checkout_repo "MercadoPagoBridge/internal/repo/checkout"
	order_repo "MercadoPagoBridge/internal/repo/order"
	"MercadoPagoBridge/pkg/postgres"

	"github.com/Masterminds/squirrel"
)

type TxRunner interface {
	InTransaction(ctx context.Context, fn func(tx postgres.Executor) error) error
}

type PgStore struct {
	db       postgres.Executor
	tx       TxRunner
	builder  squirrel.StatementBuilderType
	provider checkout.PaymentProvider
}

var _ notification.Transactor = (*PgStore)(nil)

func NewPgStore(pg *postgres.Postgres, provider checkout.PaymentProvider) *PgStore {
	return &PgStore{
		db:       pg.Pool,
		tx:       pg,
		builder:  pg.Builder,
		provider: provider,
	}
}

// Carts returns a cart service bound to the pool.
func (s *PgStore) Carts() *checkout.CartService {
	return checkout.NewCartService(checkout_repo.NewPgCartRepo(s.db, s.builder), s.provider)
}

// Orders returns an order service bound to the pool.
func (s *PgStore) Orders() *order.OrderService {
	return order.NewOrderService(
		order_repo.NewPgOrderRepo(s.db, s.builder),
		checkout_repo.NewPgCartRepo(s.db, s.builder),
	)
}

// InTransaction hands fn cart and order services that share one Postgres
// transaction. The transaction commits only when fn returns nil.
func (s *PgStore) InTransaction(ctx context.Context, fn func(notification.Services) error) error {
	return s.tx.InTransaction(ctx, func(tx postgres.Executor) error {
		carts := checkout_repo.NewPgCartRepo(tx, s.builder)
		orders := order_repo.NewPgOrderRepo(tx, s.builder)

		return fn(notification.Services{
			Carts:  checkout.NewCartService(carts, s.provider),
			Orders: order.NewOrderService(orders, carts),
		})
	})
}
