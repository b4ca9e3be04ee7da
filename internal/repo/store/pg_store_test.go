package store

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"MercadoPagoBridge/internal/domain/checkout"
	"MercadoPagoBridge/internal/domain/notification"
	"MercadoPagoBridge/internal/domain/order"
	"MercadoPagoBridge/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockTxRunner mirrors postgres.Postgres.InTransaction on a pgxmock pool.
type mockTxRunner struct {
	pool pgxmock.PgxPoolIface
}

func (r mockTxRunner) InTransaction(ctx context.Context, fn func(tx postgres.Executor) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(context.WithoutCancel(ctx)) }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func newMockStore(t *testing.T) (*PgStore, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	provider := checkout.NewMockPaymentProvider(gomock.NewController(t))
	provider.EXPECT().Identifier().Return("mercadopago").AnyTimes()

	return &PgStore{
		db:       mock,
		tx:       mockTxRunner{pool: mock},
		builder:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		provider: provider,
	}, mock
}

func TestPgStore_InTransaction(t *testing.T) {
	ctx := context.Background()
	selectOrder := regexp.QuoteMeta(`FROM orders WHERE cart_id = $1`)

	t.Run("should commit when unit of work succeeds", func(t *testing.T) {
		s, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery(selectOrder).WithArgs("cart_1").WillReturnError(pgx.ErrNoRows)
		mock.ExpectCommit()

		err := s.InTransaction(ctx, func(svc notification.Services) error {
			_, err := svc.Orders.RetrieveByCartID(ctx, "cart_1")
			assert.ErrorIs(t, err, order.ErrNotFound)
			return nil
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should roll back when unit of work fails", func(t *testing.T) {
		s, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`FROM carts WHERE id = $1 FOR UPDATE`)).
			WithArgs("cart_404").
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		err := s.InTransaction(ctx, func(svc notification.Services) error {
			_, err := svc.Carts.RetrieveForUpdate(ctx, "cart_404")
			return err
		})

		assert.ErrorIs(t, err, checkout.ErrCartNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
