package notification_eventsink

import (
	"context"
	"fmt"
	"time"

	"MercadoPagoBridge/internal/domain/notification"
	"MercadoPagoBridge/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

var eventColumns = []string{"id", "payment_id", "type", "action", "cart_id", "outcome", "error", "received_at"}

type PgNotificationEventRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

var _ notification.EventSink = (*PgNotificationEventRepo)(nil)

func NewPgNotificationEventRepo(db postgres.Executor, builder squirrel.StatementBuilderType) *PgNotificationEventRepo {
	return &PgNotificationEventRepo{db: db, builder: builder}
}

func (r *PgNotificationEventRepo) Record(ctx context.Context, e notification.Event) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	query, args, err := r.builder.Insert("notification_events").
		Columns(eventColumns...).
		Values(e.ID, e.PaymentID, e.Type, e.Action, e.CartID, e.Outcome, e.Error, e.ReceivedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert notification event: %w", err)
	}
	return nil
}

func (r *PgNotificationEventRepo) List(ctx context.Context, q notification.EventQuery) ([]notification.Event, error) {
	b := r.builder.Select(eventColumns...).
		From("notification_events").
		OrderBy("received_at DESC", "id DESC").
		Limit(uint64(clampLimit(q.Limit)))

	if q.CartID != "" {
		b = b.Where(squirrel.Eq{"cart_id": q.CartID})
	}
	if q.PaymentID != "" {
		b = b.Where(squirrel.Eq{"payment_id": q.PaymentID})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build events query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query notification events: %w", err)
	}

	events, err := parseEventRows(rows)
	if err != nil {
		return nil, fmt.Errorf("parse notification events: %w", err)
	}
	return events, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultLimit
	case limit > maxLimit:
		return maxLimit
	default:
		return limit
	}
}

func parseEventRows(rows pgx.Rows) ([]notification.Event, error) {
	defer rows.Close()

	events := []notification.Event{}
	for rows.Next() {
		var (
			e          notification.Event
			receivedAt time.Time
		)
		err := rows.Scan(&e.ID, &e.PaymentID, &e.Type, &e.Action, &e.CartID, &e.Outcome, &e.Error, &receivedAt)
		if err != nil {
			return nil, err
		}
		e.ReceivedAt = receivedAt.UTC()
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
