package app

import (
	"context"
	"fmt"

	"MercadoPagoBridge/config"
	"MercadoPagoBridge/internal/domain/notification"
	"MercadoPagoBridge/internal/external/opensearch"
	"MercadoPagoBridge/internal/repo/notification_eventsink"
	"MercadoPagoBridge/pkg/postgres"
)

func newEventSink(ctx context.Context, cfg config.Config, pool *postgres.Postgres) (notification.EventSink, error) {
	switch cfg.NotificationSink {
	case config.NotificationSinkPostgres:
		return notification_eventsink.NewPgNotificationEventRepo(pool.Pool, pool.Builder), nil
	case config.NotificationSinkOpensearch:
		return opensearch.NewNotificationSink(ctx, cfg.OpensearchUrls, cfg.OpensearchIndexNotifications)
	case config.NotificationSinkNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported notification sink %q", cfg.NotificationSink)
	}
}
