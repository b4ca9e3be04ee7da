package app

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"MercadoPagoBridge/config"
	"MercadoPagoBridge/internal/controller/rest"
	"MercadoPagoBridge/internal/controller/rest/handlers"
	"MercadoPagoBridge/internal/domain/notification"
	"MercadoPagoBridge/internal/domain/processor"
	"MercadoPagoBridge/internal/external/kafka"
	"MercadoPagoBridge/internal/external/mercadopago"
	"MercadoPagoBridge/internal/repo/store"
	"MercadoPagoBridge/internal/webhook"
	"MercadoPagoBridge/pkg/health"
	"MercadoPagoBridge/pkg/logger"
	"MercadoPagoBridge/pkg/postgres"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

const shutdownTimeout = 5 * time.Second

func Run(cfg config.Config) {
	logger.Setup(logger.Options{
		Level:   cfg.LogLevel,
		Console: cfg.LogFormat == "console",
		Service: "mercadopago-bridge",
	})

	if err := run(cfg); err != nil {
		slog.Error("app - Run", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		return fmt.Errorf("postgres.New: %w", err)
	}
	defer pool.Close()

	if err := ApplyMigrations(ctx, cfg.PgURL, MIGRATION_FS); err != nil {
		return fmt.Errorf("ApplyMigrations: %w", err)
	}

	mpClient := mercadopago.NewClient(mercadopago.Config{
		BaseURL:     cfg.MercadoPagoBaseURL,
		AccessToken: cfg.MercadoPagoAccessToken,
		Timeout:     cfg.MercadoPagoTimeout,
		Retry: mercadopago.RetryConfig{
			MaxAttempts: cfg.MercadoPagoRetryAttempts,
			BaseDelay:   mercadopago.DefaultRetryConfig().BaseDelay,
			MaxDelay:    mercadopago.DefaultRetryConfig().MaxDelay,
		},
	})
	defer func() { _ = mpClient.Close() }()

	mp := processor.New(mpClient, processor.Options{
		PublicKey:      cfg.MercadoPagoPublicKey,
		SuccessBackURL: cfg.MercadoPagoSuccessBackURL,
		WebhookBaseURL: cfg.MercadoPagoWebhookURL,
		Timeout:        cfg.MercadoPagoTimeout,
	})

	pgStore := store.NewPgStore(pool, mp)

	sink, err := newEventSink(ctx, cfg, pool)
	if err != nil {
		return fmt.Errorf("newEventSink: %w", err)
	}
	notifications := notification.NewService(mp, pgStore, sink)

	healthRegistry := health.NewRegistry(health.NewPostgresChecker(pool.Pool))

	var proc webhook.Processor
	switch cfg.WebhookMode {
	case config.WebhookModeKafka:
		slog.Info("Webhook mode: kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaNotificationsTopic)
		publisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaNotificationsTopic)
		defer func() { _ = publisher.Close() }()
		proc = webhook.NewAsyncProcessor(publisher)

		stopWorkers := StartWorkers(ctx, cfg, notifications)
		defer stopWorkers()

		healthRegistry.Add(health.NewKafkaChecker(cfg.KafkaBrokers))
	case config.WebhookModeSync:
		proc = webhook.NewSyncProcessor(notifications)
	default:
		return fmt.Errorf("unsupported webhook mode %q", cfg.WebhookMode)
	}

	carts := pgStore.Carts()
	router := rest.NewRouter(
		handlers.NewNotificationHandler(proc, cfg.MercadoPagoWebhookSecret, cfg.MercadoPagoWebhookTolerance),
		handlers.NewCheckoutHandler(carts, pgStore.Orders()),
		handlers.NewAdminHandler(mp, notifications),
		healthRegistry,
	)

	engine := NewGinEngine()
	router.SetUp(engine)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	go func() {
		slog.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
