package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"activity_stream/internal/config"
	"activity_stream/internal/domain"
	"activity_stream/internal/events"
	"activity_stream/internal/provider"
	"activity_stream/internal/provider/facebook"
	"activity_stream/internal/provider/twitter"
	"activity_stream/internal/publisher"
	"activity_stream/internal/scheduler"
	"activity_stream/internal/service"
	"activity_stream/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	loc, err := cfg.Location()
	if err != nil {
		logger.Error("failed to load timezone", "timezone", cfg.Sync.Timezone, "error", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ item publisher
	itemPublisher, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.ItemRoutingKey,
		QueueName:  cfg.RabbitMQ.ItemQueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer itemPublisher.Close()

	// Initialize stores
	streamStore := postgres.NewStreamStore(db)
	streamConnStore := postgres.NewStreamConnectionStore(db)
	itemStore := postgres.NewItemStore(db)
	directory := postgres.NewConnectionDirectory(db)
	txManager := postgres.NewTransactionManager(db)

	// Register provider bundles
	registry := provider.NewRegistry()

	registry.Register(domain.ProviderTwitter, provider.Bundle{
		Adapter: twitter.NewAdapter(twitter.Config{
			BaseURL:        cfg.Providers.Twitter.BaseURL,
			Count:          cfg.Providers.Twitter.Count,
			Timeout:        cfg.Providers.Twitter.Timeout,
			MaxAttempts:    cfg.Providers.Twitter.Retry.MaxAttempts,
			InitialBackoff: cfg.Providers.Twitter.Retry.InitialBackoff,
			MaxBackoff:     cfg.Providers.Twitter.Retry.MaxBackoff,
		}, logger),
		Normalizer: twitter.NewNormalizer(loc),
		Policy:     twitter.NewPolicy(),
	})

	fbClient := facebook.NewClient(cfg.Providers.Facebook.GraphURL, cfg.Providers.Facebook.Timeout)
	registry.Register(domain.ProviderFacebook, provider.Bundle{
		Adapter: facebook.NewAdapter(facebook.Config{
			GraphURL: cfg.Providers.Facebook.GraphURL,
			Limit:    cfg.Providers.Facebook.Limit,
			Timeout:  cfg.Providers.Facebook.Timeout,
		}, logger),
		Normalizer: facebook.NewNormalizer(loc),
		Policy:     facebook.NewPolicy(fbClient, logger),
	})

	syncService := service.NewSyncService(
		registry,
		streamStore,
		streamConnStore,
		itemStore,
		directory,
		itemPublisher,
		logger,
		cfg.Sync,
	)

	reconciler := service.NewReconciler(
		streamStore,
		streamConnStore,
		directory,
		txManager,
		logger,
		cfg.Sync,
	)

	consumer, err := events.NewConsumer(events.Config{
		URL:      cfg.RabbitMQ.URL,
		Exchange: cfg.RabbitMQ.Exchange,
		Queue:    cfg.RabbitMQ.ConnectionQueue,
		BindKey:  cfg.RabbitMQ.ConnectionBindKey,
	}, reconciler, logger)
	if err != nil {
		logger.Error("failed to start change consumer", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()

	sched := scheduler.NewScheduler(syncService, streamStore, cfg.Sync.Interval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	go func() {
		if err := consumer.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("change consumer stopped", "error", err)
		}
	}()

	logger.Info("starting activity stream syncer",
		"interval", cfg.Sync.Interval,
		"timezone", cfg.Sync.Timezone,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
