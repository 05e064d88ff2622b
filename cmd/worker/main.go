package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airportdesk/config"
	"github.com/Domenick1991/airportdesk/internal/cache"
	"github.com/Domenick1991/airportdesk/internal/email"
	"github.com/Domenick1991/airportdesk/internal/kafka"
)

func main() {
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)

	if !cfg.Kafka.Enabled() {
		logger.Error("worker needs kafka.brokers and kafka.booking_topic")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Worker.DedupeTTLMinutes)*time.Minute)
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		logger.Error("connect redis", "addr", cfg.Redis.Addr, "error", err)
		os.Exit(1)
	}

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingTopic, logger)
	defer consumer.Close()

	notifier := email.NewNotifier(redisCache, email.NewSender(logger), logger)

	logger.Info("worker started", "topic", cfg.Kafka.BookingTopic, "group", cfg.Kafka.GroupID)
	if err := consumer.Consume(ctx, notifier.HandleEvent); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("consumer stopped", "error", err)
		return
	}
	logger.Info("worker stopped")
}
