package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airportdesk/config"
	"github.com/Domenick1991/airportdesk/internal/bootstrap"
	"github.com/Domenick1991/airportdesk/internal/kafka"
	"github.com/Domenick1991/airportdesk/internal/repository"
	"github.com/Domenick1991/airportdesk/internal/service/airports"
	"github.com/Domenick1991/airportdesk/internal/service/booking"
	"github.com/Domenick1991/airportdesk/internal/service/flights"
)

func main() {
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var producer booking.Producer
	if cfg.Kafka.Enabled() {
		p := kafka.NewProducer(cfg.Kafka.Brokers, logger)
		defer p.Close()
		if err := p.CheckConnection(ctx); err != nil {
			logger.Warn("kafka not reachable, events will fail until it is", "error", err)
		}
		producer = p
	} else {
		logger.Info("kafka disabled, booking events will not be published")
	}

	store := repository.NewBookingStore()
	services := bootstrap.Services{
		Airports: airports.NewAirportService(store),
		Flights:  flights.NewFlightService(store),
		Bookings: booking.NewBookingService(store, producer, cfg.Kafka.BookingTopic, booking.WithLogger(logger)),
	}

	if err := bootstrap.Run(ctx, cfg, logger, services); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
