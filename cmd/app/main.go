package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ananyev/airtravel/api"
	"github.com/ananyev/airtravel/config"
	"github.com/ananyev/airtravel/internal/bootstrap"
	"github.com/ananyev/airtravel/internal/cache"
	"github.com/ananyev/airtravel/internal/kafka"
	"github.com/ananyev/airtravel/internal/liveflights"
	"github.com/ananyev/airtravel/internal/repository"
	"github.com/ananyev/airtravel/internal/service/booking"
	"github.com/ananyev/airtravel/internal/service/flights"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	txManager := repository.NewTxManager(pool)
	passengerRepo := repository.NewPassengerRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)

	flightService := flights.NewFlightService(flightRepo, redisCache)
	bookingService := booking.NewBookingService(
		txManager,
		passengerRepo,
		flightRepo,
		reservationRepo,
		producer,
		cfg.Kafka.BookingTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithCache(redisCache),
	)

	liveClient := liveflights.NewClient(cfg.LiveFlights.BaseURL, time.Duration(cfg.LiveFlights.TimeoutSeconds)*time.Second)

	flightHandler := api.NewFlightHandler(flightService, liveClient)
	bookingHandler := api.NewBookingHandler(bookingService)

	if err := bootstrap.Run(ctx, cfg, flightHandler, bookingHandler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
