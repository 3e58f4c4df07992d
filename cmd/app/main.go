package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/seatbooking/config"
	"github.com/Domenick1991/seatbooking/internal/bootstrap"
	"github.com/Domenick1991/seatbooking/internal/cache"
	"github.com/Domenick1991/seatbooking/internal/kafka"
	"github.com/Domenick1991/seatbooking/internal/registry"
	"github.com/Domenick1991/seatbooking/internal/service/booking"
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

	venue, err := registry.New(cfg.Venue.Seats)
	if err != nil {
		log.Fatalf("create venue: %v", err)
	}

	var opts []booking.BookingServiceOption
	if cfg.RedisEnabled() {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Reports.TTLMinutes)*time.Minute)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			log.Fatalf("connect redis: %v", err)
		}
		opts = append(opts, booking.WithReportCache(redisCache))
	}
	if cfg.KafkaEnabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			log.Printf("WARNING: kafka not reachable, booking events may be lost: %v", err)
		}
		opts = append(opts, booking.WithEvents(producer, cfg.Kafka.BookingEventsTopic))
	}

	bookingService := booking.NewBookingService(venue, opts...)

	log.Printf("serving %d seats on %s", venue.TotalSeats(), cfg.HTTP.Address)
	if err := bootstrap.Run(ctx, cfg, bookingService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
