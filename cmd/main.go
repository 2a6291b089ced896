package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/airline-booking-simulator/internal/app/config"
	"github.com/ijalalfrz/airline-booking-simulator/internal/app/dto"
	"github.com/ijalalfrz/airline-booking-simulator/internal/app/endpoints"
	"github.com/ijalalfrz/airline-booking-simulator/internal/app/service"
	"github.com/ijalalfrz/airline-booking-simulator/internal/app/transport"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/content"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/flight"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/flightstatus"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/logger"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/random"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/simulator"
	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/store"
	"github.com/redis/go-redis/v9"
)

// @title           Airline Booking Simulator API
// @version         0.0.1
// @description     airline-booking-simulator
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})
	defer redisClient.Close()

	endpts := makeEndpoints(ctx, &cfg, redisClient)
	router := transport.MakeHTTPRouter(&cfg, endpts, redis_rate.NewLimiter(redisClient))
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	// ctx is already cancelled, give in-flight requests the server timeout to finish
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config, redisClient *redis.Client) endpoints.Endpoints {
	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	contentStore, err := content.NewDefaultStore()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load content", slog.String("error", err.Error()))
		panic(err)
	}

	src := random.New(cfg.Simulator.Seed)

	searchService := service.NewSearchService(
		flight.NewGenerator(src, contentStore),
		store.NewListingCache(redisClient),
		simulator.New("flight search", simulatorConfig(cfg, cfg.Simulator.Delay), src),
		cfg.Search.CacheTTL, cfg.Search.LockTimeout)

	bookingService := service.NewBookingService(
		searchService,
		store.NewSessionStore[dto.BookingSession](redisClient, "booking", cfg.Session.TTL, cfg.Session.LockTimeout),
		simulator.New("payment gateway", simulatorConfig(cfg, cfg.Simulator.PaymentDelay), src),
		src)

	checkInService := service.NewCheckInService(
		contentStore,
		store.NewSessionStore[dto.CheckInSession](redisClient, "checkin", cfg.Session.TTL, cfg.Session.LockTimeout),
		simulator.New("departure control", simulatorConfig(cfg, cfg.Simulator.Delay), src),
		src)

	flightStatusService := service.NewFlightStatusService(
		flightstatus.NewGenerator(src, contentStore),
		store.NewRecentSearchStore(redisClient, cfg.RecentSearches.Capacity, cfg.RecentSearches.TTL),
		simulator.New("flight status", simulatorConfig(cfg, cfg.Simulator.Delay), src))

	// init service endpoint
	return endpoints.Endpoints{
		SearchEndpoint:       endpoints.MakeSearchEndpoint(searchService),
		BookingEndpoint:      endpoints.MakeBookingEndpoint(bookingService),
		CheckInEndpoint:      endpoints.MakeCheckInEndpoint(checkInService),
		FlightStatusEndpoint: endpoints.MakeFlightStatusEndpoint(flightStatusService),
		ContentEndpoint:      endpoints.MakeContentEndpoint(service.NewContentService(contentStore)),
	}
}

func simulatorConfig(cfg *config.Config, delay time.Duration) simulator.Config {
	return simulator.Config{
		Delay:       delay,
		Timeout:     cfg.Simulator.Timeout,
		FailureRate: cfg.Simulator.FailureRate,
		MaxRetries:  cfg.Simulator.MaxRetries,
		Backoff:     cfg.Simulator.Backoff,
	}
}
