package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"spotBooker/internal/config"
	"spotBooker/internal/events"
	"spotBooker/internal/http-server/handlers/booking/createBooking"
	"spotBooker/internal/http-server/handlers/booking/getBookings"
	"spotBooker/internal/http-server/handlers/review/createReview"
	"spotBooker/internal/http-server/handlers/review/getReviews"
	"spotBooker/internal/http-server/handlers/spot/createSpot"
	"spotBooker/internal/http-server/handlers/spot/deleteSpot"
	"spotBooker/internal/http-server/handlers/spot/getCurrentSpots"
	"spotBooker/internal/http-server/handlers/spot/getSpot"
	"spotBooker/internal/http-server/handlers/spot/getSpots"
	"spotBooker/internal/http-server/handlers/spot/updateSpot"
	"spotBooker/internal/http-server/middleware/mwauth"
	"spotBooker/internal/http-server/middleware/mwlogger"
	"spotBooker/internal/lib/logger/handlers/slogpretty"
	"spotBooker/internal/lib/logger/sl"
	"spotBooker/internal/lib/metrics"
	"spotBooker/internal/storage/cache"
	"spotBooker/internal/storage/postgres"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const serviceName = "spot-booker"

// spotService is served either by postgres directly or through the redis cache.
type spotService interface {
	getSpot.SpotGetter
	createReview.ReviewCreator
	updateSpot.SpotUpdater
	deleteSpot.SpotDeleter
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting spot booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err = storage.Migrate(ctx); err != nil {
		log.Error("failed to apply schema", sl.Err(err))
		os.Exit(1)
	}

	var spots spotService = storage

	if cfg.Redis.Address != "" {
		rdb, err := cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn("redis unavailable, spot details cache disabled", sl.Err(err))
		} else {
			defer rdb.Close()
			spots = cache.New(log, rdb, storage, cfg.Redis.TTL)
		}
	}

	var (
		publisher createBooking.BookingPublisher = events.Nop{}
		producer  *events.Producer
	)

	if len(cfg.Kafka.Brokers) > 0 {
		producer = events.NewProducer(log, cfg.Kafka.Brokers, cfg.Kafka.Topic, serviceName, cfg.Kafka.Buffer)
		producer.Start(ctx)
		publisher = producer
	} else {
		log.Info("no kafka brokers configured, booking events disabled")
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Handle("/metrics", metrics.Handler())

	router.Route("/api/spots", func(r chi.Router) {
		r.Get("/", getSpots.New(log, storage))
		r.Get("/{id}", getSpot.New(log, spots))
		r.Get("/{id}/reviews", getReviews.New(log, storage))

		r.Group(func(r chi.Router) {
			r.Use(mwauth.New(log, cfg.Auth.JWTSecret))

			r.Post("/", createSpot.New(log, storage))
			r.Get("/current", getCurrentSpots.New(log, storage))
			r.Put("/{id}", updateSpot.New(log, spots))
			r.Delete("/{id}", deleteSpot.New(log, spots))
			r.Get("/{id}/bookings", getBookings.New(log, storage))
			r.Post("/{id}/bookings", createBooking.New(log, storage, publisher))
			r.Post("/{id}/reviews", createReview.New(log, spots))
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	cancel()
	if producer != nil {
		producer.WaitClosed()
		log.Info("kafka producer closed")
	}

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
