package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/api"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/ports"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/service"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/infrastructure/db/redis"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/infrastructure/queue"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/infrastructure/seed"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/infrastructure/session"
	"github.com/Elvis-12/sky-wanderer-control-center/internal/pkg/config"
	"github.com/Elvis-12/sky-wanderer-control-center/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	directory, err := seed.NewAccountDirectory()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build account directory")
	}

	// --- Session store: file (default), redis, or memory ---
	var (
		sessions ports.SessionStore
		rdb      *goredis.Client
	)
	switch cfg.SessionBackend {
	case "redis":
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb, logger.With("session"))
	case "memory":
		sessions = session.NewMemoryStore()
	default:
		store, err := session.NewFileStore(cfg.StateDir, logger.With("session"))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open session store")
		}
		sessions = store
	}
	sessions.Load(ctx)

	// --- Activity trail, recorded off the auth path ---
	activity := service.NewActivityService(logger.With("activity"))
	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, activity, logger.With("dispatcher"))
	dispatcher.Start(ctx)

	// --- Core services over the fixed seed data ---
	authService := service.NewAuthService(directory, sessions, dispatcher, cfg.AuthLatency, logger.With("auth"))
	flightService := service.NewFlightService(seed.Flights(), logger.With("flights"))
	bookingService := service.NewBookingService(seed.Bookings(), logger.With("bookings"))
	ticketService := service.NewTicketService(seed.Tickets(), logger.With("tickets"))
	memberService := service.NewMemberService(seed.Members(), logger.With("members"))
	statsService := service.NewStatsService(seed.Stats())

	e := api.NewRouter(api.Deps{
		Auth:      authService,
		Flights:   flightService,
		Bookings:  bookingService,
		Tickets:   ticketService,
		Members:   memberService,
		Stats:     statsService,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		Logger:    logger.With("http"),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
