package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/capboard/internal/clients/wikipedia"
	"github.com/aristath/capboard/internal/clients/yahoo"
	"github.com/aristath/capboard/internal/config"
	"github.com/aristath/capboard/internal/events"
	"github.com/aristath/capboard/internal/modules/leaderboard"
	"github.com/aristath/capboard/internal/scheduler"
	"github.com/aristath/capboard/internal/server"
	"github.com/aristath/capboard/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		errLog := logger.New(logger.Config{Level: "error", Pretty: true})
		errLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting capboard")

	// Wire the pipeline
	eventManager := events.NewManager(log)
	lister := wikipedia.NewClient(cfg.ConstituentsURL, log)
	quotes := yahoo.NewClient(cfg.QuoteURL, log)
	cache := leaderboard.NewResultCache(cfg.CacheTTL, leaderboard.SystemClock(), log)

	progressLog := log.With().Str("component", "fetch_progress").Logger()
	service := leaderboard.NewService(
		lister,
		quotes,
		cache,
		eventManager,
		cfg.QuoteRateLimit,
		func(completed, total int, symbol string) {
			if completed%50 == 0 || completed == total {
				progressLog.Debug().
					Int("completed", completed).
					Int("total", total).
					Str("symbol", symbol).
					Msg("Fetching quotes")
			}
		},
		log,
	)

	// Initialize scheduler with the cache-warm job
	sched := scheduler.New(log)
	warmJob := scheduler.NewWarmJob(service, 10*time.Minute, log)
	if err := sched.AddJob(cfg.WarmSchedule, warmJob); err != nil {
		log.Fatal().Err(err).Msg("Failed to register warm job")
	}
	sched.Start()
	defer sched.Stop()

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:        cfg.Port,
		Log:         log,
		Leaderboard: leaderboard.NewHandler(service, log),
		DevMode:     cfg.DevMode,
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
