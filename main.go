package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rggevent/boardwatch/internal/cache"
	"github.com/rggevent/boardwatch/internal/config"
	"github.com/rggevent/boardwatch/internal/covers"
	"github.com/rggevent/boardwatch/internal/dashboard"
	"github.com/rggevent/boardwatch/internal/database"
	"github.com/rggevent/boardwatch/internal/gamestate"
	"github.com/rggevent/boardwatch/internal/history"
	server "github.com/rggevent/boardwatch/internal/http"
	"github.com/rggevent/boardwatch/internal/metrics"
	"github.com/rggevent/boardwatch/internal/notifier"
	"github.com/rggevent/boardwatch/internal/notifier/slack"
	"github.com/rggevent/boardwatch/internal/pubsub"
	"github.com/rggevent/boardwatch/internal/twitch"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	cfg := config.Load()
	setupLogging(cfg)

	db, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		db.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cacheStore := cache.New(db)
	counters := metrics.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	var live twitch.Checker
	if cfg.Twitch.Enabled() {
		live = twitch.NewClient(twitch.Config{
			ClientID:     cfg.Twitch.ClientID,
			ClientSecret: cfg.Twitch.ClientSecret,
			Metrics:      metricsSvc,
		})
	}

	var coverFinder covers.Finder
	if cfg.Rawg.APIKey != "" {
		coverFinder = covers.New(covers.Config{APIKey: cfg.Rawg.APIKey, Store: cacheStore})
	} else {
		log.Info("Cover lookup disabled, no RAWG_API_KEY configured")
	}

	var notify notifier.Notifier = notifier.Noop{}
	if cfg.Slack.Enabled() {
		notify = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	}

	var publisher pubsub.PubSubClient
	if cfg.ProjectID != "" {
		publisher, err = pubsub.New(ctx, cfg.ProjectID)
		if err != nil {
			log.Fatalf("Failed to initialize pubsub: %s", err)
		}
		defer publisher.Close()
	}

	board := dashboard.New(dashboard.Config{
		State:     gamestate.NewClient(cfg.Sources.StateBaseURL),
		History:   history.NewClient(cfg.Sources.HistoryBaseURL),
		Live:      live,
		Cache:     cacheStore,
		Metrics:   metricsSvc,
		Counters:  counters,
		Notifier:  notify,
		Publisher: publisher,
		Topic:     cfg.Topic,
		DryRun:    cfg.Slack.DryRun,
		Intervals: dashboard.Intervals{
			State:   cfg.Polling.State,
			History: cfg.Polling.History,
			Live:    cfg.Polling.Live,
		},
	})

	s := server.NewServer(board, coverFinder, counters, metricsSvc, metricsHandler, cfg)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	pollersDone := make(chan struct{})
	go func() {
		defer close(pollersDone)
		board.Start(ctx)
	}()

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	cancel()
	<-pollersDone
	log.Info("Server process shutting down")
}

func setupLogging(cfg config.Config) {
	if cfg.LogFormat == "json" {
		log.SetFormatter(log.JSONFormatter)
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn("Unknown log level, keeping info", "level", cfg.LogLevel)
		return
	}
	log.SetLevel(level)
}
