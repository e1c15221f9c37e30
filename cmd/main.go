package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "emolamp_server/docs"
	"emolamp_server/internal/config"
	"emolamp_server/internal/handlers"
	"emolamp_server/internal/logger"
	"emolamp_server/internal/metrics"
	"emolamp_server/internal/repository"
	"emolamp_server/internal/server"
	"emolamp_server/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title        EmoLamp Server API
// @version      1.0.0
// @description  Message relay and statistics server for the EmoLamp.
// @BasePath     /
func main() {
	// init logger; level is adjusted once config is read
	log := logger.Get(logger.InfoLevel)

	// load configs/config.yml + env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("error reading config", "err", err)
	}
	log.SetLevel(cfg.LogLevel)

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalw("invalid timezone", "err", err)
	}

	// wire dependencies
	m := metrics.New()
	repos := repository.NewRepository(repository.Limits{
		MaxLogs:          cfg.MaxLogs,
		MaxTopicMessages: cfg.MaxTopicMessages,
	}, time.Now().UnixMilli())
	services := service.NewService(repos, service.Options{
		Location: loc,
		Log:      log,
		Recorder: m,
		Janitor: service.JanitorConfig{
			SweepLogs:               cfg.Stats(),
			SweepPubSub:             cfg.PubSub(),
			LogSweepInterval:        cfg.LogSweepInterval,
			LogRetention:            cfg.LogRetention,
			MessageSweepInterval:    cfg.MessageSweepInterval,
			MessageRetention:        cfg.MessageRetention,
			SubscriberSweepInterval: cfg.SubscriberSweepInterval,
			SubscriberTimeout:       cfg.SubscriberTimeout,
		},
	})
	apiHandler := handlers.NewHandler(services, log, handlers.Options{
		PubSub:    cfg.PubSub(),
		Stats:     cfg.Stats(),
		Name:      cfg.Name,
		Version:   cfg.Version,
		PublicDir: cfg.PublicDir,
		Metrics:   m,
	})

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// retention sweeps
	go services.Janitor.Run(ctx)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)
	log.Infow("server started", "name", cfg.Name, "version", cfg.Version, "port", cfg.Port, "mode", cfg.Mode, "timezone", loc.String())

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !server.IsClosed(err) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop the janitor
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
	log.Infow("server exited")
	_ = log.Sync()
}
