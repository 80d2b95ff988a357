package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"heater_notifier/internal/config"
	"heater_notifier/internal/handlers"
	"heater_notifier/internal/logger"
	"heater_notifier/internal/repository"
	"heater_notifier/internal/repository/db"
	"heater_notifier/internal/server"
	"heater_notifier/internal/service"

	"github.com/spf13/pflag"
)

const shutdownTimeout = 10 * time.Second

// @title        Heater Notifier API
// @version      1.0
// @description  Streams ON/OFF heater decisions derived from the class schedule.
// @BasePath     /
func main() {
	configPath := pflag.StringP("config", "c", "", "path to config file (default configs/config.yml)")
	pflag.Parse()

	// load config.yml + HEATER_* env
	cfg, cfgErr := config.Load(*configPath)

	// init logger
	log := logger.Get(cfg.Log.Level)
	if cfgErr != nil {
		log.Fatalw("error reading config", "err", cfgErr)
	}

	// open DB
	conn, err := openDB(cfg, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services, err := service.NewService(repos, cfg, log)
	if err != nil {
		log.Fatalw("failed to build services", "err", err)
	}
	apiHandler := handlers.NewHandler(services, log, handlers.WithStaticDir(cfg.Static.Dir))

	// start HTTP server
	srv := server.New(cfg.Port, apiHandler.InitRoutes())
	runHTTPServer(srv, cfg.Port, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// openDB initializes the SQLite schedule store.
func openDB(cfg config.Config, log *logger.Logger) (*sql.DB, error) {
	log.Infow("opening schedule store", "path", cfg.DB.Path)
	return db.InitDB(cfg.DB.Path)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// Shutdown cancels every request context, so open streams return
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
