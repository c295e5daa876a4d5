package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"equipdash/db"
	"equipdash/internal/config"
	"equipdash/internal/dashboard"
	"equipdash/internal/logging"
	"equipdash/internal/web"
	"equipdash/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Logger.WithError(err).Fatal("Failed to load configuration")
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)
	log := logging.Logger

	log.WithFields(logrus.Fields{
		"pid":     os.Getpid(),
		"runtime": runtime.GOOS + "/" + runtime.GOARCH,
		"go":      runtime.Version(),
		"driver":  cfg.Database.Driver,
	}).Info("Starting equipment dashboard")

	connector, err := newConnector(cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to prepare database connector")
	}
	defer connector.Close()

	service := dashboard.NewService(connector, log)
	webHandler, err := web.NewWebHandler(service, log.WithField("component", "web"))
	if err != nil {
		log.WithError(err).Fatal("Failed to parse templates")
	}
	router := webHandler.SetupRoutes()
	loggedRouter := middleware.LoggingMiddleware(log, router)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           loggedRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Server is starting on port %s...", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server ListenAndServe error")
		}
	}()

	waitForShutdown(server, log)
}

// newConnector opens the configured database. SQLite is opened eagerly with
// the local development schema; network databases connect lazily per query so
// an outage degrades pages instead of blocking start-up.
func newConnector(cfg config.DatabaseConfig, log logrus.FieldLogger) (*db.Connector, error) {
	if cfg.Driver != config.SQLite {
		return db.NewConnector(cfg, log)
	}

	sqliteDB, err := db.ConnectToSQLite(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	if err := db.InitializeSchema(sqliteDB); err != nil {
		sqliteDB.Close()
		return nil, err
	}
	log.WithField("path", cfg.SQLitePath).Info("Using SQLite database")
	return db.NewConnectorWithDB(sqliteDB, db.SQLiteDialect, cfg.QueryTimeout, log), nil
}

func waitForShutdown(server *http.Server, log logrus.FieldLogger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	sig := <-stop
	log.WithField("signal", sig.String()).Info("Received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("Shutting down the server...")
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server Shutdown error")
		return
	}
	log.Info("Server stopped")
}
