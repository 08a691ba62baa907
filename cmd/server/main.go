package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jetfleet-backoffice/internal/config"
	"jetfleet-backoffice/internal/logger"
	"jetfleet-backoffice/internal/notify"
	"jetfleet-backoffice/internal/persistence"
	"jetfleet-backoffice/internal/persistence/postgres"
	"jetfleet-backoffice/internal/security"
	"jetfleet-backoffice/internal/service"
	"jetfleet-backoffice/internal/session"
	"jetfleet-backoffice/internal/store"
	syncops "jetfleet-backoffice/internal/sync"

	httpapi "jetfleet-backoffice/internal/api/http"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting JetFleet back office...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Persistence configuration", "backend", cfg.Persistence.Backend)

	// Initialize persistence collaborator
	var client persistence.Client
	switch cfg.Persistence.Backend {
	case "postgres":
		logger.Debug("Connecting to database...", "connection_string",
			fmt.Sprintf("%s@%s:%d/%s", cfg.Persistence.Database.User, cfg.Persistence.Database.Host,
				cfg.Persistence.Database.Port, cfg.Persistence.Database.Database))
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Error("Failed to ping database", "error", err)
			log.Fatalf("Failed to ping database: %v", err)
		}
		logger.Info("Database connection established")
		client = postgres.NewClient(db)
	default:
		logger.Info("Using hosted REST persistence", "base_url", cfg.Persistence.REST.BaseURL)
		client = persistence.NewRESTClient(cfg.Persistence.REST.BaseURL, cfg.Persistence.REST.APIKey)
	}

	// Initialize entity store, notifications and session
	st := store.New()
	notes := notify.NewCenter(time.Duration(cfg.UI.NotificationTTLSeconds) * time.Second)
	sess := session.New()

	// Initialize sync operations
	sync := &syncops.Services{
		Users:      syncops.NewUserSync(client, st, notes, sess),
		Rentals:    syncops.NewRentalSync(client, st, notes),
		Costs:      syncops.NewCostSync(client, st, notes),
		Locations:  syncops.NewLocationSync(client, st, notes),
		Fleet:      syncops.NewFleetSync(client, st, notes),
		Checklists: syncops.NewChecklistSync(client, st, notes),
		Settings:   syncops.NewSettingsSync(client, st, notes),
	}

	// Initialize security and auth
	tokenManager := security.NewTokenManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.Auth.RefreshTokenExpiry)*time.Minute,
	)
	auth := service.NewAuthService(client, st, sess, sync.Users, tokenManager, sync.LoadAll)

	// Initialize HTTP API
	api := httpapi.NewAPI(st, sync, auth, sess, notes, tokenManager, cfg.UI.PageSize)
	router := httpapi.NewRouter(api)

	addr := cfg.GetServerAddress()
	srv := &http.Server{Addr: addr, Handler: router}

	go func() {
		logger.Info("HTTP server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt, then drain in-flight requests before exiting.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
