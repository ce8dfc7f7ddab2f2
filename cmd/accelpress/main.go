// Package main is the entry point for the AccelPress content API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"accelpress/internal/config"
	"accelpress/internal/database"
	"accelpress/internal/handlers"
	"accelpress/internal/mailer"
	"accelpress/internal/router"
	"accelpress/internal/session"
	"accelpress/internal/store"
)

func main() {
	// Structured logger — text output, debug level.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load .env if present, then configuration from environment variables.
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Redis for the session store.
	redisClient, err := session.Connect(cfg.RedisAddr(), cfg.RedisPassword)
	if err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	sessionStore := session.NewStore(redisClient)

	// Contact notification mailer. Optional: the app works without it.
	var sender mailer.Sender
	if cfg.MailEnabled() {
		sesMailer, err := mailer.NewSES(context.Background(), cfg.AWSRegion, cfg.MailFrom)
		if err != nil {
			slog.Error("failed to initialize ses mailer", "error", err)
			os.Exit(1)
		}
		sender = sesMailer
		slog.Info("contact notifications enabled", "to", cfg.MailTo)
	} else {
		slog.Warn("contact notifications not configured, MAIL_FROM/MAIL_TO unset")
	}

	// Initialize data stores and handler groups.
	adminStore := store.NewAdminStore(db)
	settingsStore := store.NewSettingsStore(db)

	uploadHandlers := handlers.NewUploads(cfg.UploadDir)
	authHandlers := handlers.NewAuth(sessionStore, adminStore)
	settingsHandlers := handlers.NewSettings(settingsStore, uploadHandlers)

	var resources []*handlers.Resource
	for _, desc := range store.Descriptors() {
		h := handlers.NewResource(store.NewResource(db, desc))

		// Creating a contact message notifies the operator address.
		// The send runs off the request path; failures are logged only.
		if desc.Name == "contact-messages" && sender != nil {
			mailTo := cfg.MailTo
			h.AfterCreate = func(ctx context.Context, rec store.Record) {
				subject, body := mailer.ContactNotification(rec)
				if err := sender.Send(ctx, mailTo, subject, body); err != nil {
					slog.Error("contact notification failed", "error", err)
				}
			}
		}
		resources = append(resources, h)
	}

	// Set up the Chi router with all middleware and routes.
	r := router.New(sessionStore, resources, authHandlers, settingsHandlers, uploadHandlers, cfg.UploadDir)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
