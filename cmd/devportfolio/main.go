// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the DevPortfolio server. It loads
// configuration, connects to services, sets up routing, and starts the
// HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devportfolio/internal/cache"
	"devportfolio/internal/config"
	"devportfolio/internal/database"
	"devportfolio/internal/handlers"
	"devportfolio/internal/mail"
	"devportfolio/internal/render"
	"devportfolio/internal/router"
	"devportfolio/internal/session"
	"devportfolio/internal/storage"
	"devportfolio/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

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

	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Session cookies are Secure (HTTPS-only) outside development.
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	userStore := store.NewUserStore(db)
	serviceStore := store.NewServiceStore(db)
	projectStore := store.NewProjectStore(db)
	imageStore := store.NewImageStore(db)
	testimonialStore := store.NewTestimonialStore(db)
	technologyStore := store.NewTechnologyStore(db)
	settingStore := store.NewSiteSettingStore(db)
	submissionStore := store.NewSubmissionStore(db)
	mediaStore := store.NewMediaStore(db)

	// S3-compatible object storage is optional; without it the media
	// library is disabled and image fields take external URLs.
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3BucketPublic, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3BucketPublic)
	} else {
		slog.Warn("s3 storage not configured, media uploads disabled")
	}

	// Outbound email is optional; without it contact submissions are
	// stored but nobody is notified.
	mailer := mail.New(cfg.MailAPIKey, cfg.MailFrom, cfg.MailNotifyTo)
	if mailer == nil {
		slog.Warn("mail not configured, contact notifications disabled")
	}

	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	adminHandlers := handlers.NewAdmin(
		renderer, sessionStore,
		serviceStore, projectStore, imageStore, testimonialStore, technologyStore,
		settingStore, submissionStore, userStore, mediaStore, storageClient,
		pageCache,
	)
	authHandlers := handlers.NewAuth(renderer, sessionStore, userStore)
	publicHandlers := handlers.NewPublic(
		renderer,
		settingStore, serviceStore, projectStore, imageStore, testimonialStore,
		technologyStore, submissionStore,
		mailer, pageCache,
	)

	r := router.New(sessionStore, secureCookies, adminHandlers, authHandlers, publicHandlers)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
