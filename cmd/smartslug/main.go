// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the smartslug API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
//
// "smartslug describe" prints the slug field descriptors as YAML and exits.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"smartslug/internal/cache"
	"smartslug/internal/config"
	"smartslug/internal/database"
	"smartslug/internal/handlers"
	"smartslug/internal/models"
	"smartslug/internal/router"
	"smartslug/internal/slugfield"
	"smartslug/internal/store"
)

func main() {
	// Structured logger. Debug level shows slug disambiguation retries.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables and an optional .env.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	fields := models.NewFieldSet(cfg.ReservedSlugs, cfg.MaxSlugAttempts)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "describe":
			if err := describe(os.Stdout, fields); err != nil {
				slog.Error("describe failed", "error", err)
				os.Exit(1)
			}
			return
		default:
			fmt.Fprintf(os.Stderr, "usage: %s [describe]\n", os.Args[0])
			os.Exit(2)
		}
	}

	if err := serve(cfg, fields); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped gracefully")
}

// describe writes the slug field descriptors as a YAML document.
func describe(w io.Writer, fields models.FieldSet) error {
	out, err := slugfield.MarshalDescriptors(fields.Describe())
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func serve(cfg *config.Config, fields models.FieldSet) error {
	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"reserved_slugs", len(cfg.ReservedSlugs),
		"max_slug_attempts", cfg.MaxSlugAttempts,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Connect to Valkey. The service works without it, only slower.
	var valkeyClient *redis.Client
	if cfg.CacheEnabled() {
		valkeyClient, err = cache.ConnectValkey(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unavailable, slug cache disabled", "error", err)
			valkeyClient = nil
		} else {
			defer valkeyClient.Close()
		}
	} else {
		slog.Info("slug cache disabled by configuration")
	}
	slugCache := cache.NewSlugCache(valkeyClient, cfg.SlugCacheTTL)

	checker := func(table string) slugfield.Checker {
		return slugCache.Wrap(table, store.NewSQLChecker(db, table, models.AttrSlug))
	}

	// Initialize data stores.
	postStore := store.NewPostStore(db, fields.Post, checker(store.PostsTable))
	pageStore := store.NewPageStore(db, fields.Page, checker(store.PagesTable))
	categoryStore := store.NewCategoryStore(db, fields.Category, checker(store.CategoriesTable))

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := store.Seed(ctx, pageStore, categoryStore); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
	}

	api := handlers.NewAPI(postStore, pageStore, categoryStore, fields.Describe(), slugCache)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.New(api),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
