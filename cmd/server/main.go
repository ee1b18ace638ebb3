// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

// Command server runs the SmartFridge HTTP service: pantry-aware
// recipe search with event-driven usage analytics.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fridgeworks/smartfridge/internal/analytics"
	"github.com/fridgeworks/smartfridge/internal/api"
	"github.com/fridgeworks/smartfridge/internal/catalog"
	"github.com/fridgeworks/smartfridge/internal/config"
	"github.com/fridgeworks/smartfridge/internal/eventbus"
	"github.com/fridgeworks/smartfridge/internal/logging"
	"github.com/fridgeworks/smartfridge/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("store_backend", cfg.Store.Backend).
		Str("catalog_path", cfg.Catalog.Path).
		Int("port", cfg.Server.Port).
		Msg("Starting SmartFridge server")

	// Catalog: configured file or the embedded default corpus.
	var cat *catalog.Catalog
	if cfg.Catalog.Path != "" {
		cat, err = catalog.NewFromFile(cfg.Catalog.Path)
	} else {
		cat, err = catalog.New()
	}
	if err != nil {
		return fmt.Errorf("loading recipe catalog: %w", err)
	}
	logging.Info().Int("recipes", cat.Len()).Msg("Recipe catalog loaded")

	if cfg.Catalog.Watch {
		watcher, werr := catalog.NewWatcher(cat, cfg.Catalog.Path)
		if werr != nil {
			return fmt.Errorf("starting catalog watcher: %w", werr)
		}
		watcher.Start()
		defer func() {
			if cerr := watcher.Stop(); cerr != nil {
				logging.Warn().Err(cerr).Msg("Failed to stop catalog watcher")
			}
		}()
	}

	factory, err := store.NewFactory(store.BackendType(cfg.Store.Backend), cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("initializing store backend: %w", err)
	}
	defer func() {
		if cerr := factory.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("Failed to close store backend")
		}
	}()
	st := factory.CreateStore()

	// Event wiring. Registration order is delivery order, so the
	// aggregator subscribes before the audit observer.
	bus := eventbus.New()
	aggregator := analytics.NewAggregator(cfg.Analytics.RecentSearchLimit)
	aggregator.Register(bus)
	analytics.NewObserver().Register(bus)

	handler := api.NewHandler(st, cat, bus, aggregator, cfg, factory.Backend())

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           handler.NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if serr := server.ListenAndServe(); serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			errCh <- serr
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	logging.Info().Msg("Server stopped")
	return nil
}
