// main is the entry point of the Contacts API application.
//
// STARTUP SEQUENCE:
//  1. Load configuration (YAML file and/or environment)
//  2. Initialise the logger
//  3. Build the contact store, seeded with the sample contacts
//  4. Build the router
//  5. Start the HTTP server in a separate goroutine
//  6. Block until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, then exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/contacts-api --config=config/local.yaml
//
// or with the environment alone:
//
//	PORT=8080 API_ENVELOPE=true go run ./cmd/contacts-api
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aanand-mishra/contacts-api/internal/config"
	"github.com/aanand-mishra/contacts-api/internal/http/router"
	"github.com/aanand-mishra/contacts-api/internal/storage"
	"github.com/aanand-mishra/contacts-api/internal/storage/memory"
	"github.com/aanand-mishra/contacts-api/internal/storage/sqlite"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting contacts-api",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	// The store is owned here and handed to the handlers; nothing else
	// holds contact state.
	store, closeStore, err := newStorage(cfg)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Error("failed to close storage",
				slog.String("error", err.Error()))
		}
	}()

	log.Info("storage initialised",
		slog.String("driver", cfg.Storage.Driver))

	// ── 4. Build Router ───────────────────────────────────────────────────
	handler := router.New(store, router.Options(cfg.API), log)

	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr(),
		Handler: handler,

		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelError),
	}

	// ── 5. Start Server ───────────────────────────────────────────────────
	go func() {
		log.Info("server started",
			slog.String("address", server.Addr),
			slog.Bool("strict_ids", cfg.API.StrictIDs),
			slog.Bool("validate_email", cfg.API.ValidateEmail),
			slog.Bool("envelope", cfg.API.Envelope),
		)

		if err := server.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// ── 6. Wait for Shutdown Signal ───────────────────────────────────────
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		return
	}

	log.Info("server stopped gracefully")
}

// newStorage builds the backend selected by cfg.Storage.Driver. The
// returned func releases it.
func newStorage(cfg *config.Config) (storage.Storage, func() error, error) {
	switch cfg.Storage.Driver {
	case "sqlite":
		db, err := sqlite.New(cfg)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	case "memory":
		return memory.NewSeeded(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
