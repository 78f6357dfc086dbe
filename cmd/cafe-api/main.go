// main is the entry point of the Café API application.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Initialise the storage backend (in-memory by default, SQLite
//     when storage_driver: sqlite is configured)
//  4. Register all HTTP routes
//  5. Start the HTTP server in a separate goroutine
//  6. Block the main goroutine until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, then exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/cafe-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/cafe-api
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aanand-mishra/cafe-api/internal/config"
	"github.com/aanand-mishra/cafe-api/internal/http/handlers/contact"
	"github.com/aanand-mishra/cafe-api/internal/http/handlers/health"
	menuhandler "github.com/aanand-mishra/cafe-api/internal/http/handlers/menu"
	"github.com/aanand-mishra/cafe-api/internal/http/handlers/newsletter"
	"github.com/aanand-mishra/cafe-api/internal/http/handlers/reservation"
	"github.com/aanand-mishra/cafe-api/internal/storage"
	"github.com/aanand-mishra/cafe-api/internal/storage/memory"
	"github.com/aanand-mishra/cafe-api/internal/storage/sqlite"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	log := setupLogger(cfg.Env)

	log.Info("starting cafe-api",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	// Both backends implement storage.Storage, and the rest of the code
	// only ever sees the interface. The in-memory store is the default:
	// reservations and contact messages are working data, not records of
	// account — losing them on restart is acceptable for this site.
	var store storage.Storage
	switch cfg.StorageDriver {
	case "sqlite":
		s, err := sqlite.New(cfg)
		if err != nil {
			log.Error("failed to initialise storage",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		store = s
		log.Info("storage initialised",
			slog.String("driver", "sqlite"),
			slog.String("path", cfg.StoragePath))
	default:
		store = memory.New()
		log.Info("storage initialised", slog.String("driver", "memory"))
	}

	// ── 4. Register HTTP Routes ───────────────────────────────────────────
	// The handler functions are FACTORIES — they receive `store` once and
	// return the actual per-request handler (dependency injection via
	// closures, no package-level state).
	//
	// Route table:
	//   POST /api/reservations  → create a reservation
	//   GET  /api/reservations  → list reservations, newest first
	//   POST /api/contacts      → create a contact message
	//   GET  /api/contacts      → list contact messages, newest first
	//   POST /api/newsletters   → subscribe an email (once)
	//   GET  /api/menu          → the menu catalogue (?category= filter)
	//   GET  /api/health        → liveness probe
	router := http.NewServeMux()

	router.HandleFunc("POST /api/reservations", reservation.New(store))
	router.HandleFunc("GET /api/reservations", reservation.GetList(store))
	router.HandleFunc("POST /api/contacts", contact.New(store))
	router.HandleFunc("GET /api/contacts", contact.GetList(store))
	router.HandleFunc("POST /api/newsletters", newsletter.Subscribe(store))
	router.HandleFunc("GET /api/menu", menuhandler.GetList())
	router.HandleFunc("GET /api/health", health.Check())

	// ── 5. Create the HTTP Server ─────────────────────────────────────────
	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: router,

		// Timeouts guard against slow clients holding connections open.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ── 6. Start Server in a Goroutine ────────────────────────────────────
	// ListenAndServe blocks, so it runs in its own goroutine and leaves
	// main free to wait for the shutdown signal below.
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		// ErrServerClosed is the expected result of Shutdown(), not a
		// failure.
		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// ── 7. Wait for Shutdown Signal ───────────────────────────────────────
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	// Give in-flight requests up to 5 seconds to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
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
