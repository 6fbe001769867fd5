// main is the entry point of the records API application.
//
// Startup sequence:
//  1. Load configuration from a YAML file (plus .env / environment overrides)
//  2. Initialise the logger
//  3. Connect to (and set up) the SQLite database
//  4. Register all HTTP routes
//  5. Start the HTTP server in a separate goroutine
//  6. Block the main goroutine until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, then exit
//
// Running the server:
//
//	go run ./cmd/records-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/records-api
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"records-api/internal/config"
	"records-api/internal/http/handlers/contact"
	"records-api/internal/http/handlers/employee"
	"records-api/internal/http/handlers/note"
	"records-api/internal/http/handlers/student"
	"records-api/internal/storage/sqlite"
)

func main() {
	// MustLoad reads the YAML config and fatals if anything is wrong:
	// if it returns, config is guaranteed valid.
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting records-api",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// The rest of the code only sees the storage.Storage interface, so
	// swapping the backend later means changing this one line.
	storage, err := sqlite.New(cfg)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("storage initialised",
		slog.String("path", cfg.StoragePath))

	// Route table.
	//
	// Employees use one route per method+pattern. The notes endpoint is
	// deliberately registered without a method so a single handler can
	// branch on the verb itself, and contacts/students likewise own
	// their method check (they answer 405 in JSON, not the mux default).
	router := http.NewServeMux()

	router.HandleFunc("POST /api/employees", employee.New(storage))
	router.HandleFunc("GET /api/employees", employee.GetList(storage))
	router.HandleFunc("GET /api/employees/{id}", employee.GetByID(storage))
	router.HandleFunc("PUT /api/employees/{id}", employee.Update(storage))
	router.HandleFunc("PATCH /api/employees/{id}", employee.Patch(storage))
	router.HandleFunc("DELETE /api/employees/{id}", employee.Delete(storage))

	router.HandleFunc("/api/notes", note.Api(storage))
	router.HandleFunc("/api/notes/{id}", note.Api(storage))

	router.HandleFunc("/api/contacts", contact.Update(storage))

	router.HandleFunc("/api/students", student.Create(storage))

	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: router,

		// Timeouts guard against slow clients holding connections open.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ListenAndServe blocks, so it runs in its own goroutine; the main
	// goroutine waits below for a shutdown signal.
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		// http.ErrServerClosed is the normal result of Shutdown().
		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

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

// setupLogger returns a *slog.Logger configured for the given environment:
// human-readable text in dev, JSON for log aggregators elsewhere.
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
