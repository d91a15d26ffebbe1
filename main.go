// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/daily-fortune/cliparse"
	"github.com/danielhkuo/daily-fortune/db"
	"github.com/danielhkuo/daily-fortune/fortune"
	"github.com/danielhkuo/daily-fortune/middleware"
	"github.com/danielhkuo/daily-fortune/reaper"
	"github.com/danielhkuo/daily-fortune/router"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}

// run starts the server and blocks until it stops. Deferred cleanup runs
// before main decides the exit status.
func run() error {
	// A missing .env is fine; the environment may already be set
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded .env")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}

	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection (%s): %w", cfg.DatabaseType, err)
	}
	defer dbConn.Close()

	if err := db.CreateSchema(dbConn); err != nil {
		return fmt.Errorf("schema creation: %w", err)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	pool, err := fortune.Load(cfg.FortunesFile)
	if err != nil {
		return fmt.Errorf("loading fortunes: %w", err)
	}
	slog.Info("Fortunes loaded", "count", pool.Len())

	r, err := reaper.New(db.NewVisitStore(dbConn), cfg.ReapPolicy, cfg.Retention, cfg.Location)
	if err != nil {
		return fmt.Errorf("reap configuration: %w", err)
	}
	stopReaper, err := r.Start()
	if err != nil {
		return fmt.Errorf("starting reaper: %w", err)
	}
	defer stopReaper()

	mux := router.NewRouter(dbConn, cfg, pool)

	server := &http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(ctrlc)

	slog.Info("Listening",
		"port", cfg.Port,
		"timezone", cfg.Timezone,
		"identity", cfg.IdentityPolicy,
		"reap", r.Policy(),
	)
	return serve(server, ln, ctrlc, shutdownTimeout)
}

const shutdownTimeout = 10 * time.Second

// serve runs server on ln until it fails or stop fires. After stop it
// returns only once in-flight requests have finished or grace has run out.
func serve(server *http.Server, ln net.Listener, stop <-chan os.Signal, grace time.Duration) error {
	shutdown := make(chan error, 1)
	go func() {
		if _, ok := <-stop; !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		err := server.Shutdown(ctx)
		if err != nil {
			server.Close()
			err = fmt.Errorf("graceful shutdown: %w", err)
		}
		shutdown <- err
	}()

	err := server.Serve(ln)
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	// Serve returns as soon as Shutdown starts; wait for it to drain
	return <-shutdown
}
