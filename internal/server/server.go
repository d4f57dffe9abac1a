// Package server builds the HTTP handler and owns the process lifecycle:
// connect, migrate, seed, serve, and shut down cleanly on signal.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	"gorm.io/gorm"

	"papelaria/app/routes"
	"papelaria/config"
	"papelaria/database/seeders"
	"papelaria/pkg/database"
	"papelaria/pkg/logger"
	"papelaria/pkg/metrics"
	"papelaria/pkg/middleware"
	"papelaria/pkg/migration"
	"papelaria/pkg/reqid"
	"papelaria/pkg/router"
)

// BuildRouter assembles the middleware stack and the API routes on top
// of db. Split out from Start so tests can drive the full handler.
func BuildRouter(db *gorm.DB) *router.Router {
	r := router.New()

	// Global middleware stack, outermost first. Metrics wrap everything
	// so latency covers the full stack; recovery sits above anything
	// that can panic; the request ID must exist before the logger runs.
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", reqid.Header},
		MaxAge:         300,
	}))
	r.Use(middleware.RateLimit(200, time.Minute))

	r.HandleFunc("/metrics", metrics.Handler())

	routes.RegisterAPI(r, db)
	return r
}

// Start runs the whole service: config, store, migrations, seed, HTTP.
// It blocks until SIGINT/SIGTERM, then drains the server and closes the
// storage connection before returning.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	db, err := database.Connect()
	if err != nil {
		return err
	}

	if err := migration.New(db).Run(); err != nil {
		return err
	}

	// Reference data must exist before the listener opens.
	if err := seeders.RunAll(db); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           BuildRouter(db).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		database.Close(db) //nolint:errcheck
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", "error", err)
	}

	// Storage connection is closed last, after in-flight requests drain.
	if err := database.Close(db); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
