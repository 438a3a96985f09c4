package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"jotter/m/internal/api"
	"jotter/m/internal/auth"
	"jotter/m/internal/config"
	"jotter/m/internal/database"
	"jotter/m/internal/logging"
	"jotter/m/internal/migrations"
	"jotter/m/internal/seed"
	"jotter/m/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error(ctx, "server error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *logging.SlogLogger) error {
	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := migrations.Run(ctx, db)
	if err != nil {
		return err
	}
	log.Info(ctx, "database ready", "driver", db.DriverName(), "migrations_applied", applied)

	users := store.NewUserStore(db)
	notes := store.NewNoteStore(db)
	if cfg.SeedFile != "" {
		seed.LoadNotes(ctx, users, notes, cfg.SeedFile, log)
	}

	tokens := auth.NewTokens([]byte(cfg.Secret), cfg.TokenTTL)
	handler := api.New(users, notes, tokens, log.With("component", "api"), cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "notes server starting", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
