// Package main is the entry point for the travel planner API server.
// It only wires dependencies together and starts the server.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/pkordes/smart-travel-planner/internal/clock"
	"github.com/pkordes/smart-travel-planner/internal/config"
	"github.com/pkordes/smart-travel-planner/internal/guide"
	"github.com/pkordes/smart-travel-planner/internal/handler"
	"github.com/pkordes/smart-travel-planner/internal/middleware"
	"github.com/pkordes/smart-travel-planner/internal/planclient"
	"github.com/pkordes/smart-travel-planner/internal/repo"
	"github.com/pkordes/smart-travel-planner/internal/service"
	"github.com/pkordes/smart-travel-planner/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Guide source -----------------------------------------------------
	lookup, closeLookup, err := openGuides(context.Background(), cfg, logger)
	if err != nil {
		slog.Error("failed to open guide source", "source", cfg.GuideSource, "error", err)
		os.Exit(1)
	}
	defer closeLookup()

	// --- Planning endpoint ------------------------------------------------
	client, err := planclient.New(cfg.PlannerURL, &http.Client{Timeout: cfg.PlannerTimeout})
	if err != nil {
		slog.Error("invalid planner url", "error", err)
		os.Exit(1)
	}

	guides := service.NewGuideService(lookup)
	planner := service.NewPlannerService(client, guides, logger)
	server := handler.NewServer(planner, guides, clock.RealClock{}, logger)

	// --- Router -----------------------------------------------------------
	// RequestID → RealIP → SlogLogger → Recoverer → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Mount("/", server.Routes())

	// --- HTTP Server ------------------------------------------------------
	// The write timeout must outlast one planning call.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.PlannerTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "guide_source", cfg.GuideSource, "planner_url", cfg.PlannerURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openGuides builds the guide.Lookup selected by GUIDE_SOURCE. The returned
// func releases whatever the source holds open.
func openGuides(ctx context.Context, cfg config.Config, logger *slog.Logger) (guide.Lookup, func(), error) {
	switch cfg.GuideSource {
	case config.GuideSourceFile:
		table, err := guide.LoadFile(cfg.GuideFile)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("guides loaded from file", "path", cfg.GuideFile, "entries", len(table.Entries()))
		return table, func() {}, nil

	case config.GuideSourcePostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("create database pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}

		// goose runs on database/sql; borrow a handle over the same pool.
		sqlDB := stdlib.OpenDBFromPool(pool)
		applied, err := migrations.Up(ctx, sqlDB)
		_ = sqlDB.Close()
		if err != nil {
			pool.Close()
			return nil, nil, err
		}

		guides := repo.NewGuideRepo(pool)
		seeded, err := guides.SeedIfEmpty(ctx, guide.Builtin().Entries())
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info("guides served from postgres", "migrations_applied", applied, "seeded", seeded)
		return guides, pool.Close, nil

	default:
		return guide.Builtin(), func() {}, nil
	}
}
