package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grocery-tracker/core/config"
	"grocery-tracker/core/database"
	"grocery-tracker/core/persistence"
	"grocery-tracker/core/predictor"
	"grocery-tracker/core/reconcile"
	"grocery-tracker/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

// backend is the opened persistence layer. db and client are nil unless
// their backend is selected and reachable.
type backend struct {
	adapter persistence.Adapter
	db      *gorm.DB
	client  storage.Client
}

// openBackend connects the configured persistence backend. An unreachable
// database or object store degrades to the in-memory backend so the API
// keeps serving; an unknown backend name is an error.
func openBackend(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*backend, error) {
	var (
		db     *gorm.DB
		client storage.Client
	)

	switch cfg.Persistence.Backend {
	case persistence.BackendDatabase:
		conn, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Warn("Database connection failed", zap.Error(err))
			break
		}
		if err := persistence.NewDocumentStore(conn).Migrate(); err != nil {
			logg.Warn("Database migration failed", zap.Error(err))
			break
		}
		db = conn
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	case persistence.BackendObject:
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Warn("Storage client creation failed", zap.Error(err))
			break
		}
		bucketCtx, cancel := context.WithTimeout(ctx, seconds(cfg.Storage.TimeoutSeconds))
		err = storage.EnsureBucket(bucketCtx, c, cfg.Storage.Bucket, cfg.Storage.Region)
		cancel()
		if err != nil {
			logg.Warn("Storage bucket unavailable", zap.Error(err))
			break
		}
		client = c
		logg.Info("Connected to object storage", zap.String("bucket", cfg.Storage.Bucket))
	}

	adapter, err := persistence.New(cfg.Persistence, db, client, cfg.Storage.Bucket)
	if errors.Is(err, persistence.ErrUnavailable) {
		logg.Warn("Persistence backend unavailable, keeping data in memory only",
			zap.String("backend", cfg.Persistence.Backend), zap.Error(err))
		return &backend{adapter: persistence.NewMemoryStore()}, nil
	}
	if err != nil {
		return nil, err
	}
	return &backend{adapter: adapter, db: db, client: client}, nil
}

// newSessions wires the session cache to a mirror over the adapter.
func newSessions(cfg *config.Config, adapter persistence.Adapter, logg *zap.Logger) (*reconcile.Sessions, *persistence.Mirror) {
	mirror := persistence.NewMirror(adapter, seconds(cfg.Persistence.TimeoutSeconds), logg)
	sessions := reconcile.NewSessions(mirror, seconds(cfg.Persistence.CacheTTLSeconds), logg)
	return sessions, mirror
}

// newPredictionService builds the spending predictor. Without an API key
// the service still exists and answers every request as unavailable.
func newPredictionService(ctx context.Context, cfg *config.Config, logg *zap.Logger) *predictor.Service {
	var p predictor.Predictor
	if cfg.Predictor.APIKey == "" {
		logg.Warn("Predictor API key not set, spending predictions are disabled")
	} else if gemini, err := predictor.NewGeminiPredictor(ctx, cfg.Predictor); err != nil {
		logg.Warn("Predictor initialization failed", zap.Error(err))
	} else {
		p = gemini
	}
	return predictor.NewService(p, seconds(cfg.Predictor.TimeoutSeconds), logg)
}

// loadSnapshot reads one user's data straight from the backend.
func loadSnapshot(ctx context.Context, cfg *config.Config, logg *zap.Logger, userID string) (reconcile.Snapshot, error) {
	if cfg.Persistence.Backend == persistence.BackendMemory || cfg.Persistence.Backend == "" {
		return reconcile.Snapshot{}, fmt.Errorf("the %q backend keeps no data between runs", persistence.BackendMemory)
	}

	b, err := openBackend(ctx, cfg, logg)
	if err != nil {
		return reconcile.Snapshot{}, err
	}
	_, mirror := newSessions(cfg, b.adapter, logg)
	return mirror.LoadSnapshot(ctx, userID)
}
