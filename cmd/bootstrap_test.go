package cmd

import (
	"context"
	"testing"

	"grocery-tracker/core/config"
	"grocery-tracker/core/database"
	"grocery-tracker/core/persistence"
	"grocery-tracker/core/predictor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenBackend(t *testing.T) {
	ctx := context.Background()
	logg := zap.NewNop()

	t.Run("Memory", func(t *testing.T) {
		cfg := &config.Config{Persistence: persistence.Config{Backend: persistence.BackendMemory}}
		b, err := openBackend(ctx, cfg, logg)
		require.NoError(t, err)
		assert.IsType(t, &persistence.MemoryStore{}, b.adapter)
		assert.Nil(t, b.db)
	})

	t.Run("DatabaseSQLite", func(t *testing.T) {
		cfg := &config.Config{
			Persistence: persistence.Config{Backend: persistence.BackendDatabase},
			Database:    database.Config{Driver: database.DriverSQLite, Name: ":memory:"},
		}
		b, err := openBackend(ctx, cfg, logg)
		require.NoError(t, err)
		assert.IsType(t, &persistence.DocumentStore{}, b.adapter)
		assert.NotNil(t, b.db)
		adapter := b.adapter

		require.NoError(t, adapter.Put(ctx, "user-1", persistence.CollectionPurchases, persistence.Record{ID: "p1", Data: []byte(`{"id":"p1"}`)}))
		records, err := adapter.Get(ctx, "user-1", persistence.CollectionPurchases)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("DatabaseUnreachableFallsBackToMemory", func(t *testing.T) {
		cfg := &config.Config{
			Persistence: persistence.Config{Backend: persistence.BackendDatabase},
			Database:    database.Config{Driver: "oracle"},
		}
		b, err := openBackend(ctx, cfg, logg)
		require.NoError(t, err)
		assert.IsType(t, &persistence.MemoryStore{}, b.adapter)
		assert.Nil(t, b.db)
	})

	t.Run("UnknownBackend", func(t *testing.T) {
		cfg := &config.Config{Persistence: persistence.Config{Backend: "floppy"}}
		_, err := openBackend(ctx, cfg, logg)
		assert.EqualError(t, err, "unknown persistence backend: floppy")
	})
}

func TestLoadSnapshot_MemoryBackend(t *testing.T) {
	cfg := &config.Config{Persistence: persistence.Config{Backend: persistence.BackendMemory}}
	_, err := loadSnapshot(context.Background(), cfg, zap.NewNop(), "user-1")
	assert.Error(t, err)
}

func TestNewPredictionService_WithoutKey(t *testing.T) {
	svc := newPredictionService(context.Background(), &config.Config{}, zap.NewNop())
	require.NotNil(t, svc)

	_, err := svc.Predict(context.Background(), make([]predictor.HistoryEntry, predictor.MinHistory))
	assert.ErrorIs(t, err, predictor.ErrPredictionUnavailable)
	assert.Equal(t, predictor.MsgUnexpectedError, predictor.UserMessage(err))
}
