package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"grocery-tracker/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Op is one write to mirror.
type Op struct {
	Collection string
	ID         string
	// Value is encoded as JSON for puts; nil means delete.
	Value any
}

// PutOp mirrors a created or updated record.
func PutOp(collection, id string, value any) Op {
	return Op{Collection: collection, ID: id, Value: value}
}

// DeleteOp mirrors a removed record.
func DeleteOp(collection, id string) Op {
	return Op{Collection: collection, ID: id}
}

// Mirror writes store changes to an Adapter on a best-effort basis.
// Failures are logged and returned as warnings; in-memory state is never
// rolled back.
type Mirror struct {
	adapter Adapter
	timeout time.Duration
	logger  *zap.Logger
}

// NewMirror wraps an adapter. A non-positive timeout defaults to 5 seconds.
func NewMirror(adapter Adapter, timeout time.Duration, logger *zap.Logger) *Mirror {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mirror{adapter: adapter, timeout: timeout, logger: logger}
}

// Apply performs every op in order and returns one warning per failure.
// Later ops still run when an earlier one fails.
func (m *Mirror) Apply(ctx context.Context, ownerID string, ops ...Op) []string {
	var warnings []string
	for _, op := range ops {
		if err := m.apply(ctx, ownerID, op); err != nil {
			m.logger.Warn("Persistence mirror failed",
				zap.String("owner_id", ownerID),
				zap.String("collection", op.Collection),
				zap.String("id", op.ID),
				zap.Error(err))
			warnings = append(warnings, fmt.Sprintf("could not save %s change: %v", op.Collection, err))
		}
	}
	return warnings
}

func (m *Mirror) apply(ctx context.Context, ownerID string, op Op) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	if op.Value == nil {
		return m.adapter.Delete(ctx, ownerID, op.Collection, op.ID)
	}

	data, err := json.Marshal(op.Value)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	return m.adapter.Put(ctx, ownerID, op.Collection, Record{ID: op.ID, Data: data})
}

// LoadSnapshot reads and decodes the three collections of an owner
// concurrently. The first failure cancels the other reads.
func (m *Mirror) LoadSnapshot(ctx context.Context, ownerID string) (reconcile.Snapshot, error) {
	var snap reconcile.Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loadInto(gctx, m, ownerID, CollectionPurchases, &snap.Purchases)
	})
	g.Go(func() error {
		return loadInto(gctx, m, ownerID, CollectionPantry, &snap.Pantry)
	})
	g.Go(func() error {
		return loadInto(gctx, m, ownerID, CollectionShoppingList, &snap.ShoppingList)
	})
	if err := g.Wait(); err != nil {
		return reconcile.Snapshot{}, err
	}
	return snap, nil
}

func loadInto[T any](ctx context.Context, m *Mirror, ownerID, collection string, out *[]T) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	records, err := m.adapter.Get(ctx, ownerID, collection)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", collection, err)
	}

	items := make([]T, 0, len(records))
	for _, r := range records {
		var item T
		if err := json.Unmarshal(r.Data, &item); err != nil {
			return fmt.Errorf("failed to decode %s/%s: %w", collection, r.ID, err)
		}
		items = append(items, item)
	}
	*out = items
	return nil
}
