package persistence

import (
	"context"
	"encoding/json"
	"errors"
)

// Collection names mirrored for every owner.
const (
	CollectionPurchases    = "purchases"
	CollectionPantry       = "pantry"
	CollectionShoppingList = "shoppingList"
)

// Backend names accepted in Config.Backend.
const (
	BackendMemory   = "memory"
	BackendDatabase = "database"
	BackendObject   = "object"
)

// ErrUnavailable is returned when no backend could be reached.
var ErrUnavailable = errors.New("persistence unavailable")

// Record is one stored document.
type Record struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

// Adapter is a per-owner key-value collection store.
// Implementations give no consistency guarantees beyond the single call.
type Adapter interface {
	// Get returns all records of a collection.
	Get(ctx context.Context, ownerID, collection string) ([]Record, error)
	// Put creates or replaces a record.
	Put(ctx context.Context, ownerID, collection string, record Record) error
	// Delete removes a record. Deleting a missing record is not an error.
	Delete(ctx context.Context, ownerID, collection, id string) error
}
