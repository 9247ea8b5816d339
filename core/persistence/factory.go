package persistence

import (
	"fmt"

	"grocery-tracker/core/storage"

	"gorm.io/gorm"
)

// New builds the adapter selected by cfg.Backend. The database backend
// needs db and the object backend needs client; a missing dependency
// yields ErrUnavailable so callers can fall back to memory.
func New(cfg Config, db *gorm.DB, client storage.Client, bucket string) (Adapter, error) {
	switch cfg.Backend {
	case BackendMemory, "":
		return NewMemoryStore(), nil
	case BackendDatabase:
		if db == nil {
			return nil, fmt.Errorf("%w: database backend selected without a database connection", ErrUnavailable)
		}
		return NewDocumentStore(db), nil
	case BackendObject:
		if client == nil {
			return nil, fmt.Errorf("%w: object backend selected without a storage client", ErrUnavailable)
		}
		return NewObjectStore(client, bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown persistence backend: %s", cfg.Backend)
	}
}
