// Package persistence mirrors the grocery collections of each user to a
// key-value collection store.
//
// The mirror is passive: the in-memory reconcile.Store is the source of
// truth during a session, and every write here is best effort. A failed
// write is logged and reported back as a warning, never rolled back.
//
// # Adapters
//
//   - MemoryStore: in-process maps, the default and the test double.
//   - DocumentStore: a "documents" table through GORM (MySQL or SQLite).
//   - ObjectStore: one JSON object per record on S3/MinIO.
//
// # Mirror
//
// Mirror encodes records as JSON, bounds each call with a timeout, and
// implements reconcile.Loader so sessions can be hydrated from the store.
//
//	adapter, err := persistence.New(cfg.Persistence, db, client, cfg.Storage.Bucket)
//	mirror := persistence.NewMirror(adapter, 5*time.Second, logger)
//	warnings := mirror.Apply(ctx, ownerID,
//	    persistence.PutOp(persistence.CollectionPurchases, p.ID, p))
package persistence
