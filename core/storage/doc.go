// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the object persistence backend can keep
// user records as JSON objects on AWS S3 or a self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface abstracts the underlying provider, making it easy to
// mock storage interactions in unit tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
//	    return err
//	}
package storage
