package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"grocery-tracker/core/storage"

	"github.com/minio/minio-go/v7"
)

// objectEnvelope is the JSON body of a stored object. CreatedAt survives
// overwrites so Get can return records in insertion order.
type objectEnvelope struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"createdAt"`
	Data      json.RawMessage `json:"data"`
}

// ObjectStore is an Adapter keeping one JSON object per record under
// <prefix>/<owner>/<collection>/<id>.json.
type ObjectStore struct {
	client storage.Client
	bucket string
	prefix string
	now    func() time.Time
}

// NewObjectStore creates a store in the given bucket.
func NewObjectStore(client storage.Client, bucket, prefix string) *ObjectStore {
	return &ObjectStore{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		now:    time.Now,
	}
}

func (s *ObjectStore) collectionPrefix(ownerID, collection string) string {
	return path.Join(s.prefix, ownerID, collection) + "/"
}

func (s *ObjectStore) objectName(ownerID, collection, id string) string {
	return s.collectionPrefix(ownerID, collection) + id + ".json"
}

// Get lists and reads every object of a collection.
func (s *ObjectStore) Get(ctx context.Context, ownerID, collection string) ([]Record, error) {
	var envelopes []objectEnvelope

	opts := minio.ListObjectsOptions{
		Prefix:    s.collectionPrefix(ownerID, collection),
		Recursive: true,
	}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", opts.Prefix, obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}

		env, err := s.read(ctx, obj.Key)
		if err != nil {
			return nil, err
		}
		envelopes = append(envelopes, env)
	}

	sort.SliceStable(envelopes, func(i, j int) bool {
		if envelopes[i].CreatedAt.Equal(envelopes[j].CreatedAt) {
			return envelopes[i].ID < envelopes[j].ID
		}
		return envelopes[i].CreatedAt.Before(envelopes[j].CreatedAt)
	})

	records := make([]Record, 0, len(envelopes))
	for _, env := range envelopes {
		records = append(records, Record{ID: env.ID, Data: env.Data})
	}
	return records, nil
}

func (s *ObjectStore) read(ctx context.Context, key string) (objectEnvelope, error) {
	var env objectEnvelope

	reader, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return env, fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer reader.Close()

	body, err := io.ReadAll(reader)
	if err != nil {
		return env, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return env, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return env, nil
}

// Put writes a record, keeping the creation time of an existing object.
func (s *ObjectStore) Put(ctx context.Context, ownerID, collection string, record Record) error {
	key := s.objectName(ownerID, collection, record.ID)

	created := s.now().UTC()
	if existing, err := s.read(ctx, key); err == nil && !existing.CreatedAt.IsZero() {
		created = existing.CreatedAt
	}

	body, err := json.Marshal(objectEnvelope{ID: record.ID, CreatedAt: created, Data: record.Data})
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to put %s: %w", key, err)
	}
	return nil
}

// Delete removes the object of a record.
func (s *ObjectStore) Delete(ctx context.Context, ownerID, collection, id string) error {
	key := s.objectName(ownerID, collection, id)
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}
