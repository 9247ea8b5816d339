package persistence

import (
	"context"
	"fmt"
	"sync"
	"time"

	"grocery-tracker/core/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is the row layout of the documents table. One row holds one
// record of one collection of one owner. Seq orders the records of a
// collection and is kept on update.
type Document struct {
	OwnerID    string    `gorm:"column:owner_id;primaryKey;size:64"`
	Collection string    `gorm:"column:collection;primaryKey;size:32"`
	ID         string    `gorm:"column:id;primaryKey;size:64"`
	Data       string    `gorm:"column:data;type:text"`
	Seq        int64     `gorm:"column:seq;not null;default:0;index"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name.
func (Document) TableName() string {
	return "documents"
}

// documentColumns are the columns the schema check expects.
var documentColumns = []string{"owner_id", "collection", "id", "data", "seq", "created_at", "updated_at"}

// DocumentStore is an Adapter backed by a SQL table through GORM.
type DocumentStore struct {
	db  *gorm.DB
	now func() time.Time

	mu      sync.Mutex
	lastSeq int64
}

// NewDocumentStore creates a store on an open connection.
func NewDocumentStore(db *gorm.DB) *DocumentStore {
	return &DocumentStore{db: db, now: time.Now}
}

// nextSeq returns a strictly increasing sequence based on the clock, so
// records written within one timestamp tick keep their write order.
func (s *DocumentStore) nextSeq() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.now().UnixNano()
	if seq <= s.lastSeq {
		seq = s.lastSeq + 1
	}
	s.lastSeq = seq
	return seq
}

// Migrate creates or updates the documents table.
func (s *DocumentStore) Migrate() error {
	if err := s.db.AutoMigrate(&Document{}); err != nil {
		return fmt.Errorf("failed to migrate documents table: %w", err)
	}
	return nil
}

// MissingColumns lists expected columns absent from the documents table.
func (s *DocumentStore) MissingColumns() ([]string, error) {
	return database.MissingColumns(s.db, Document{}.TableName(), documentColumns)
}

// Get returns the records of a collection in insertion order.
func (s *DocumentStore) Get(ctx context.Context, ownerID, collection string) ([]Record, error) {
	var docs []Document
	err := s.db.WithContext(ctx).
		Where("owner_id = ? AND collection = ?", ownerID, collection).
		Order("seq ASC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load %s for %s: %w", collection, ownerID, err)
	}

	records := make([]Record, 0, len(docs))
	for _, d := range docs {
		records = append(records, Record{ID: d.ID, Data: []byte(d.Data)})
	}
	return records, nil
}

// Put upserts a record. An existing record keeps its position.
func (s *DocumentStore) Put(ctx context.Context, ownerID, collection string, record Record) error {
	now := s.now().UTC()
	doc := Document{
		OwnerID:    ownerID,
		Collection: collection,
		ID:         record.ID,
		Data:       string(record.Data),
		Seq:        s.nextSeq(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "collection"}, {Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&doc).Error
	if err != nil {
		return fmt.Errorf("failed to store %s/%s: %w", collection, record.ID, err)
	}
	return nil
}

// Delete removes a record.
func (s *DocumentStore) Delete(ctx context.Context, ownerID, collection, id string) error {
	err := s.db.WithContext(ctx).
		Where("owner_id = ? AND collection = ? AND id = ?", ownerID, collection, id).
		Delete(&Document{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, id, err)
	}
	return nil
}
