package mocks

import (
	"context"

	"grocery-tracker/core/persistence"

	"github.com/stretchr/testify/mock"
)

// Adapter is a mock implementation of persistence.Adapter
type Adapter struct {
	mock.Mock
}

func (m *Adapter) Get(ctx context.Context, ownerID, collection string) ([]persistence.Record, error) {
	args := m.Called(ctx, ownerID, collection)
	if records, ok := args.Get(0).([]persistence.Record); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Adapter) Put(ctx context.Context, ownerID, collection string, record persistence.Record) error {
	args := m.Called(ctx, ownerID, collection, record)
	return args.Error(0)
}

func (m *Adapter) Delete(ctx context.Context, ownerID, collection, id string) error {
	args := m.Called(ctx, ownerID, collection, id)
	return args.Error(0)
}
