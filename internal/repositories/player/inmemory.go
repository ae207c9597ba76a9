package player

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-player/internal/entities/rpg"
	"github.com/KirkDiggler/rpg-player/internal/errors"
)

// InMemoryRepository keeps records in a map. Used for local runs and tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*rpg.Record
}

// NewInMemory creates an empty in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{records: make(map[string]*rpg.Record)}
}

// Get returns a copy of the stored record
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[input.ID]
	if !ok {
		return nil, errors.NotFoundf("player %s not found", input.ID)
	}
	return &GetOutput{Record: record.Clone()}, nil
}

// Save stores a copy of the record
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordEmpty)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[input.Record.ID] = input.Record.Clone()
	return &SaveOutput{}, nil
}

// Delete removes the record if present
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, existed := r.records[input.ID]
	delete(r.records, input.ID)
	return &DeleteOutput{Existed: existed}, nil
}

// Len returns the number of stored records
func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
