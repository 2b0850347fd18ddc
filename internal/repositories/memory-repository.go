package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	apperrors "employee-directory/pkg/errors"
)

// MemoryDocumentRepository is a map-backed implementation of the repository
// interface. It keeps insertion order per collection so listings are stable,
// and copies field maps on the way in and out so callers never share state
// with the store.
type MemoryDocumentRepository struct {
	mu    sync.RWMutex
	docs  map[string]map[string]map[string]any
	order map[string][]string
}

func NewMemoryDocumentRepository() *MemoryDocumentRepository {
	return &MemoryDocumentRepository{
		docs:  make(map[string]map[string]map[string]any),
		order: make(map[string][]string),
	}
}

func (r *MemoryDocumentRepository) GetAll(_ context.Context, collection string) ([]Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]Document, 0, len(r.order[collection]))
	for _, id := range r.order[collection] {
		docs = append(docs, Document{ID: id, Fields: cloneFields(r.docs[collection][id])})
	}
	return docs, nil
}

func (r *MemoryDocumentRepository) GetByID(_ context.Context, collection, id string) (*Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fields, ok := r.docs[collection][id]
	if !ok {
		return nil, apperrors.NewDocumentNotFoundError(collection, id)
	}
	return &Document{ID: id, Fields: cloneFields(fields)}, nil
}

func (r *MemoryDocumentRepository) GetByFieldValue(_ context.Context, collection, field, value string, limit int) ([]Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]Document, 0)
	for _, id := range r.order[collection] {
		fields := r.docs[collection][id]
		if str, ok := fields[field].(string); !ok || str != value {
			continue
		}
		docs = append(docs, Document{ID: id, Fields: cloneFields(fields)})
		if limit > 0 && len(docs) == limit {
			break
		}
	}
	return docs, nil
}

func (r *MemoryDocumentRepository) Create(_ context.Context, collection string, fields map[string]any) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.docs[collection] == nil {
		r.docs[collection] = make(map[string]map[string]any)
	}

	id := uuid.NewString()
	r.docs[collection][id] = cloneFields(fields)
	r.order[collection] = append(r.order[collection], id)
	return id, nil
}

func (r *MemoryDocumentRepository) Update(_ context.Context, collection, id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.docs[collection][id]
	if !ok {
		return apperrors.NewDocumentNotFoundError(collection, id)
	}
	for k, v := range fields {
		stored[k] = v
	}
	return nil
}

func (r *MemoryDocumentRepository) Delete(_ context.Context, collection, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[collection][id]; !ok {
		return apperrors.NewDocumentNotFoundError(collection, id)
	}
	delete(r.docs[collection], id)

	ids := r.order[collection]
	for i, existing := range ids {
		if existing == id {
			r.order[collection] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

func cloneFields(fields map[string]any) map[string]any {
	cloned := make(map[string]any, len(fields))
	for k, v := range fields {
		cloned[k] = v
	}
	return cloned
}
