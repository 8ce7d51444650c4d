package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sync"

	"rideadmin/internal/repositories/interfaces"
)

type collection struct {
	order []string
	docs  map[string]map[string]interface{}
}

// DocumentStore keeps documents in process memory, listing them in insertion order.
type DocumentStore struct {
	mu          sync.RWMutex
	collections map[string]*collection
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		collections: make(map[string]*collection),
	}
}

// Put inserts or replaces a document. Replacing keeps the original position.
func (s *DocumentStore) Put(name, id string, data map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collection(name)
	if _, exists := c.docs[id]; !exists {
		c.order = append(c.order, id)
	}
	c.docs[id] = copyData(data)
}

func (s *DocumentStore) Delete(name, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		return
	}
	if _, exists := c.docs[id]; !exists {
		return
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// LoadSeed reads {"collection": [{"id": "...", ...fields}]} and puts every entry.
func (s *DocumentStore) LoadSeed(r io.Reader) error {
	var seed map[string][]map[string]interface{}
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return fmt.Errorf("failed to decode seed: %w", err)
	}

	for name, entries := range seed {
		for i, entry := range entries {
			id, _ := entry["id"].(string)
			if id == "" {
				return fmt.Errorf("seed %s[%d]: missing id", name, i)
			}
			data := copyData(entry)
			delete(data, "id")
			s.Put(name, id, data)
		}
	}

	return nil
}

func (s *DocumentStore) Get(ctx context.Context, name, id string) (*interfaces.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[name]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", name, id, interfaces.ErrDocumentNotFound)
	}
	data, ok := c.docs[id]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", name, id, interfaces.ErrDocumentNotFound)
	}

	return &interfaces.Document{ID: id, Data: copyData(data)}, nil
}

func (s *DocumentStore) List(ctx context.Context, name string) ([]*interfaces.Document, error) {
	return s.filter(ctx, name, func(map[string]interface{}) bool { return true })
}

func (s *DocumentStore) Query(ctx context.Context, name, field string, value interface{}) ([]*interfaces.Document, error) {
	return s.filter(ctx, name, func(data map[string]interface{}) bool {
		v, ok := data[field]
		return ok && reflect.DeepEqual(v, value)
	})
}

func (s *DocumentStore) Update(ctx context.Context, name, id string, fields map[string]interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		return fmt.Errorf("%s/%s: %w", name, id, interfaces.ErrDocumentNotFound)
	}
	data, ok := c.docs[id]
	if !ok {
		return fmt.Errorf("%s/%s: %w", name, id, interfaces.ErrDocumentNotFound)
	}
	for k, v := range fields {
		data[k] = v
	}

	return nil
}

func (s *DocumentStore) Close() error {
	return nil
}

func (s *DocumentStore) filter(ctx context.Context, name string, match func(map[string]interface{}) bool) ([]*interfaces.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]*interfaces.Document, 0)
	c, ok := s.collections[name]
	if !ok {
		return docs, nil
	}
	for _, id := range c.order {
		data := c.docs[id]
		if match(data) {
			docs = append(docs, &interfaces.Document{ID: id, Data: copyData(data)})
		}
	}

	return docs, nil
}

// collection must be called with the write lock held.
func (s *DocumentStore) collection(name string) *collection {
	c, ok := s.collections[name]
	if !ok {
		c = &collection{docs: make(map[string]map[string]interface{})}
		s.collections[name] = c
	}
	return c
}

func copyData(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
