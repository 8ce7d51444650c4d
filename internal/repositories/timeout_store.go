package repositories

import (
	"context"
	"time"

	"rideadmin/internal/repositories/interfaces"
)

// timeoutStore bounds every store operation. The caller's context still
// governs cancellation, so an aborted request stops its in-flight store call.
type timeoutStore struct {
	next    interfaces.DocumentStore
	timeout time.Duration
}

func WithTimeout(next interfaces.DocumentStore, timeout time.Duration) interfaces.DocumentStore {
	if timeout <= 0 {
		return next
	}
	return &timeoutStore{
		next:    next,
		timeout: timeout,
	}
}

func (s *timeoutStore) Get(ctx context.Context, collection, id string) (*interfaces.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.Get(ctx, collection, id)
}

func (s *timeoutStore) List(ctx context.Context, collection string) ([]*interfaces.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.List(ctx, collection)
}

func (s *timeoutStore) Query(ctx context.Context, collection, field string, value interface{}) ([]*interfaces.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.Query(ctx, collection, field, value)
}

func (s *timeoutStore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.Update(ctx, collection, id, fields)
}

func (s *timeoutStore) Close() error {
	return s.next.Close()
}
